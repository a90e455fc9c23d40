package agentic

import (
	"log/slog"

	"github.com/viant/afs/storage"

	"github.com/IngIppoliti/agentic-learning-platform/cache"
	"github.com/IngIppoliti/agentic-learning-platform/model/types"
	"github.com/IngIppoliti/agentic-learning-platform/registry"
	"github.com/IngIppoliti/agentic-learning-platform/router"
	"github.com/IngIppoliti/agentic-learning-platform/service/dao/routing"
)

// Option customises the orchestration service.
type Option func(s *Service)

// WithConfig sets the orchestrator configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithLogger sets the structured logger shared by all components.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithCache sets the best-effort outcome store.
func WithCache(store cache.Store) Option {
	return func(s *Service) { s.cacheStore = store }
}

// WithProviders registers the supplied providers during construction.
func WithProviders(providers ...types.Provider) Option {
	return func(s *Service) { s.providers = append(s.providers, providers...) }
}

// WithRegistry sets a pre-populated provider registry.
func WithRegistry(reg *registry.Service) Option {
	return func(s *Service) { s.registry = reg }
}

// WithListener sets the dispatch listener invoked after every routed message.
func WithListener(listener router.Listener) Option {
	return func(s *Service) { s.listener = listener }
}

// WithDefinitionService sets the routing-definition loader.
func WithDefinitionService(service *routing.Service) Option {
	return func(s *Service) { s.definitions = service }
}

// WithDefinitionBaseURL sets the base location routing definitions are loaded
// from.
func WithDefinitionBaseURL(baseURL string) Option {
	return func(s *Service) { s.definitionBaseURL = baseURL }
}

// WithDefinitionFsOptions sets storage options for definition loading, e.g. an
// embed.FS for the embed:// scheme.
func WithDefinitionFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.definitionFsOptions = options }
}
