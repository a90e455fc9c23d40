package agentic

import (
	"context"
	"log/slog"
	"time"

	"github.com/viant/afs/storage"

	"github.com/IngIppoliti/agentic-learning-platform/cache"
	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/model/types"
	"github.com/IngIppoliti/agentic-learning-platform/registry"
	"github.com/IngIppoliti/agentic-learning-platform/router"
	"github.com/IngIppoliti/agentic-learning-platform/service/dao/routing"
	"github.com/IngIppoliti/agentic-learning-platform/tracing"
	"github.com/IngIppoliti/agentic-learning-platform/workflow"
)

// Service owns the orchestration graph: the provider registry, the router and
// the workflow executor. It is constructed explicitly by the embedding
// application; there is no package-level singleton.
type Service struct {
	config              *Config
	logger              *slog.Logger
	registry            *registry.Service
	router              *router.Service
	executor            *workflow.Service
	definitions         *routing.Service
	cacheStore          cache.Store
	listener            router.Listener
	providers           []types.Provider
	definitionBaseURL   string
	definitionFsOptions []storage.Option
}

// New creates the orchestration service. Registration and table mutations must
// complete before concurrent dispatch begins.
func New(options ...Option) *Service {
	s := &Service{}
	s.init(options)
	return s
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.rebuild()
	for _, provider := range s.providers {
		s.registry.Register(provider)
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.registry == nil {
		s.registry = registry.New(registry.WithLogger(s.logger))
	}
	if s.definitions == nil {
		opts := []routing.Option{routing.WithBaseURL(s.definitionBaseURL)}
		if len(s.definitionFsOptions) > 0 {
			opts = append(opts, routing.WithFsOptions(s.definitionFsOptions...))
		}
		s.definitions = routing.New(opts...)
	}
	if s.cacheStore == nil {
		if addr := s.config.Cache.Redis.Addr; addr != "" {
			s.cacheStore = cache.NewRedis(addr, s.config.Cache.Redis.Password, s.config.Cache.Redis.DB)
		} else {
			s.cacheStore = cache.NewNop()
		}
	}
	if s.config.Tracing.Enabled {
		_ = tracing.Init(s.config.Name, s.config.Version, s.config.Tracing.OutputFile)
	}
}

// rebuild constructs the router and workflow executor from the current config
// tables.
func (s *Service) rebuild() {
	routerOpts := []router.Option{
		router.WithLogger(s.logger),
		router.WithCache(s.cacheStore),
	}
	if ttl := s.config.Cache.TTLSeconds; ttl > 0 {
		routerOpts = append(routerOpts, router.WithCacheTTL(time.Duration(ttl)*time.Second))
	}
	if s.listener != nil {
		routerOpts = append(routerOpts, router.WithListener(s.listener))
	}
	s.router = router.New(s.config.Name, s.config.Routes, s.registry, routerOpts...)
	s.executor = workflow.New(s.config.Name, s.config.Workflows, s.router,
		workflow.WithLogger(s.logger))
}

// Register inserts or replaces a provider by name.
func (s *Service) Register(provider types.Provider) {
	s.registry.Register(provider)
}

// Unregister removes a provider by name; removing an absent name is a no-op.
func (s *Service) Unregister(name string) {
	s.registry.Unregister(name)
}

// Route dispatches a single envelope and returns its outcome. Failures are
// reported through the outcome's status, never as an error.
func (s *Service) Route(ctx context.Context, envelope *model.Envelope) *model.Outcome {
	return s.router.Route(ctx, envelope)
}

// ExecuteWorkflow runs the named workflow, threading each completed step's
// result into the next step's payload. The returned error is non-nil only for
// an unknown workflow name; step failures appear in the outcome list.
func (s *Service) ExecuteWorkflow(ctx context.Context, name string, requestContext *model.RequestContext, initialData map[string]any) ([]*model.Outcome, error) {
	return s.executor.Execute(ctx, name, requestContext, initialData)
}

// LoadDefinition loads a routing definition from the configured definition
// store without applying it.
func (s *Service) LoadDefinition(ctx context.Context, URL string) (*routing.Definition, error) {
	return s.definitions.Load(ctx, URL)
}

// UseDefinition swaps the routing and workflow tables for those of the
// supplied definition. Like registration, table swaps must not race with
// concurrent dispatch.
func (s *Service) UseDefinition(definition *routing.Definition) {
	s.config.Routes = definition.Routes
	s.config.Workflows = definition.Workflows
	s.rebuild()
	s.logger.Info("definition_applied",
		"definition", definition.Name,
		"routes", len(definition.Routes),
		"workflows", len(definition.Workflows))
}

// Registry exposes the provider registry.
func (s *Service) Registry() *registry.Service { return s.registry }

// Router exposes the dispatch router.
func (s *Service) Router() *router.Service { return s.router }

// Workflows exposes the workflow executor.
func (s *Service) Workflows() *workflow.Service { return s.executor }

// Definitions exposes the routing-definition loader.
func (s *Service) Definitions() *routing.Service { return s.definitions }
