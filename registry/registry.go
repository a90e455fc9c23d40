// Package registry holds the single source of truth mapping provider names to
// registered instances. It deliberately carries no locking: all registration
// mutations are expected to complete before concurrent dispatch begins
// (start-up) or after it ends (shutdown); callers mutating it at any other
// time must synchronize externally.
package registry

import (
	"log/slog"
	"sort"

	"github.com/IngIppoliti/agentic-learning-platform/model/types"
)

// Service maps provider name to provider instance.
type Service struct {
	providers map[string]types.Provider
	logger    *slog.Logger
}

// Option customises the registry.
type Option func(*Service)

// WithLogger overrides the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates an empty registry.
func New(opts ...Option) *Service {
	s := &Service{
		providers: make(map[string]types.Provider),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register inserts or replaces a provider by name (last write wins).
func (s *Service) Register(provider types.Provider) {
	s.providers[provider.Name()] = provider
	s.logger.Info("provider_registered",
		"provider", provider.Name(),
		"version", provider.Version(),
		"capabilities", provider.Capabilities())
}

// Unregister removes a provider by name; removing an absent name is a no-op.
func (s *Service) Unregister(name string) {
	if _, ok := s.providers[name]; !ok {
		return
	}
	delete(s.providers, name)
	s.logger.Info("provider_unregistered", "provider", name)
}

// Lookup returns the provider registered under name, or nil when absent.
func (s *Service) Lookup(name string) types.Provider {
	return s.providers[name]
}

// Size returns the number of registered providers.
func (s *Service) Size() int { return len(s.providers) }

// Names returns the registered provider names in sorted order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Providers returns the registered instances ordered by name.
func (s *Service) Providers() []types.Provider {
	names := s.Names()
	out := make([]types.Provider, 0, len(names))
	for _, name := range names {
		out = append(out, s.providers[name])
	}
	return out
}
