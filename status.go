package agentic

import (
	"time"

	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/model/types"
)

// OrchestratorStatus identifies the orchestrator and summarises its tables.
type OrchestratorStatus struct {
	Name                string    `json:"name"`
	Version             string    `json:"version"`
	RegisteredProviders int       `json:"registeredProviders"`
	AvailableWorkflows  []string  `json:"availableWorkflows"`
	Timestamp           time.Time `json:"timestamp"`
}

// SystemStatus is a point-in-time snapshot of the orchestrator and every
// registered provider's health.
type SystemStatus struct {
	Orchestrator OrchestratorStatus      `json:"orchestrator"`
	Providers    map[string]types.Health `json:"providers"`
}

// SystemStatus collects a snapshot for health/observability consumers. The
// collection is best effort: a provider whose health call fails is reported
// with an error status instead of failing the snapshot.
func (s *Service) SystemStatus() SystemStatus {
	providers := make(map[string]types.Health, s.registry.Size())
	for _, provider := range s.registry.Providers() {
		providers[provider.Name()] = safeHealth(provider)
	}
	return SystemStatus{
		Orchestrator: OrchestratorStatus{
			Name:                s.config.Name,
			Version:             s.config.Version,
			RegisteredProviders: s.registry.Size(),
			AvailableWorkflows:  s.executor.Names(),
			Timestamp:           clock.Now(),
		},
		Providers: providers,
	}
}

func safeHealth(provider types.Provider) (health types.Health) {
	defer func() {
		if r := recover(); r != nil {
			health = types.Health{
				Name:      provider.Name(),
				Status:    model.StatusError,
				Timestamp: clock.Now(),
			}
		}
	}()
	return provider.Health()
}
