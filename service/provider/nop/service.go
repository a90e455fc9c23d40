package nop

import (
	"context"

	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/provider"
)

const name = "nop"

// Service is a provider that performs no work and completes immediately. It
// is useful for wiring checks and as a placeholder workflow step.
type Service struct {
	*provider.Base
}

// New creates a nop provider.
func New() *Service {
	return &Service{Base: provider.NewBase(name, "1.0.0", provider.WithCapabilities(name))}
}

// ValidateInput accepts any payload.
func (s *Service) ValidateInput(context.Context, *model.Envelope) bool { return true }

// Process does nothing and reports completion.
func (s *Service) Process(context.Context, *model.Envelope) (*model.Outcome, error) {
	return model.NewCompletedOutcome(name, nil), nil
}
