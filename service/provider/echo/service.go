package echo

import (
	"context"

	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/provider"
)

const name = "echo"

// Input is the typed view of the echo payload.
type Input struct {
	Message string `json:"message"`
}

// Service is a provider that echoes the message found in its payload. It
// exercises the full provider contract, including typed payload decoding, and
// doubles as a reference implementation for concrete providers.
type Service struct {
	*provider.Base
}

// New creates an echo provider.
func New() *Service {
	return &Service{Base: provider.NewBase(name, "1.0.0", provider.WithCapabilities(name))}
}

// ValidateInput requires a message key in the payload.
func (s *Service) ValidateInput(_ context.Context, envelope *model.Envelope) bool {
	return s.HasPayloadKeys(envelope, "message")
}

// Process returns the received message as the result.
func (s *Service) Process(_ context.Context, envelope *model.Envelope) (*model.Outcome, error) {
	input := Input{}
	if err := s.DecodeInput(envelope, &input); err != nil {
		return s.Failure(err), nil
	}
	return model.NewCompletedOutcome(name, map[string]any{"echo": input.Message}), nil
}
