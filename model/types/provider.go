package types

import (
	"context"
	"time"

	"github.com/IngIppoliti/agentic-learning-platform/model"
)

// Provider encapsulates one family of domain logic behind a uniform contract
// so that the router never needs to know concrete types. A single registered
// instance serves every request routed to it, so implementations must be safe
// to invoke concurrently with independent envelopes.
type Provider interface {
	// Name returns the unique registry name of the provider.
	Name() string
	// Version returns the provider version string.
	Version() string
	// Capabilities returns the operation names the provider claims to support.
	Capabilities() []string
	// Dependencies returns the names of other providers this one relies on.
	// The list is informational; the core does not enforce it.
	Dependencies() []string
	// CanHandle is a pure membership test against the capability set.
	CanHandle(operation string) bool
	// ValidateInput checks that the payload keys required by the envelope's
	// operation are present. It must be side-effect free; returning false
	// makes the router short-circuit without ever calling Process.
	ValidateInput(ctx context.Context, envelope *model.Envelope) bool
	// Process performs the actual work. Providers are expected to self-report
	// faults by returning an error outcome; a non-nil error (or a panic) is
	// treated by the router as a provider bug and normalized into a generic
	// error outcome.
	Process(ctx context.Context, envelope *model.Envelope) (*model.Outcome, error)
	// Health returns a point-in-time snapshot with no side effects.
	Health() Health
}

// PreProcessor is an optional hook invoked before Process. Implementations may
// only add observability side effects; they must preserve the envelope's
// business fields.
type PreProcessor interface {
	PreProcess(ctx context.Context, envelope *model.Envelope) *model.Envelope
}

// PostProcessor is an optional hook invoked after Process. Implementations
// must not alter the outcome's result or error semantics.
type PostProcessor interface {
	PostProcess(ctx context.Context, outcome *model.Outcome) *model.Outcome
}

// Health is a provider health snapshot as reported by Provider.Health.
type Health struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Status       model.Status `json:"status"`
	Capabilities []string     `json:"capabilities"`
	Dependencies []string     `json:"dependencies,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
}
