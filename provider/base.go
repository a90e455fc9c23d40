package provider

import (
	"context"
	"log/slog"

	"github.com/viant/structology/conv"

	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/model/types"
)

// Base carries the identity, capability set and cross-cutting behaviour shared
// by capability providers. Concrete providers embed it and implement
// ValidateInput and Process; Base supplies the rest of the types.Provider
// contract together with the logging pre/post hooks.
type Base struct {
	name         string
	version      string
	status       model.Status
	capabilities []string
	dependencies []string
	logger       *slog.Logger
	converter    *conv.Converter
}

// Option customises a Base.
type Option func(*Base)

// WithCapabilities sets the operation names the provider supports.
func WithCapabilities(capabilities ...string) Option {
	return func(b *Base) { b.capabilities = capabilities }
}

// WithDependencies sets the informational provider dependency list.
func WithDependencies(dependencies ...string) Option {
	return func(b *Base) { b.dependencies = dependencies }
}

// WithLogger overrides the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Base) { b.logger = logger }
}

// NewBase creates the shared provider core.
func NewBase(name, version string, opts ...Option) *Base {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	options.AccessUnexported = true
	b := &Base{
		name:      name,
		version:   version,
		status:    model.StatusIdle,
		logger:    slog.Default(),
		converter: conv.NewConverter(options),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the provider name.
func (b *Base) Name() string { return b.name }

// Version returns the provider version.
func (b *Base) Version() string { return b.version }

// Status returns the provider lifecycle state.
func (b *Base) Status() model.Status { return b.status }

// SetStatus updates the provider lifecycle state. Like registration, lifecycle
// transitions are expected to happen outside concurrent dispatch.
func (b *Base) SetStatus(status model.Status) { b.status = status }

// Capabilities returns a copy of the supported operation names.
func (b *Base) Capabilities() []string {
	out := make([]string, len(b.capabilities))
	copy(out, b.capabilities)
	return out
}

// Dependencies returns a copy of the provider dependency names.
func (b *Base) Dependencies() []string {
	out := make([]string, len(b.dependencies))
	copy(out, b.dependencies)
	return out
}

// CanHandle reports whether operation belongs to the capability set.
func (b *Base) CanHandle(operation string) bool {
	for _, capability := range b.capabilities {
		if capability == operation {
			return true
		}
	}
	return false
}

// Health returns a point-in-time snapshot of the provider.
func (b *Base) Health() types.Health {
	return types.Health{
		Name:         b.name,
		Version:      b.version,
		Status:       b.status,
		Capabilities: b.Capabilities(),
		Dependencies: b.Dependencies(),
		Timestamp:    clock.Now(),
	}
}

// PreProcess logs the inbound envelope. It returns the envelope unchanged.
func (b *Base) PreProcess(_ context.Context, envelope *model.Envelope) *model.Envelope {
	b.logger.Info("provider_pre_process",
		"provider", b.name,
		"operation", envelope.Operation,
		"requestId", envelope.RequestID())
	return envelope
}

// PostProcess logs the outcome. It returns the outcome unchanged.
func (b *Base) PostProcess(_ context.Context, outcome *model.Outcome) *model.Outcome {
	b.logger.Info("provider_post_process",
		"provider", b.name,
		"status", outcome.Status.String(),
		"executionDuration", outcome.ExecutionDuration)
	return outcome
}

// Failure converts an internal provider fault into a self-reported error
// outcome, logging it with its classification.
func (b *Base) Failure(err error) *model.Outcome {
	b.logger.Error("provider_error",
		"provider", b.name,
		"error", err)
	return model.NewErrorOutcome(b.name, model.ErrorTypeProviderExecution, err.Error())
}

// DecodeInput narrows the open payload map into the provider's typed input.
func (b *Base) DecodeInput(envelope *model.Envelope, target any) error {
	return b.converter.Convert(envelope.Payload, target)
}

// HasPayloadKeys reports whether every listed key is present in the payload.
// It is the common building block for ValidateInput implementations.
func (b *Base) HasPayloadKeys(envelope *model.Envelope, keys ...string) bool {
	for _, key := range keys {
		if _, ok := envelope.Payload[key]; !ok {
			return false
		}
	}
	return true
}
