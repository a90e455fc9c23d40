package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/IngIppoliti/agentic-learning-platform/cache"
	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/model/types"
	"github.com/IngIppoliti/agentic-learning-platform/registry"
	"github.com/IngIppoliti/agentic-learning-platform/tracing"
)

// DefaultCacheTTL is applied when no TTL is configured.
const DefaultCacheTTL = 5 * time.Minute

// Listener is invoked once per routed dispatch with the envelope and the
// outcome, regardless of status. Implementations can log, collect metrics or
// perform any other side effects; they must not mutate either argument.
type Listener func(envelope *model.Envelope, outcome *model.Outcome)

// Option customises the router.
type Option func(*Service)

// WithCache sets the best-effort outcome store.
func WithCache(store cache.Store) Option {
	return func(s *Service) { s.cache = store }
}

// WithCacheTTL sets the expiry applied to cached outcomes.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) { s.cacheTTL = ttl }
}

// WithLogger overrides the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithListener sets the dispatch listener. Passing nil disables the callback.
func WithListener(l Listener) Option {
	return func(s *Service) { s.listener = l }
}

// Service performs single-dispatch resolution and invocation with uniform
// failure handling. The routing table is read-only after construction.
type Service struct {
	name     string
	rules    map[string]string
	registry *registry.Service
	cache    cache.Store
	cacheTTL time.Duration
	logger   *slog.Logger
	listener Listener
}

// New creates a router owned by the orchestrator identified by name. rules
// maps operation names to provider names and is treated as read-only.
func New(name string, rules map[string]string, reg *registry.Service, opts ...Option) *Service {
	s := &Service{
		name:     name,
		rules:    rules,
		registry: reg,
		cache:    cache.NewNop(),
		cacheTTL: DefaultCacheTTL,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rules == nil {
		s.rules = map[string]string{}
	}
	return s
}

// Rules returns the configured operation names in no particular order.
func (s *Service) Rules() map[string]string {
	out := make(map[string]string, len(s.rules))
	for operation, provider := range s.rules {
		out[operation] = provider
	}
	return out
}

// Route resolves the envelope to a provider, invokes it and returns the
// outcome. Every dispatch-level failure is reported through the outcome's
// status; Route never returns nil.
func (s *Service) Route(ctx context.Context, envelope *model.Envelope) *model.Outcome {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("router.route %s", envelope.Operation), "INTERNAL")
	outcome := s.route(ctx, envelope)
	if outcome.IsError() {
		tracing.EndSpan(span, errors.New(outcome.Error))
	} else {
		tracing.EndSpan(span, nil)
	}
	if s.listener != nil {
		s.listener(envelope, outcome)
	}
	return outcome
}

func (s *Service) route(ctx context.Context, envelope *model.Envelope) *model.Outcome {
	if err := envelope.Validate(); err != nil {
		return model.NewErrorOutcome(s.name, model.ErrorTypeValidation, err.Error())
	}

	target := envelope.To
	if target == "" || target == model.AutoRoute {
		target = s.rules[envelope.Operation]
		if target == "" {
			return model.NewErrorOutcome(s.name, model.ErrorTypeUnknownOperation,
				types.NewUnknownOperationError(envelope.Operation).Error())
		}
	}

	provider := s.registry.Lookup(target)
	if provider == nil {
		return model.NewErrorOutcome(s.name, model.ErrorTypeProviderUnavailable,
			types.NewProviderUnavailableError(target).Error())
	}

	// Guards against routing-table/provider drift.
	if !provider.CanHandle(envelope.Operation) {
		return model.NewErrorOutcome(s.name, model.ErrorTypeCapabilityMismatch,
			types.NewCapabilityMismatchError(target, envelope.Operation).Error())
	}

	if !provider.ValidateInput(ctx, envelope) {
		return model.NewErrorOutcome(s.name, model.ErrorTypeValidation,
			types.NewInvalidInputError(envelope.Operation).Error())
	}

	s.logger.Info("message_routed",
		"from", envelope.From,
		"to", target,
		"operation", envelope.Operation,
		"requestId", envelope.RequestID())

	outcome := s.invoke(ctx, provider, envelope)
	s.cacheOutcome(ctx, envelope, outcome)
	return outcome
}

// invoke runs the provider hooks and Process, recording wall-clock duration.
// A panic escaping the provider is converted into a generic error outcome.
func (s *Service) invoke(ctx context.Context, provider types.Provider, envelope *model.Envelope) (outcome *model.Outcome) {
	started := clock.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("routing_error",
				"operation", envelope.Operation,
				"requestId", envelope.RequestID(),
				"error", r)
			outcome = model.NewErrorOutcome(provider.Name(), model.ErrorTypeProviderPanic,
				fmt.Sprintf("provider fault: %v", r))
			outcome.ExecutionDuration = clock.Since(started)
		}
	}()

	if pre, ok := provider.(types.PreProcessor); ok {
		envelope = pre.PreProcess(ctx, envelope)
	}

	outcome, err := provider.Process(ctx, envelope)
	duration := clock.Since(started)
	if err != nil {
		outcome = model.NewErrorOutcome(provider.Name(), model.ErrorTypeProviderExecution, err.Error())
	} else if outcome == nil {
		outcome = model.NewErrorOutcome(provider.Name(), model.ErrorTypeProviderExecution,
			"provider returned no outcome")
	}
	outcome.ExecutionDuration = duration

	if post, ok := provider.(types.PostProcessor); ok {
		outcome = post.PostProcess(ctx, outcome)
	}
	return outcome
}

// cacheOutcome writes a successful outcome to the configured store. The write
// is best effort: any failure is logged at warning level and swallowed, it
// must never change the returned outcome or reach the caller.
func (s *Service) cacheOutcome(ctx context.Context, envelope *model.Envelope, outcome *model.Outcome) {
	if s.cache == nil || !outcome.IsCompleted() || len(outcome.Result) == 0 {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("cache_error", "operation", envelope.Operation, "error", r)
		}
	}()
	key := cacheKey(envelope.Operation, envelope.Payload)
	entry := map[string]any{
		"result":    outcome.Result,
		"timestamp": clock.Now().Format(time.RFC3339Nano),
		"producer":  outcome.Producer,
	}
	data, err := json.Marshal(entry)
	if err == nil {
		err = s.cache.SetWithTTL(ctx, key, data, s.cacheTTL)
	}
	if err != nil {
		s.logger.Warn("cache_error", "key", key, "error", err)
	}
}

// cacheKey derives a deterministic key from the operation and payload.
func cacheKey(operation string, payload map[string]any) string {
	data, _ := json.Marshal(payload)
	h := fnv.New64a()
	_, _ = h.Write(data)
	return fmt.Sprintf("outcome:%s:%x", operation, h.Sum64())
}
