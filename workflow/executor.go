package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/router"
	"github.com/IngIppoliti/agentic-learning-platform/tracing"
)

// ErrUnknownWorkflow reports a workflow name absent from the workflow table.
// It is a caller-usage error detected before any dispatch begins, which is why
// it surfaces as an error rather than as an outcome.
var ErrUnknownWorkflow = errors.New("unknown workflow")

// Option customises the executor.
type Option func(*Service)

// WithLogger overrides the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// Service executes configured workflows. The workflow table is read-only after
// construction.
type Service struct {
	name      string
	workflows map[string][]string
	router    *router.Service
	logger    *slog.Logger
}

// New creates an executor sending envelopes on behalf of the orchestrator
// identified by name. workflows maps workflow names to ordered operation
// lists.
func New(name string, workflows map[string][]string, rtr *router.Service, opts ...Option) *Service {
	s := &Service{
		name:      name,
		workflows: workflows,
		router:    rtr,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workflows == nil {
		s.workflows = map[string][]string{}
	}
	return s
}

// Names returns the configured workflow names in sorted order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.workflows))
	for name := range s.workflows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Steps returns the ordered operations of the named workflow, or nil when the
// workflow is not configured.
func (s *Service) Steps(name string) []string {
	steps, ok := s.workflows[name]
	if !ok {
		return nil
	}
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}

// Execute runs the named workflow. Each step receives a fresh envelope whose
// payload is a snapshot of the working data: initialData merged with the
// result of every completed step so far, later keys overwriting earlier ones.
// The first step returning an error outcome aborts the run; the partial
// outcome list including the failing one is returned and no rollback of
// earlier steps is attempted.
func (s *Service) Execute(ctx context.Context, name string, requestContext *model.RequestContext, initialData map[string]any) ([]*model.Outcome, error) {
	steps, ok := s.workflows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownWorkflow, name)
	}

	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("workflow.execute %s", name), "INTERNAL")
	defer tracing.EndSpan(span, nil)

	requestID := ""
	if requestContext != nil {
		requestID = requestContext.RequestID
	}

	working := make(map[string]any, len(initialData))
	for k, v := range initialData {
		working[k] = v
	}

	s.logger.Info("workflow_started",
		"workflow", name,
		"steps", steps,
		"requestId", requestID)

	outcomes := make([]*model.Outcome, 0, len(steps))
	for _, operation := range steps {
		payload := make(map[string]any, len(working))
		for k, v := range working {
			payload[k] = v
		}
		envelope := model.NewEnvelope(s.name, model.AutoRoute, operation, payload, requestContext)

		outcome := s.router.Route(ctx, envelope)
		outcomes = append(outcomes, outcome)

		if outcome.IsError() {
			s.logger.Error("workflow_step_failed",
				"workflow", name,
				"step", operation,
				"error", outcome.Error,
				"requestId", requestID)
			break
		}

		for k, v := range outcome.Result {
			working[k] = v
		}
		s.logger.Info("workflow_step_completed",
			"workflow", name,
			"step", operation,
			"status", outcome.Status.String(),
			"requestId", requestID)
	}

	successful := 0
	for _, outcome := range outcomes {
		if outcome.IsCompleted() {
			successful++
		}
	}
	s.logger.Info("workflow_completed",
		"workflow", name,
		"totalSteps", len(outcomes),
		"successfulSteps", successful,
		"requestId", requestID)

	return outcomes, nil
}
