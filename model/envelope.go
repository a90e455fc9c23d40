package model

import (
	"errors"
	"time"

	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
	"github.com/IngIppoliti/agentic-learning-platform/internal/idgen"
)

// AutoRoute is the sentinel target that asks the router to resolve the
// provider name from its routing table instead of addressing one directly.
const AutoRoute = "auto-route"

// ErrEmptyOperation reports an envelope constructed without an operation.
var ErrEmptyOperation = errors.New("envelope operation cannot be empty")

// Envelope is one addressed unit of dispatchable work. A fresh envelope is
// constructed for every dispatch, including every workflow step; envelopes are
// never reused. Payload ownership transfers to the router for the duration of
// a dispatch; callers must not mutate it while the dispatch is in flight.
type Envelope struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Operation string          `json:"operation"`
	Payload   map[string]any  `json:"payload,omitempty"`
	Context   *RequestContext `json:"context,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	MessageID string          `json:"messageId"`
}

// NewEnvelope creates an envelope with a generated message id and timestamp.
func NewEnvelope(from, to, operation string, payload map[string]any, requestContext *RequestContext) *Envelope {
	if payload == nil {
		payload = map[string]any{}
	}
	return &Envelope{
		From:      from,
		To:        to,
		Operation: operation,
		Payload:   payload,
		Context:   requestContext,
		CreatedAt: clock.Now(),
		MessageID: idgen.New(),
	}
}

// Validate checks the envelope invariants.
func (e *Envelope) Validate() error {
	if e.Operation == "" {
		return ErrEmptyOperation
	}
	return nil
}

// RequestID returns the correlation id of the underlying request context, or
// an empty string when no context was attached.
func (e *Envelope) RequestID() string {
	if e.Context == nil {
		return ""
	}
	return e.Context.RequestID
}
