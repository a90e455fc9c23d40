package model

import (
	"time"

	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
	"github.com/IngIppoliti/agentic-learning-platform/internal/idgen"
)

// RequestContext identifies one logical end-user request. The same instance is
// threaded unchanged through every envelope and outcome produced while the
// request is being serviced; it must not be mutated after construction.
type RequestContext struct {
	UserID    string         `json:"userId"`
	SessionID string         `json:"sessionId"`
	RequestID string         `json:"requestId"`
	CreatedAt time.Time      `json:"createdAt"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewRequestContext creates a request context with a generated correlation id.
func NewRequestContext(userID, sessionID string) *RequestContext {
	return &RequestContext{
		UserID:    userID,
		SessionID: sessionID,
		RequestID: idgen.New(),
		CreatedAt: clock.Now(),
		Metadata:  map[string]any{},
	}
}
