package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
	"github.com/IngIppoliti/agentic-learning-platform/internal/idgen"
)

func TestNewEnvelope(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	prevNow, prevID := clock.NowFunc, idgen.NewFunc
	clock.NowFunc = func() time.Time { return now }
	idgen.NewFunc = func() string { return "msg-1" }
	defer func() {
		clock.NowFunc, idgen.NewFunc = prevNow, prevID
	}()

	requestContext := &RequestContext{UserID: "u1", SessionID: "s1", RequestID: "r1"}
	envelope := NewEnvelope("api", AutoRoute, "profile_analysis", nil, requestContext)

	assert.Equal(t, "api", envelope.From)
	assert.Equal(t, AutoRoute, envelope.To)
	assert.Equal(t, "profile_analysis", envelope.Operation)
	assert.NotNil(t, envelope.Payload)
	assert.Equal(t, now, envelope.CreatedAt)
	assert.Equal(t, "msg-1", envelope.MessageID)
	assert.Equal(t, "r1", envelope.RequestID())
	assert.NoError(t, envelope.Validate())
}

func TestEnvelopeValidate(t *testing.T) {
	envelope := NewEnvelope("api", AutoRoute, "", nil, nil)
	assert.ErrorIs(t, envelope.Validate(), ErrEmptyOperation)
	assert.Equal(t, "", envelope.RequestID())
}

func TestOutcomeHelpers(t *testing.T) {
	completed := NewCompletedOutcome("profiler", map[string]any{"skillsFound": 3})
	assert.True(t, completed.IsCompleted())
	assert.False(t, completed.IsError())
	assert.Equal(t, "", completed.ErrorType())

	failed := NewErrorOutcome("orchestrator", ErrorTypeUnknownOperation, "no provider for operation: x")
	assert.True(t, failed.IsError())
	assert.False(t, failed.IsCompleted())
	assert.Equal(t, ErrorTypeUnknownOperation, failed.ErrorType())
	assert.NotEmpty(t, failed.Error)
}

func TestNewRequestContext(t *testing.T) {
	requestContext := NewRequestContext("u1", "s1")
	assert.Equal(t, "u1", requestContext.UserID)
	assert.Equal(t, "s1", requestContext.SessionID)
	assert.NotEmpty(t, requestContext.RequestID)
	assert.NotNil(t, requestContext.Metadata)
}
