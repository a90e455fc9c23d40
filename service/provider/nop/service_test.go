package nop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IngIppoliti/agentic-learning-platform/model"
)

func TestNop(t *testing.T) {
	service := New()
	ctx := context.Background()

	assert.True(t, service.CanHandle("nop"))
	assert.True(t, service.ValidateInput(ctx, model.NewEnvelope("test", "nop", "nop", nil, nil)))

	outcome, err := service.Process(ctx, model.NewEnvelope("test", "nop", "nop", nil, nil))
	assert.NoError(t, err)
	assert.True(t, outcome.IsCompleted())
	assert.Empty(t, outcome.Result)
}
