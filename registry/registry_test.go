package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IngIppoliti/agentic-learning-platform/internal/clock"
	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/model/types"
)

type fakeProvider struct {
	name    string
	version string
}

func (p *fakeProvider) Name() string            { return p.name }
func (p *fakeProvider) Version() string         { return p.version }
func (p *fakeProvider) Capabilities() []string  { return []string{p.name} }
func (p *fakeProvider) Dependencies() []string  { return nil }
func (p *fakeProvider) CanHandle(string) bool   { return true }
func (p *fakeProvider) ValidateInput(context.Context, *model.Envelope) bool { return true }
func (p *fakeProvider) Process(context.Context, *model.Envelope) (*model.Outcome, error) {
	return model.NewCompletedOutcome(p.name, nil), nil
}
func (p *fakeProvider) Health() types.Health {
	return types.Health{Name: p.name, Version: p.version, Status: model.StatusIdle, Timestamp: clock.Now()}
}

func TestRegistryReplacementIdempotence(t *testing.T) {
	reg := New()
	first := &fakeProvider{name: "profiler", version: "1.0.0"}
	second := &fakeProvider{name: "profiler", version: "2.0.0"}

	reg.Register(first)
	reg.Register(second)

	assert.Equal(t, 1, reg.Size())
	assert.Equal(t, "2.0.0", reg.Lookup("profiler").Version())
}

func TestRegistryUnregister(t *testing.T) {
	reg := New()
	reg.Register(&fakeProvider{name: "profiler"})

	reg.Unregister("profiler")
	assert.Equal(t, 0, reg.Size())
	assert.Nil(t, reg.Lookup("profiler"))

	// Removing an absent name is a no-op, not an error.
	reg.Unregister("profiler")
	assert.Equal(t, 0, reg.Size())
}

func TestRegistryNames(t *testing.T) {
	reg := New()
	reg.Register(&fakeProvider{name: "planner"})
	reg.Register(&fakeProvider{name: "curator"})
	reg.Register(&fakeProvider{name: "profiler"})

	assert.Equal(t, []string{"curator", "planner", "profiler"}, reg.Names())
	providers := reg.Providers()
	assert.Len(t, providers, 3)
	assert.Equal(t, "curator", providers[0].Name())
}
