package agentic_test

import (
	"context"
	"embed"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/embed"

	agentic "github.com/IngIppoliti/agentic-learning-platform"
	"github.com/IngIppoliti/agentic-learning-platform/cache"
	"github.com/IngIppoliti/agentic-learning-platform/model"
	"github.com/IngIppoliti/agentic-learning-platform/provider"
)

//go:embed testdata/*
var embedFS embed.FS

type stubProvider struct {
	*provider.Base
	result map[string]any
	calls  int
}

func newStubProvider(name, operation string, result map[string]any) *stubProvider {
	return &stubProvider{
		Base:   provider.NewBase(name, "1.0.0", provider.WithCapabilities(operation)),
		result: result,
	}
}

func (p *stubProvider) ValidateInput(context.Context, *model.Envelope) bool { return true }

func (p *stubProvider) Process(context.Context, *model.Envelope) (*model.Outcome, error) {
	p.calls++
	return model.NewCompletedOutcome(p.Name(), p.result), nil
}

func TestServiceRoute(t *testing.T) {
	profiler := newStubProvider("profiler", "profile_analysis", map[string]any{"skillsFound": 3})
	svc := agentic.New(
		agentic.WithConfig(&agentic.Config{
			Name:    "master_orchestrator",
			Version: "1.0.0",
			Routes:  map[string]string{"profile_analysis": "profiler"},
		}),
		agentic.WithProviders(profiler),
		agentic.WithCache(cache.NewMemory()),
	)

	outcome := svc.Route(context.Background(),
		model.NewEnvelope("api", model.AutoRoute, "profile_analysis", map[string]any{}, nil))

	assert.True(t, outcome.IsCompleted())
	assert.Equal(t, "profiler", outcome.Producer)
	assert.Equal(t, 3, outcome.Result["skillsFound"])
	assert.GreaterOrEqual(t, outcome.ExecutionDuration, time.Duration(0))
}

func TestServiceWorkflowFromDefinition(t *testing.T) {
	svc := agentic.New(
		agentic.WithDefinitionFsOptions(&embedFS),
		agentic.WithDefinitionBaseURL("embed:///testdata"),
	)

	ctx := context.Background()
	definition, err := svc.LoadDefinition(ctx, "onboarding")
	assert.NoError(t, err)
	assert.NotNil(t, definition)
	assert.Equal(t, "onboarding", definition.Name)
	svc.UseDefinition(definition)

	profiler := newStubProvider("profiler", "profile_analysis", map[string]any{"skills": []string{"go"}})
	planner := newStubProvider("planner", "generate_learning_path", map[string]any{"path": "backend"})
	curator := newStubProvider("curator", "curate_content", map[string]any{"items": 5})
	svc.Register(profiler)
	svc.Register(planner)
	svc.Register(curator)

	requestContext := model.NewRequestContext("u1", "s1")
	outcomes, err := svc.ExecuteWorkflow(ctx, "new_user_onboarding", requestContext, map[string]any{"userId": "u1"})

	assert.NoError(t, err)
	assert.Len(t, outcomes, 3)
	for _, outcome := range outcomes {
		assert.True(t, outcome.IsCompleted())
	}
	assert.Equal(t, 1, profiler.calls)
	assert.Equal(t, 1, planner.calls)
	assert.Equal(t, 1, curator.calls)
}

func TestServiceSystemStatus(t *testing.T) {
	profiler := newStubProvider("profiler", "profile_analysis", nil)
	svc := agentic.New(
		agentic.WithConfig(&agentic.Config{
			Name:    "master_orchestrator",
			Version: "1.0.0",
			Routes:  map[string]string{"profile_analysis": "profiler"},
			Workflows: map[string][]string{
				"onboarding": {"profile_analysis"},
			},
		}),
		agentic.WithProviders(profiler),
	)

	status := svc.SystemStatus()

	assert.Equal(t, "master_orchestrator", status.Orchestrator.Name)
	assert.Equal(t, "1.0.0", status.Orchestrator.Version)
	assert.Equal(t, 1, status.Orchestrator.RegisteredProviders)
	assert.Equal(t, []string{"onboarding"}, status.Orchestrator.AvailableWorkflows)
	assert.False(t, status.Orchestrator.Timestamp.IsZero())

	health, ok := status.Providers["profiler"]
	assert.True(t, ok)
	assert.Equal(t, "profiler", health.Name)
	assert.Equal(t, model.StatusIdle, health.Status)
}

func TestServiceUnregister(t *testing.T) {
	profiler := newStubProvider("profiler", "profile_analysis", nil)
	svc := agentic.New(
		agentic.WithConfig(&agentic.Config{
			Name:   "master_orchestrator",
			Routes: map[string]string{"profile_analysis": "profiler"},
		}),
		agentic.WithProviders(profiler),
	)

	svc.Unregister("profiler")
	outcome := svc.Route(context.Background(),
		model.NewEnvelope("api", model.AutoRoute, "profile_analysis", nil, nil))

	assert.True(t, outcome.IsError())
	assert.Equal(t, model.ErrorTypeProviderUnavailable, outcome.ErrorType())
	assert.Equal(t, 0, profiler.calls)
}

func TestDefaultConfig(t *testing.T) {
	config := agentic.DefaultConfig()
	assert.NoError(t, config.Validate())
	assert.Equal(t, "profiling_agent", config.Routes["profile_analysis"])
	assert.Equal(t,
		[]string{"profile_analysis", "generate_learning_path", "curate_content"},
		config.Workflows["new_user_onboarding"])
}

func TestConfigValidate(t *testing.T) {
	config := &agentic.Config{
		Name:   "master_orchestrator",
		Routes: map[string]string{"profile_analysis": "profiling_agent"},
		Workflows: map[string][]string{
			"onboarding": {"curate_content"},
		},
	}
	assert.Error(t, config.Validate())
}
