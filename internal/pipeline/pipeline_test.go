package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/config"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/events"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/judge"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/research"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

var fixtureRequest = Request{
	Description:  "Build a real-time collaborative IDE",
	Requirements: "needs auth, database, AI features",
	IndustryHint: "development",
}

func fixtureConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Execution.StartDate = "2026-03-02"
	return cfg
}

func TestRun_AllStagesProduceOutput(t *testing.T) {
	p, err := New(fixtureConfig())
	require.NoError(t, err)

	result, err := p.Run(context.Background(), fixtureRequest)
	require.NoError(t, err)

	require.NotNil(t, result.Planning)
	require.NotNil(t, result.Research)
	require.NotNil(t, result.Recommendation)
	require.NotNil(t, result.Judgment)
	require.NotNil(t, result.Execution)

	assert.Equal(t, "Development Environment", result.Planning.ProjectType)
	assert.Equal(t, judge.VariantAggressiveAIFirst, result.Judgment.BestPlan.PlanID)
	assert.Equal(t, "exec-"+judge.VariantAggressiveAIFirst, result.Execution.Primary.ID)
	assert.False(t, result.Research.Degraded)
}

func TestRun_Deterministic(t *testing.T) {
	p, err := New(fixtureConfig())
	require.NoError(t, err)

	first, err := p.Run(context.Background(), fixtureRequest)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), fixtureRequest)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRun_ResultRoundTripsThroughJSON(t *testing.T) {
	p, err := New(fixtureConfig())
	require.NoError(t, err)

	result, err := p.Run(context.Background(), fixtureRequest)
	require.NoError(t, err)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded Result
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	reencoded, err := json.Marshal(&decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(encoded), string(reencoded))
}

func TestNew_RejectsBadRubricWeights(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Judge.RubricWeights = map[string]float64{
		judge.CategoryMarketViability: 0.9,
	}

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.RUBRIC_WEIGHT_INVALID))
}

func TestNew_LiveProviderRequiresModel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Research.Provider = "live"
	cfg.Research.Model = "gpt-4o-mini"

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.CONFIG_VALIDATION_FAILED))
}

func TestRun_PublishesStageEvents(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	ch, cleanup := bus.Subscribe(context.Background(), events.Filter{}, 128)
	defer cleanup()

	p, err := New(fixtureConfig(), WithBus(bus))
	require.NoError(t, err)

	_, err = p.Run(context.Background(), fixtureRequest)
	require.NoError(t, err)

	var seen []events.Event
	deadline := time.After(time.Second)
	for {
		var done bool
		select {
		case event := <-ch:
			seen = append(seen, event)
			done = event.Type == events.EventPipelineCompleted
		case <-deadline:
			t.Fatal("timed out waiting for pipeline.completed")
		}
		if done {
			break
		}
	}

	count := map[events.EventType]int{}
	for _, event := range seen {
		count[event.Type]++
	}
	assert.Equal(t, 1, count[events.EventPipelineStarted])
	assert.Equal(t, 5, count[events.EventStageStarted])
	assert.Equal(t, 5, count[events.EventStageCompleted])
	assert.Equal(t, 1, count[events.EventPipelineCompleted])
	assert.Zero(t, count[events.EventStageDegraded])

	// Every event belongs to the same run.
	runID := seen[0].RunID
	for _, event := range seen {
		assert.Equal(t, runID, event.RunID)
	}
}

type degradedProvider struct{}

func (degradedProvider) Research(ctx context.Context, projectType, industry string) (*research.Result, error) {
	static := research.NewStaticProvider()
	result, err := static.Research(ctx, projectType, industry)
	if err != nil {
		return nil, err
	}
	result.Degraded = true
	return result, nil
}

func TestRun_DegradedResearchEmitsEvent(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	ch, cleanup := bus.Subscribe(context.Background(),
		events.Filter{Types: []events.EventType{events.EventStageDegraded}}, 8)
	defer cleanup()

	p, err := New(fixtureConfig(), WithBus(bus), WithResearchProvider(degradedProvider{}))
	require.NoError(t, err)

	result, err := p.Run(context.Background(), fixtureRequest)
	require.NoError(t, err)
	assert.True(t, result.Research.Degraded)

	select {
	case event := <-ch:
		assert.Equal(t, events.StageResearcher, event.Stage)
	case <-time.After(time.Second):
		t.Fatal("no stage.degraded event published")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	p, err := New(fixtureConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Run(ctx, fixtureRequest)
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.PIPELINE_CANCELLED))
}
