package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/planner"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/research"
)

func fixtureInputs(t *testing.T) (*planner.ProjectAnalysis, *research.Result) {
	t.Helper()

	analyzer := planner.NewAnalyzer()
	planning := analyzer.Analyze(context.Background(),
		"Build a real-time collaborative IDE",
		"needs auth, database, AI features",
	)

	provider := research.NewStaticProvider()
	res, err := provider.Research(context.Background(), planning.ProjectType, "development")
	require.NoError(t, err)

	return planning, res
}

func TestEngine_Recommend_EnumsAlwaysValid(t *testing.T) {
	planning, res := fixtureInputs(t)
	engine := NewEngine()

	result := engine.Recommend(context.Background(), planning, res)

	require.NotEmpty(t, result.StrategicRecommendations)
	for _, rec := range result.StrategicRecommendations {
		assert.True(t, rec.Category.IsValid(), "category %q outside the fixed enum", rec.Category)
		assert.True(t, rec.Priority.IsValid(), "priority %q outside the fixed enum", rec.Priority)
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.Description)
	}

	require.Len(t, result.InnovationSuggestions, 3)
	for _, s := range result.InnovationSuggestions {
		assert.True(t, s.Type.IsValid(), "innovation type %q outside the fixed enum", s.Type)
		assert.NotEmpty(t, s.Concept)
	}
}

func TestEngine_Recommend_CoversPriorityTiers(t *testing.T) {
	planning, res := fixtureInputs(t)
	engine := NewEngine()

	result := engine.Recommend(context.Background(), planning, res)

	byPriority := make(map[Priority]int)
	for _, rec := range result.StrategicRecommendations {
		byPriority[rec.Priority]++
	}

	// The Judge buckets variants by these tiers; each must be populated.
	assert.GreaterOrEqual(t, byPriority[PriorityCritical], 1)
	assert.GreaterOrEqual(t, byPriority[PriorityHigh], 1)
	assert.GreaterOrEqual(t, byPriority[PriorityMedium], 1)
}

func TestEngine_Recommend_HasDisruptiveInnovation(t *testing.T) {
	planning, res := fixtureInputs(t)
	engine := NewEngine()

	result := engine.Recommend(context.Background(), planning, res)

	var disruptive int
	for _, s := range result.InnovationSuggestions {
		if s.Type == InnovationDisruptive {
			disruptive++
		}
	}
	assert.Equal(t, 1, disruptive)
}

func TestEngine_Recommend_PositioningFromMarketAnalysis(t *testing.T) {
	planning, res := fixtureInputs(t)
	engine := NewEngine()

	result := engine.Recommend(context.Background(), planning, res)

	assert.Contains(t, result.Positioning, res.Market.GrowthRate)
	assert.Contains(t, result.Positioning, planning.ProjectType)
	assert.NotEmpty(t, result.UniqueValueProps)
}

func TestEngine_Recommend_ConfidencePropagates(t *testing.T) {
	planning, res := fixtureInputs(t)
	engine := NewEngine()

	result := engine.Recommend(context.Background(), planning, res)

	assert.InDelta(t, (planning.Confidence+res.Confidence)/2, result.Confidence, 1e-9)
}

func TestEngine_Recommend_Deterministic(t *testing.T) {
	planning, res := fixtureInputs(t)
	engine := NewEngine()

	first := engine.Recommend(context.Background(), planning, res)
	second := engine.Recommend(context.Background(), planning, res)

	assert.Equal(t, first, second)
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryMonetization.IsValid())
	assert.False(t, Category("growth-hacking").IsValid())
}

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.False(t, Priority("urgent").IsValid())
}

func TestInnovationType_IsValid(t *testing.T) {
	assert.True(t, InnovationArchitectural.IsValid())
	assert.False(t, InnovationType("radical").IsValid())
}
