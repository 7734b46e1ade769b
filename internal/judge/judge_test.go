package judge

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/planner"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/recommend"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/research"
)

func fixtureJudgeInputs(t *testing.T) (*planner.ProjectAnalysis, *research.Result, *recommend.Result) {
	t.Helper()

	planning := planner.NewAnalyzer().Analyze(context.Background(),
		"Build a real-time collaborative IDE",
		"needs auth, database, AI features",
	)
	res, err := research.NewStaticProvider().Research(context.Background(), planning.ProjectType, "development")
	require.NoError(t, err)
	rec := recommend.NewEngine().Recommend(context.Background(), planning, res)

	return planning, res, rec
}

func newJudge(t *testing.T, opts ...Option) *Judge {
	t.Helper()
	j, err := New(opts...)
	require.NoError(t, err)
	return j
}

func TestJudge_Evaluate_FourVariants(t *testing.T) {
	planning, res, rec := fixtureJudgeInputs(t)

	result := newJudge(t).Evaluate(context.Background(), planning, res, rec)

	require.Len(t, result.Evaluations, 4)
	ids := make([]string, 0, 4)
	for _, e := range result.Evaluations {
		ids = append(ids, e.PlanID)
	}
	assert.Contains(t, ids, VariantAggressiveAIFirst)
	assert.Contains(t, ids, VariantBalancedGrowth)
	assert.Contains(t, ids, VariantCompetitiveParity)
	assert.Contains(t, ids, VariantMoonshotInnovation)
}

func TestJudge_Evaluate_ScenarioScores(t *testing.T) {
	planning, res, rec := fixtureJudgeInputs(t)

	result := newJudge(t).Evaluate(context.Background(), planning, res, rec)

	byID := make(map[string]PlanEvaluation)
	for _, e := range result.Evaluations {
		byID[e.PlanID] = e
	}

	aggressive := byID[VariantAggressiveAIFirst]
	assert.GreaterOrEqual(t, aggressive.OverallScore, 85)
	assert.Equal(t, StronglyRecommend, aggressive.Recommendation)

	parity := byID[VariantCompetitiveParity]
	assert.Less(t, parity.OverallScore, 70)
}

func TestJudge_Evaluate_OverallScoreEqualsCategorySum(t *testing.T) {
	planning, res, rec := fixtureJudgeInputs(t)

	result := newJudge(t).Evaluate(context.Background(), planning, res, rec)

	for _, e := range result.Evaluations {
		sum := 0
		for _, cs := range e.CategoryScores {
			sum += cs.Score
			assert.LessOrEqual(t, cs.Score, cs.MaxScore, "%s/%s exceeds max", e.PlanID, cs.Category)
			assert.NotEmpty(t, cs.Rationale)
		}
		assert.Equal(t, sum, e.OverallScore, "overall score for %s must equal category sum", e.PlanID)
	}
}

func TestJudge_Evaluate_RankingInvariants(t *testing.T) {
	planning, res, rec := fixtureJudgeInputs(t)

	result := newJudge(t).Evaluate(context.Background(), planning, res, rec)

	require.NotEmpty(t, result.RankedRecommendations)
	for i := 1; i < len(result.RankedRecommendations); i++ {
		assert.GreaterOrEqual(t,
			result.RankedRecommendations[i-1].OverallScore,
			result.RankedRecommendations[i].OverallScore,
			"ranking must be non-increasing")
	}
	assert.Equal(t, result.RankedRecommendations[0], result.BestPlan)
	assert.ElementsMatch(t, result.Evaluations, result.RankedRecommendations)
}

func TestJudge_Evaluate_TiesKeepVariantOrder(t *testing.T) {
	// A scorer that scores everything identically forces a full tie.
	planning, res, rec := fixtureJudgeInputs(t)
	flat := scorerFunc(func(v PlanVariant, category string) float64 { return 0.5 })

	result := newJudge(t, WithScorer(flat)).Evaluate(context.Background(), planning, res, rec)

	require.Len(t, result.RankedRecommendations, len(result.Evaluations))
	for i := range result.Evaluations {
		assert.Equal(t, result.Evaluations[i].PlanID, result.RankedRecommendations[i].PlanID,
			"stable sort must preserve variant order on ties")
	}
}

func TestJudge_Evaluate_ConsensusCitesFigures(t *testing.T) {
	planning, res, rec := fixtureJudgeInputs(t)

	result := newJudge(t).Evaluate(context.Background(), planning, res, rec)

	assert.Contains(t, result.Consensus, result.BestPlan.PlanTitle)
	assert.Contains(t, result.Consensus, res.Market.Size)
	assert.Contains(t, result.Consensus, res.Market.GrowthRate)
	assert.Contains(t, result.Consensus, result.BestPlan.Risk.OverallRisk.String())
}

func TestJudge_Evaluate_ReasoningCitesScoreAndRisk(t *testing.T) {
	planning, res, rec := fixtureJudgeInputs(t)

	result := newJudge(t).Evaluate(context.Background(), planning, res, rec)

	for _, e := range result.Evaluations {
		assert.Contains(t, e.Reasoning, e.Risk.OverallRisk.String())
		assert.Regexp(t, `\d+/100`, e.Reasoning)
	}
}

func TestJudge_Evaluate_SparseRecommendationsDegrade(t *testing.T) {
	planning, res, _ := fixtureJudgeInputs(t)

	t.Run("only_high_priority", func(t *testing.T) {
		rec := &recommend.Result{
			StrategicRecommendations: []recommend.StrategicRecommendation{
				{Category: recommend.CategoryFeatureInnovation, Priority: recommend.PriorityHigh, Title: "Ship it"},
			},
			Confidence: 0.7,
		}

		result := newJudge(t).Evaluate(context.Background(), planning, res, rec)
		require.Len(t, result.Evaluations, 1)
		assert.Equal(t, VariantBalancedGrowth, result.BestPlan.PlanID)
	})

	t.Run("empty_recommendations", func(t *testing.T) {
		rec := &recommend.Result{Confidence: 0.7}

		result := newJudge(t).Evaluate(context.Background(), planning, res, rec)
		require.Len(t, result.Evaluations, 1, "evaluation must degrade to a singleton, never error")
		assert.Equal(t, result.BestPlan, result.RankedRecommendations[0])
	})
}

func TestJudge_Evaluate_StrengthsNeverEmpty(t *testing.T) {
	planning, res, rec := fixtureJudgeInputs(t)
	flat := scorerFunc(func(v PlanVariant, category string) float64 { return 0.7 })

	result := newJudge(t, WithScorer(flat)).Evaluate(context.Background(), planning, res, rec)

	for _, e := range result.Evaluations {
		require.NotEmpty(t, e.Strengths, "a variant with no standout category still gets a generic strength")
		assert.Equal(t, "Balanced approach with no dominant weakness", e.Strengths[0])
	}
}

func TestJudge_Evaluate_Deterministic(t *testing.T) {
	planning, res, rec := fixtureJudgeInputs(t)
	j := newJudge(t)

	first := j.Evaluate(context.Background(), planning, res, rec)
	second := j.Evaluate(context.Background(), planning, res, rec)

	assert.Equal(t, first, second)
}

func TestRecommendationTier(t *testing.T) {
	tests := []struct {
		score int
		want  Recommendation
	}{
		{100, StronglyRecommend},
		{85, StronglyRecommend},
		{84, Recommend},
		{70, Recommend},
		{69, Conditional},
		{55, Conditional},
		{54, NotRecommend},
		{0, NotRecommend},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, recommendationTier(tt.score), "score %d", tt.score)
	}
}

func TestCategoryContributionRounding(t *testing.T) {
	// round(raw x weight x 100) with half away from zero.
	assert.Equal(t, 24, int(math.Round(0.95*0.25*100)))
	assert.Equal(t, 18, int(math.Round(0.70*0.25*100)))
}

// scorerFunc adapts a function to the Scorer interface.
type scorerFunc func(variant PlanVariant, category string) float64

func (f scorerFunc) ScoreCategory(variant PlanVariant, category string) float64 {
	return f(variant, category)
}
