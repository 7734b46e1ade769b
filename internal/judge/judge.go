// Package judge implements the decision core of the strategy pipeline. It
// derives candidate plan variants from the recommendation set, scores each
// against a fixed weighted rubric, assesses risk, and ranks the field into
// a judgment with a consensus narrative.
package judge

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/planner"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/recommend"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/research"
)

// Recommendation tiers assigned from the overall score.
type Recommendation string

const (
	StronglyRecommend Recommendation = "strongly-recommend"
	Recommend         Recommendation = "recommend"
	Conditional       Recommendation = "conditional"
	NotRecommend      Recommendation = "not-recommend"
)

// String returns the string representation of the recommendation tier.
func (r Recommendation) String() string {
	return string(r)
}

// Score thresholds for recommendation tiers.
const (
	stronglyRecommendThreshold = 85
	recommendThreshold         = 70
	conditionalThreshold       = 55
)

// Strength/weakness thresholds as fractions of a category's max score.
const (
	strengthFraction = 0.8
	weaknessFraction = 0.6
)

// favorableRawThreshold switches a category rationale from neutral to
// favorable phrasing.
const favorableRawThreshold = 0.8

// CategoryScore is one category's weighted contribution to an evaluation.
type CategoryScore struct {
	Category  string `json:"category"`
	Score     int    `json:"score"`
	MaxScore  int    `json:"max_score"`
	Rationale string `json:"rationale"`
}

// PlanEvaluation is the scored judgment of one plan variant. The variant
// itself is ephemeral; the evaluation carries the summary attributes later
// stages need (id, title, tier, timeline).
type PlanEvaluation struct {
	PlanID         string         `json:"plan_id"`
	PlanTitle      string         `json:"plan_title"`
	InvestmentTier InvestmentTier `json:"investment_tier"`
	Timeline       string         `json:"timeline"`
	OverallScore   int            `json:"overall_score"`
	CategoryScores []CategoryScore `json:"category_scores"`
	Strengths      []string       `json:"strengths"`
	Weaknesses     []string       `json:"weaknesses"`
	Risk           RiskAssessment `json:"risk"`
	Recommendation Recommendation `json:"recommendation"`
	Reasoning      string         `json:"reasoning"`
}

// Result is the Judge stage output: every evaluation, the same list ranked
// by score, the winner, a consensus narrative, and the rubric used.
type Result struct {
	Evaluations           []PlanEvaluation `json:"evaluations"`
	RankedRecommendations []PlanEvaluation `json:"ranked_recommendations"`
	BestPlan              PlanEvaluation   `json:"best_plan"`
	Consensus             string           `json:"consensus"`
	EvaluationMetrics     *Rubric          `json:"evaluation_metrics"`
	Confidence            float64          `json:"confidence"`
}

// Judge evaluates plan variants against a rubric. Safe for concurrent use.
type Judge struct {
	rubric *Rubric
	scorer Scorer
	logger *slog.Logger
}

// Option configures a Judge.
type Option func(*Judge)

// WithRubric overrides the default rubric. The rubric is re-validated at
// construction.
func WithRubric(rubric *Rubric) Option {
	return func(j *Judge) {
		if rubric != nil {
			j.rubric = rubric
		}
	}
}

// WithScorer overrides the default table scorer.
func WithScorer(scorer Scorer) Option {
	return func(j *Judge) {
		if scorer != nil {
			j.scorer = scorer
		}
	}
}

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(j *Judge) {
		if logger != nil {
			j.logger = logger
		}
	}
}

// New creates a Judge. The rubric weight invariant is enforced here, at
// construction time, so a misconfigured rubric can never reach evaluation.
func New(opts ...Option) (*Judge, error) {
	j := &Judge{
		rubric: DefaultRubric(),
		scorer: NewTableScorer(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(j)
	}

	if _, err := NewRubric(j.rubric.Categories); err != nil {
		return nil, err
	}

	return j, nil
}

// Evaluate scores every derivable variant and ranks the field. It never
// partially fails: sparse recommendations degrade to fewer variants
// (minimum one) and ranking degrades to a singleton list.
func (j *Judge) Evaluate(ctx context.Context, planning *planner.ProjectAnalysis, res *research.Result, rec *recommend.Result) *Result {
	variants := generateVariants(rec)

	evaluations := make([]PlanEvaluation, 0, len(variants))
	for _, variant := range variants {
		evaluations = append(evaluations, j.evaluateVariant(variant))
	}

	ranked := make([]PlanEvaluation, len(evaluations))
	copy(ranked, evaluations)
	sort.SliceStable(ranked, func(i, k int) bool {
		return ranked[i].OverallScore > ranked[k].OverallScore
	})

	best := ranked[0]

	result := &Result{
		Evaluations:           evaluations,
		RankedRecommendations: ranked,
		BestPlan:              best,
		Consensus:             consensus(best, res),
		EvaluationMetrics:     j.rubric,
		Confidence:            judgmentConfidence(rec, len(variants)),
	}

	j.logger.DebugContext(ctx, "variants judged",
		"variants", len(variants),
		"best_plan", best.PlanID,
		"best_score", best.OverallScore,
		"recommendation", best.Recommendation,
	)

	return result
}

// evaluateVariant scores one variant across every rubric category.
func (j *Judge) evaluateVariant(variant PlanVariant) PlanEvaluation {
	scores := make([]CategoryScore, 0, len(j.rubric.Categories))
	total := 0
	for _, category := range j.rubric.Categories {
		raw := j.scorer.ScoreCategory(variant, category.Name)
		score := int(math.Round(raw * category.Weight * 100))
		total += score

		scores = append(scores, CategoryScore{
			Category:  category.Name,
			Score:     score,
			MaxScore:  category.MaxScore(),
			Rationale: rationale(variant, category.Name, raw),
		})
	}

	risk := assessRisk(variant)
	strengths, weaknesses := strengthsAndWeaknesses(scores)
	tier := recommendationTier(total)

	return PlanEvaluation{
		PlanID:         variant.ID,
		PlanTitle:      variant.Title,
		InvestmentTier: variant.InvestmentTier,
		Timeline:       variant.Timeline,
		OverallScore:   total,
		CategoryScores: scores,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Risk:           risk,
		Recommendation: tier,
		Reasoning: fmt.Sprintf("%s scores %d/100 against the rubric with %s overall risk, placing it in the %s tier.",
			variant.Title, total, risk.OverallRisk, tier),
	}
}

// rationale phrases a category score: favorable above the raw threshold,
// neutral otherwise.
func rationale(variant PlanVariant, category string, raw float64) string {
	if raw > favorableRawThreshold {
		return fmt.Sprintf("%s is a standout dimension for %s (raw %.2f)", category, variant.Title, raw)
	}
	return fmt.Sprintf("%s is adequate for %s (raw %.2f)", category, variant.Title, raw)
}

// strengthsAndWeaknesses classifies categories by their fraction of the
// maximum score. A variant with no qualifying strength gets a single
// generic entry rather than an empty list.
func strengthsAndWeaknesses(scores []CategoryScore) (strengths, weaknesses []string) {
	for _, cs := range scores {
		switch {
		case float64(cs.Score) >= strengthFraction*float64(cs.MaxScore):
			strengths = append(strengths, cs.Category)
		case float64(cs.Score) < weaknessFraction*float64(cs.MaxScore):
			weaknesses = append(weaknesses, cs.Category)
		}
	}

	if len(strengths) == 0 {
		strengths = []string{"Balanced approach with no dominant weakness"}
	}
	return strengths, weaknesses
}

// recommendationTier maps an overall score onto the recommendation enum.
func recommendationTier(score int) Recommendation {
	switch {
	case score >= stronglyRecommendThreshold:
		return StronglyRecommend
	case score >= recommendThreshold:
		return Recommend
	case score >= conditionalThreshold:
		return Conditional
	default:
		return NotRecommend
	}
}

// consensus builds the narrative naming the winner, citing its score, the
// researched market figures, and the winner's risk tier.
func consensus(best PlanEvaluation, res *research.Result) string {
	return fmt.Sprintf(
		"Consensus: %s (%s) wins at %d/100. In a market of %s growing at %s, its %s profile justifies the %s investment tier; overall risk is %s.",
		best.PlanTitle, best.PlanID, best.OverallScore,
		res.Market.Size, res.Market.GrowthRate,
		best.Recommendation, best.InvestmentTier, best.Risk.OverallRisk,
	)
}

// judgmentConfidence reflects how fully the variant field could be
// derived, blended with upstream confidence.
func judgmentConfidence(rec *recommend.Result, variantCount int) float64 {
	base := 0.5 + 0.075*float64(variantCount)
	if base > 0.8 {
		base = 0.8
	}
	return (base + rec.Confidence) / 2
}
