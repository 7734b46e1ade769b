package judge

import (
	"fmt"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/recommend"
)

// InvestmentTier grades how much capital a plan variant demands.
type InvestmentTier string

const (
	TierLow      InvestmentTier = "Low"
	TierMedium   InvestmentTier = "Medium"
	TierHigh     InvestmentTier = "High"
	TierVeryHigh InvestmentTier = "Very High"
)

// String returns the string representation of the investment tier.
func (t InvestmentTier) String() string {
	return string(t)
}

// PlanVariant is a candidate strategy synthesized for evaluation. Variants
// are ephemeral: they exist only inside the judgment step, and only their
// summary attributes survive on the resulting evaluations.
type PlanVariant struct {
	ID             string
	Title          string
	Approach       string
	Timeline       string
	InvestmentTier InvestmentTier
	Features       []string
}

// Canonical variant identities. The scoring table is keyed by these ids.
const (
	VariantAggressiveAIFirst  = "aggressive-ai-first"
	VariantBalancedGrowth     = "balanced-growth"
	VariantCompetitiveParity  = "competitive-parity"
	VariantMoonshotInnovation = "moonshot-innovation"
)

// generateVariants derives candidate variants from the recommendation set:
// one per populated priority bucket (critical, high, medium) plus one from
// the disruptive innovation suggestions. Sparse recommendations yield fewer
// variants, never an error; an empty set degrades to a single balanced
// fallback so evaluation always has at least one candidate.
func generateVariants(rec *recommend.Result) []PlanVariant {
	buckets := make(map[recommend.Priority][]recommend.StrategicRecommendation)
	for _, r := range rec.StrategicRecommendations {
		buckets[r.Priority] = append(buckets[r.Priority], r)
	}

	var variants []PlanVariant

	if critical := buckets[recommend.PriorityCritical]; len(critical) > 0 {
		variants = append(variants, PlanVariant{
			ID:             VariantAggressiveAIFirst,
			Title:          "Aggressive AI-First",
			Approach:       fmt.Sprintf("Commit fully to the critical recommendations, led by %q, accepting higher burn for maximum differentiation.", critical[0].Title),
			Timeline:       "Ship a differentiated launch inside one quarter, then compound",
			InvestmentTier: TierVeryHigh,
			Features:       titles(critical),
		})
	}

	if high := buckets[recommend.PriorityHigh]; len(high) > 0 {
		variants = append(variants, PlanVariant{
			ID:             VariantBalancedGrowth,
			Title:          "Balanced Growth",
			Approach:       "Execute the high-priority recommendations on a sustainable burn, sequencing differentiation behind a solid launch surface.",
			Timeline:       "Two quarters to full recommendation coverage",
			InvestmentTier: TierHigh,
			Features:       titles(high),
		})
	}

	if medium := buckets[recommend.PriorityMedium]; len(medium) > 0 {
		variants = append(variants, PlanVariant{
			ID:             VariantCompetitiveParity,
			Title:          "Competitive Parity",
			Approach:       "Match the field's table stakes first; defer differentiation bets until revenue supports them.",
			Timeline:       "Fast follower cadence, reassess quarterly",
			InvestmentTier: TierMedium,
			Features:       titles(medium),
		})
	}

	if disruptive := disruptiveConcepts(rec.InnovationSuggestions); len(disruptive) > 0 {
		variants = append(variants, PlanVariant{
			ID:             VariantMoonshotInnovation,
			Title:          "Moonshot Innovation",
			Approach:       fmt.Sprintf("Bet the roadmap on the disruptive concept: %s.", disruptive[0]),
			Timeline:       "Extended runway; first proof point in two quarters",
			InvestmentTier: TierHigh,
			Features:       disruptive,
		})
	}

	if len(variants) == 0 {
		variants = append(variants, PlanVariant{
			ID:             VariantBalancedGrowth,
			Title:          "Balanced Growth",
			Approach:       "No prioritized recommendations were available; proceed with a balanced default strategy.",
			Timeline:       "Reassess after the first delivery milestone",
			InvestmentTier: TierMedium,
			Features:       []string{"Core product delivery"},
		})
	}

	return variants
}

func titles(recs []recommend.StrategicRecommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func disruptiveConcepts(suggestions []recommend.InnovationSuggestion) []string {
	var out []string
	for _, s := range suggestions {
		if s.Type == recommend.InnovationDisruptive {
			out = append(out, s.Concept)
		}
	}
	return out
}
