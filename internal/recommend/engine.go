// Package recommend implements the Recommender stage of the strategy
// pipeline. It synthesizes Planner and Researcher output into strategic
// recommendation items and innovation suggestions via domain rules; no
// scoring or ranking happens here.
package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/planner"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/research"
)

// Engine produces recommendations. Safe for concurrent use.
type Engine struct {
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend synthesizes a fixed-but-parameterized recommendation set from
// the planning and research results. Category, priority, and type are
// assigned by domain rules, never computed scores.
func (e *Engine) Recommend(ctx context.Context, planning *planner.ProjectAnalysis, res *research.Result) *Result {
	recommendations := strategicRecommendations(planning, res)
	innovations := innovationSuggestions(planning)

	result := &Result{
		StrategicRecommendations: recommendations,
		InnovationSuggestions:    innovations,
		Positioning:              positioningStatement(planning, res),
		UniqueValueProps:         uniqueValueProps(planning, res),
		Confidence:               (planning.Confidence + res.Confidence) / 2,
	}

	e.logger.DebugContext(ctx, "recommendations synthesized",
		"strategic", len(result.StrategicRecommendations),
		"innovations", len(result.InnovationSuggestions),
		"confidence", result.Confidence,
	)

	return result
}

// strategicRecommendations builds the fixed recommendation set,
// parameterized with the project classification and research findings.
func strategicRecommendations(planning *planner.ProjectAnalysis, res *research.Result) []StrategicRecommendation {
	leader := res.Competitors[0].Name
	gap := "an unserved capability gap"
	if len(res.CompetitiveGaps) > 0 {
		gap = res.CompetitiveGaps[0]
	}

	recs := []StrategicRecommendation{
		{
			Category:         CategoryCompetitiveAdvantage,
			Priority:         PriorityCritical,
			Title:            "Make AI-driven building the core workflow",
			Description:      fmt.Sprintf("Every competitor, including %s, treats AI as an add-on. Building the %s around AI-first workflows exploits: %s.", leader, planning.ProjectType, strings.ToLower(gap)),
			Implementation:   "Design the primary creation flow around AI generation with manual refinement, not the reverse.",
			ExpectedImpact:   "Step-change differentiation on the axis incumbents cannot retrofit quickly",
			Timeframe:        planning.EstimatedTimeline,
			ResourceEstimate: "Core team plus one ML engineer",
			Risks:            []string{"Model API cost volatility", "Competitor fast-follow"},
			SuccessMetrics:   []string{"Time-to-first-published-result under 10 minutes", "AI flow adoption above 60%"},
		},
		{
			Category:         CategoryFeatureInnovation,
			Priority:         PriorityHigh,
			Title:            "Ship the researched feature set before broadening",
			Description:      fmt.Sprintf("Concentrate on the %d classified features before expanding scope.", len(planning.RequiredFeatures)),
			Implementation:   fmt.Sprintf("Deliver %s as the launch surface.", strings.Join(planning.RequiredFeatures, ", ")),
			ExpectedImpact:   "Focused launch surface with clear acceptance criteria",
			Timeframe:        planning.EstimatedTimeline,
			ResourceEstimate: "Core team",
			Risks:            []string{"Feature scope growing beyond the initial estimate"},
			SuccessMetrics:   []string{"All classified features shipped at launch"},
		},
		{
			Category:         CategoryMarketPositioning,
			Priority:         PriorityHigh,
			Title:            "Position into the underserved segments first",
			Description:      fmt.Sprintf("Target %s before moving upmarket.", strings.Join(res.Market.TargetSegments, ", ")),
			Implementation:   "Segment-specific onboarding and templates; land-and-expand motion.",
			ExpectedImpact:   "Beachhead share in segments incumbents serve poorly",
			Timeframe:        "First two quarters post-launch",
			ResourceEstimate: "Product marketing plus founding team",
			Risks:            []string{"Segment too narrow to sustain growth"},
			SuccessMetrics:   []string{"20% of signups from target segments"},
		},
		{
			Category:         CategoryTechnicalArchitecture,
			Priority:         PriorityMedium,
			Title:            "Build on the classified stack with swap-friendly seams",
			Description:      fmt.Sprintf("Adopt %s and isolate vendor-specific services behind interfaces.", strings.Join(planning.TechnicalStack, ", ")),
			Implementation:   "Provider interfaces for model APIs and storage so pricing shifts do not force rewrites.",
			ExpectedImpact:   "Sustained iteration speed as the market moves",
			Timeframe:        "Foundation phase",
			ResourceEstimate: "Core engineering",
			Risks:            []string{"Over-abstracting ahead of need"},
			SuccessMetrics:   []string{"Vendor swap possible without product code changes"},
		},
		{
			Category:         CategoryMonetization,
			Priority:         PriorityMedium,
			Title:            "Team-friendly pricing from day one",
			Description:      "Per-seat pricing friction is a recurring competitor complaint; price on published output value instead.",
			Implementation:   "Usage-tiered plans with unlimited collaborators on every paid tier.",
			ExpectedImpact:   "Removes the most-cited switching objection",
			Timeframe:        "Launch",
			ResourceEstimate: "Founding team decision",
			Risks:            []string{"Usage tiers misjudging heavy-user costs"},
			SuccessMetrics:   []string{"Team accounts above 30% of revenue by month six"},
		},
	}

	return recs
}

// innovationSuggestions returns one suggestion per innovation type.
func innovationSuggestions(planning *planner.ProjectAnalysis) []InnovationSuggestion {
	return []InnovationSuggestion{
		{
			Type:                   InnovationDisruptive,
			Concept:                fmt.Sprintf("Conversational %s generation: describe the outcome, receive a working draft", strings.ToLower(planning.ProjectType)),
			Differentiation:        "Collapses the build workflow incumbents monetize into a single interaction",
			MarketPotential:        "Opens the non-technical majority of the market",
			TechnicalFeasibility:   "Feasible with current model APIs; quality control is the hard part",
			ImplementationApproach: "Constrained generation against a validated component library",
		},
		{
			Type:                   InnovationIncremental,
			Concept:                "Inline improvement hints on every published page",
			Differentiation:        "Continuous optimization rather than one-shot building",
			MarketPotential:        "Raises retention on the existing base",
			TechnicalFeasibility:   "Straightforward analytics plus heuristics",
			ImplementationApproach: "Background audits feeding a suggestions queue",
		},
		{
			Type:                   InnovationArchitectural,
			Concept:                "Pluggable rendering targets from one content model",
			Differentiation:        "Publish the same project as site, storefront, or docs hub",
			MarketPotential:        "Expands addressable use cases without new builders",
			TechnicalFeasibility:   "Requires a strict content/presentation split",
			ImplementationApproach: "Schema-first content model with per-target renderers",
		},
	}
}

// positioningStatement derives a one-paragraph positioning line from the
// market analysis.
func positioningStatement(planning *planner.ProjectAnalysis, res *research.Result) string {
	return fmt.Sprintf(
		"In a %s growing at %s, the %s wins by being the AI-first option for %s, the segments the current field serves least well.",
		res.Market.Size,
		res.Market.GrowthRate,
		planning.ProjectType,
		strings.Join(res.Market.TargetSegments, ", "),
	)
}

// uniqueValueProps returns the ordered unique value proposition list.
func uniqueValueProps(planning *planner.ProjectAnalysis, res *research.Result) []string {
	props := []string{
		"AI-first building as the core workflow, not an add-on",
		fmt.Sprintf("Launch scope matched to classified needs: %s", strings.Join(planning.RequiredFeatures, ", ")),
		"Collaboration included on every tier",
	}
	if len(res.CompetitiveGaps) > 0 {
		props = append(props, fmt.Sprintf("Directly answers the market gap: %s", strings.ToLower(res.CompetitiveGaps[0])))
	}
	return props
}
