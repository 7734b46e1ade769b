package judge

import (
	"math"
	"sort"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

// weightTolerance is the floating-point tolerance for the rubric weight
// invariant.
const weightTolerance = 1e-9

// Category is one weighted scoring dimension in the rubric. ScoringMethod
// is a textual description kept for audit and explainability; it is not
// executable.
type Category struct {
	Name          string  `json:"name" yaml:"name"`
	Weight        float64 `json:"weight" yaml:"weight"`
	ScoringMethod string  `json:"scoring_method" yaml:"scoring_method"`
}

// MaxScore returns the maximum contribution this category can make to an
// overall score.
func (c Category) MaxScore() int {
	return int(math.Round(c.Weight * 100))
}

// Rubric is the fixed set of weighted categories the Judge scores against.
// Weights must sum to exactly 1.0; a rubric violating that invariant
// corrupts every downstream score, so construction fails fast.
type Rubric struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

// NewRubric validates the weight invariant and returns the rubric.
// Violations return RUBRIC_WEIGHT_INVALID; this is a configuration-time
// error and must never be deferred to evaluation time.
func NewRubric(categories []Category) (*Rubric, error) {
	if len(categories) == 0 {
		return nil, types.NewError(types.RUBRIC_WEIGHT_INVALID, "rubric has no categories")
	}

	var sum float64
	for _, c := range categories {
		if c.Weight < 0 {
			return nil, types.NewErrorf(types.RUBRIC_WEIGHT_INVALID,
				"category %q has negative weight %v", c.Name, c.Weight)
		}
		sum += c.Weight
	}

	if math.Abs(sum-1.0) > weightTolerance {
		return nil, types.NewErrorf(types.RUBRIC_WEIGHT_INVALID,
			"category weights sum to %v, want 1.0", sum)
	}

	return &Rubric{Categories: categories}, nil
}

// RubricFromWeights builds a rubric from a category-name to weight map,
// e.g. one loaded from configuration. Known categories keep their default
// scoring-method text and canonical order; unknown categories follow in
// sorted order. The weight invariant applies as usual.
func RubricFromWeights(weights map[string]float64) (*Rubric, error) {
	if len(weights) == 0 {
		return nil, types.NewError(types.RUBRIC_WEIGHT_INVALID, "rubric has no categories")
	}

	categories := make([]Category, 0, len(weights))
	remaining := make(map[string]float64, len(weights))
	for name, weight := range weights {
		remaining[name] = weight
	}

	for _, c := range DefaultRubric().Categories {
		if weight, ok := remaining[c.Name]; ok {
			c.Weight = weight
			categories = append(categories, c)
			delete(remaining, c.Name)
		}
	}

	extra := make([]string, 0, len(remaining))
	for name := range remaining {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	for _, name := range extra {
		categories = append(categories, Category{
			Name:          name,
			Weight:        remaining[name],
			ScoringMethod: "Custom category supplied by configuration",
		})
	}

	return NewRubric(categories)
}

// Default rubric category names.
const (
	CategoryMarketViability      = "Market Viability"
	CategoryTechnicalFeasibility = "Technical Feasibility"
	CategoryCompetitiveAdvantage = "Competitive Advantage"
	CategoryResourceEfficiency   = "Resource Efficiency"
	CategoryRiskManagement       = "Risk Management"
	CategoryInnovationPotential  = "Innovation Potential"
)

// DefaultRubric returns the fixed six-category rubric used by the Judge.
func DefaultRubric() *Rubric {
	rubric, err := NewRubric([]Category{
		{
			Name:          CategoryMarketViability,
			Weight:        0.25,
			ScoringMethod: "Alignment of the variant with researched market size, growth, and target segments",
		},
		{
			Name:          CategoryTechnicalFeasibility,
			Weight:        0.20,
			ScoringMethod: "Likelihood the variant ships on the classified stack within its timeline",
		},
		{
			Name:          CategoryCompetitiveAdvantage,
			Weight:        0.20,
			ScoringMethod: "Degree of differentiation against the researched competitor panel",
		},
		{
			Name:          CategoryResourceEfficiency,
			Weight:        0.15,
			ScoringMethod: "Expected output per unit of invested team and capital",
		},
		{
			Name:          CategoryRiskManagement,
			Weight:        0.10,
			ScoringMethod: "Exposure to execution, market, and dependency risk",
		},
		{
			Name:          CategoryInnovationPotential,
			Weight:        0.10,
			ScoringMethod: "Headroom for the variant to compound into future differentiation",
		},
	})
	if err != nil {
		// The built-in weights sum to 1.0; reaching this is a programming error.
		panic(err)
	}
	return rubric
}
