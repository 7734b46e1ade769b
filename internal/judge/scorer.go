package judge

// defaultRawScore is used for any variant-id × category pair absent from
// the scoring table.
const defaultRawScore = 0.5

// Scorer produces the raw score in [0,1] for a variant against a rubric
// category. The default implementation is a closed lookup table; a
// feature-vector-driven scorer can be substituted behind this interface
// without touching the evaluation flow.
type Scorer interface {
	ScoreCategory(variant PlanVariant, category string) float64
}

// TableScorer scores from a hand-authored variant-id × category table.
type TableScorer struct {
	table map[string]map[string]float64
}

// NewTableScorer returns a TableScorer with the built-in table.
func NewTableScorer() *TableScorer {
	return &TableScorer{table: builtinScoreTable}
}

// NewTableScorerFromTable returns a TableScorer over a caller-supplied
// table, e.g. one loaded from a YAML file.
func NewTableScorerFromTable(table map[string]map[string]float64) *TableScorer {
	if table == nil {
		table = builtinScoreTable
	}
	return &TableScorer{table: table}
}

// ScoreCategory looks up the raw score for the variant and category,
// clamping table values into [0,1]. Unmapped combinations score 0.5.
func (s *TableScorer) ScoreCategory(variant PlanVariant, category string) float64 {
	byCategory, ok := s.table[variant.ID]
	if !ok {
		return defaultRawScore
	}
	raw, ok := byCategory[category]
	if !ok {
		return defaultRawScore
	}
	switch {
	case raw < 0:
		return 0
	case raw > 1:
		return 1
	default:
		return raw
	}
}

// builtinScoreTable holds the hand-authored raw scores per canonical
// variant. Values outside the table default to 0.5.
var builtinScoreTable = map[string]map[string]float64{
	VariantAggressiveAIFirst: {
		CategoryMarketViability:      0.95,
		CategoryTechnicalFeasibility: 0.80,
		CategoryCompetitiveAdvantage: 0.95,
		CategoryResourceEfficiency:   0.70,
		CategoryRiskManagement:       0.60,
		CategoryInnovationPotential:  0.95,
	},
	VariantBalancedGrowth: {
		CategoryMarketViability:      0.85,
		CategoryTechnicalFeasibility: 0.85,
		CategoryCompetitiveAdvantage: 0.75,
		CategoryResourceEfficiency:   0.80,
		CategoryRiskManagement:       0.75,
		CategoryInnovationPotential:  0.70,
	},
	VariantCompetitiveParity: {
		CategoryMarketViability:      0.70,
		CategoryTechnicalFeasibility: 0.90,
		CategoryCompetitiveAdvantage: 0.40,
		CategoryResourceEfficiency:   0.85,
		CategoryRiskManagement:       0.80,
		CategoryInnovationPotential:  0.30,
	},
	VariantMoonshotInnovation: {
		CategoryMarketViability:      0.60,
		CategoryTechnicalFeasibility: 0.55,
		CategoryCompetitiveAdvantage: 0.90,
		CategoryResourceEfficiency:   0.50,
		CategoryRiskManagement:       0.45,
		CategoryInnovationPotential:  1.00,
	},
}

var _ Scorer = (*TableScorer)(nil)
