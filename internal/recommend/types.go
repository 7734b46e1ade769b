package recommend

// Category classifies a strategic recommendation. The five values are the
// Judge's lookup keys; the Recommender never emits anything outside them.
type Category string

const (
	CategoryCompetitiveAdvantage  Category = "competitive-advantage"
	CategoryFeatureInnovation     Category = "feature-innovation"
	CategoryMarketPositioning     Category = "market-positioning"
	CategoryTechnicalArchitecture Category = "technical-architecture"
	CategoryMonetization          Category = "monetization"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is one of the five known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryCompetitiveAdvantage, CategoryFeatureInnovation,
		CategoryMarketPositioning, CategoryTechnicalArchitecture, CategoryMonetization:
		return true
	default:
		return false
	}
}

// Priority ranks a recommendation's urgency.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// InnovationType classifies an innovation suggestion. The three values are
// Judge lookup keys.
type InnovationType string

const (
	InnovationDisruptive    InnovationType = "disruptive"
	InnovationIncremental   InnovationType = "incremental"
	InnovationArchitectural InnovationType = "architectural"
)

// String returns the string representation of the innovation type.
func (t InnovationType) String() string {
	return string(t)
}

// IsValid returns true if the innovation type is a known value.
func (t InnovationType) IsValid() bool {
	switch t {
	case InnovationDisruptive, InnovationIncremental, InnovationArchitectural:
		return true
	default:
		return false
	}
}

// StrategicRecommendation is one actionable strategy item.
type StrategicRecommendation struct {
	Category         Category `json:"category"`
	Priority         Priority `json:"priority"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Implementation   string   `json:"implementation"`
	ExpectedImpact   string   `json:"expected_impact"`
	Timeframe        string   `json:"timeframe"`
	ResourceEstimate string   `json:"resource_estimate"`
	Risks            []string `json:"risks"`
	SuccessMetrics   []string `json:"success_metrics"`
}

// InnovationSuggestion is a forward-looking product idea.
type InnovationSuggestion struct {
	Type                   InnovationType `json:"type"`
	Concept                string         `json:"concept"`
	Differentiation        string         `json:"differentiation"`
	MarketPotential        string         `json:"market_potential"`
	TechnicalFeasibility   string         `json:"technical_feasibility"`
	ImplementationApproach string         `json:"implementation_approach"`
}

// Result is the Recommender stage output. No ranking occurs here; ranking
// is deferred entirely to the Judge.
type Result struct {
	StrategicRecommendations []StrategicRecommendation `json:"strategic_recommendations"`
	InnovationSuggestions    []InnovationSuggestion    `json:"innovation_suggestions"`
	Positioning              string                    `json:"positioning"`
	UniqueValueProps         []string                  `json:"unique_value_props"`
	Confidence               float64                   `json:"confidence"`
}
