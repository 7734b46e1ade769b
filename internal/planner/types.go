package planner

// Complexity classifies the estimated build complexity of a project.
type Complexity string

const (
	ComplexityLow        Complexity = "low"
	ComplexityMedium     Complexity = "medium"
	ComplexityHigh       Complexity = "high"
	ComplexityEnterprise Complexity = "enterprise"
)

// String returns the string representation of the complexity tier.
func (c Complexity) String() string {
	return string(c)
}

// IsValid returns true if the complexity is a known tier.
func (c Complexity) IsValid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh, ComplexityEnterprise:
		return true
	default:
		return false
	}
}

// ProjectAnalysis is the Planner stage output: a best-effort classification
// of the requested project. It is created once and never mutated by later
// stages.
type ProjectAnalysis struct {
	ProjectType       string     `json:"project_type"`
	Complexity        Complexity `json:"complexity"`
	RequiredFeatures  []string   `json:"required_features"`
	TechnicalStack    []string   `json:"technical_stack"`
	EstimatedTimeline string     `json:"estimated_timeline"`
	RiskFactors       []string   `json:"risk_factors"`
	SuccessMetrics    []string   `json:"success_metrics"`

	// Confidence reflects how confidently the request could be classified
	// (0.0-1.0). Ambiguous input lowers confidence instead of erroring.
	Confidence float64 `json:"confidence"`
}
