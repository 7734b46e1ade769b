package judge

// Severity grades an individual risk factor.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// OverallRisk grades a variant's aggregate risk.
type OverallRisk string

const (
	RiskLow      OverallRisk = "low"
	RiskMedium   OverallRisk = "medium"
	RiskHigh     OverallRisk = "high"
	RiskCritical OverallRisk = "critical"
)

// String returns the string representation of the overall risk.
func (r OverallRisk) String() string {
	return string(r)
}

// RiskFactor is one named risk with its severity, probability, and impact.
type RiskFactor struct {
	Factor      string   `json:"factor"`
	Severity    Severity `json:"severity"`
	Probability float64  `json:"probability"`
	Impact      string   `json:"impact"`
}

// RiskAssessment aggregates a variant's risk factors.
type RiskAssessment struct {
	OverallRisk OverallRisk  `json:"overall_risk"`
	Factors     []RiskFactor `json:"factors"`
	Mitigations []string     `json:"mitigations"`
}

// Canonical risk factor names.
const (
	RiskIntegrationComplexity = "Integration Complexity"
	RiskCompetitiveResponse   = "Competitive Response"
	RiskTechnicalScalability  = "Technical Scalability Challenges"
)

// integrationFeatureThreshold is the feature count at which integration
// complexity escalates from medium to high.
const integrationFeatureThreshold = 4

// assessRisk derives the three canonical risk factors for a variant, with
// severities adjusted by variant attributes, and aggregates them into an
// overall tier.
func assessRisk(variant PlanVariant) RiskAssessment {
	integration := SeverityMedium
	if len(variant.Features) >= integrationFeatureThreshold {
		integration = SeverityHigh
	}

	// Scalability risk tracks capital intensity: only the top tier builds
	// at a pace that outruns its own infrastructure.
	scalability := SeverityMedium
	if variant.InvestmentTier == TierVeryHigh {
		scalability = SeverityHigh
	}

	factors := []RiskFactor{
		{
			Factor:      RiskIntegrationComplexity,
			Severity:    integration,
			Probability: 0.5,
			Impact:      "Third-party and model integrations slip the schedule",
		},
		{
			Factor:      RiskCompetitiveResponse,
			Severity:    SeverityMedium,
			Probability: 0.6,
			Impact:      "Incumbents fast-follow the differentiating features",
		},
		{
			Factor:      RiskTechnicalScalability,
			Severity:    scalability,
			Probability: 0.4,
			Impact:      "Load growth exposes architectural bottlenecks",
		},
	}

	return RiskAssessment{
		OverallRisk: overallRisk(factors),
		Factors:     factors,
		Mitigations: []string{
			"Stage rollouts behind feature flags with defined rollback points",
			"Isolate external dependencies behind provider interfaces",
			"Load-test against 10x projected traffic before each launch gate",
		},
	}
}

// overallRisk maps the mean severity (low=1, medium=2, high=3) onto the
// overall tier: <1.5 low, <2.5 medium, else high.
func overallRisk(factors []RiskFactor) OverallRisk {
	if len(factors) == 0 {
		return RiskLow
	}

	total := 0
	for _, f := range factors {
		switch f.Severity {
		case SeverityLow:
			total++
		case SeverityMedium:
			total += 2
		case SeverityHigh:
			total += 3
		}
	}

	mean := float64(total) / float64(len(factors))
	switch {
	case mean < 1.5:
		return RiskLow
	case mean < 2.5:
		return RiskMedium
	default:
		return RiskHigh
	}
}
