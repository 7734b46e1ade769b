// Package execution implements the Executioner stage. It expands the
// winning plan evaluation (and up to two runners-up) into fully dated
// execution plans: phases, deliverables, milestones, resource allocations,
// a critical path, a risk-mitigation register, quality gates, and a budget.
package execution

import "time"

// DeliverableType classifies what kind of artifact a deliverable produces.
type DeliverableType string

const (
	DeliverableCode          DeliverableType = "code"
	DeliverableDesign        DeliverableType = "design"
	DeliverableDocumentation DeliverableType = "documentation"
	DeliverableTesting       DeliverableType = "testing"
	DeliverableDeployment    DeliverableType = "deployment"
)

// IsValid reports whether t is a known deliverable type.
func (t DeliverableType) IsValid() bool {
	switch t {
	case DeliverableCode, DeliverableDesign, DeliverableDocumentation,
		DeliverableTesting, DeliverableDeployment:
		return true
	}
	return false
}

// MitigationStatus tracks the lifecycle of a risk-mitigation entry.
type MitigationStatus string

const (
	MitigationPlanned   MitigationStatus = "planned"
	MitigationActive    MitigationStatus = "active"
	MitigationMitigated MitigationStatus = "mitigated"
)

// Deliverable is a concrete artifact owed within a phase.
type Deliverable struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Type           DeliverableType `json:"type"`
	Priority       string          `json:"priority"`
	EstimatedHours int             `json:"estimated_hours"`
	AssigneeRole   string          `json:"assignee_role"`
	DueDate        time.Time       `json:"due_date"`
}

// Milestone marks a dated checkpoint at the end of a phase.
type Milestone struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Date               time.Time `json:"date"`
	AcceptanceCriteria []string  `json:"acceptance_criteria"`
	ReviewProcess      string    `json:"review_process"`
}

// ResourceAllocation assigns a role to a phase at a given utilization.
type ResourceAllocation struct {
	Role             string   `json:"role"`
	Allocation       int      `json:"allocation_percent"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// ExecutionPhase is one dated window of work with its deliverables,
// milestones, and staffing. Dependencies reference only earlier phases.
type ExecutionPhase struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Duration        string               `json:"duration"`
	StartDate       time.Time            `json:"start_date"`
	EndDate         time.Time            `json:"end_date"`
	Objectives      []string             `json:"objectives"`
	Deliverables    []Deliverable        `json:"deliverables"`
	Milestones      []Milestone          `json:"milestones"`
	Resources       []ResourceAllocation `json:"resources"`
	Dependencies    []string             `json:"dependencies"`
	Risks           []string             `json:"risks"`
	SuccessCriteria []string             `json:"success_criteria"`
}

// RiskMitigationPlan is one entry in the plan's risk register.
type RiskMitigationPlan struct {
	Risk        string           `json:"risk"`
	Probability float64          `json:"probability"`
	Impact      string           `json:"impact"`
	Mitigation  string           `json:"mitigation"`
	Owner       string           `json:"owner"`
	Status      MitigationStatus `json:"status"`
}

// QualityGate blocks a phase transition until its criteria pass.
type QualityGate struct {
	Phase         string   `json:"phase"`
	PassCriteria  []string `json:"pass_criteria"`
	ApproverRoles []string `json:"approver_roles"`
	Tooling       []string `json:"tooling"`
}

// BudgetItem is one budget line: what we expect to spend and what is set
// aside for it.
type BudgetItem struct {
	Category    string  `json:"category"`
	Estimated   float64 `json:"estimated"`
	Allocated   float64 `json:"allocated"`
	Description string  `json:"description"`
}

// SuccessMetric defines how plan progress is measured after launch.
type SuccessMetric struct {
	Metric          string `json:"metric"`
	Target          string `json:"target"`
	Measurement     string `json:"measurement"`
	ReviewFrequency string `json:"review_frequency"`
}

// ExecutionPlan is a fully resourced, dated schedule for one evaluated
// plan. Phases are listed in topological order and the critical path is a
// subsequence of the phase id list.
type ExecutionPlan struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	TotalDuration  string               `json:"total_duration"`
	Phases         []ExecutionPhase     `json:"phases"`
	CriticalPath   []string             `json:"critical_path"`
	RiskMitigation []RiskMitigationPlan `json:"risk_mitigation"`
	QualityGates   []QualityGate        `json:"quality_gates"`
	Budget         []BudgetItem         `json:"budget"`
	SuccessMetrics []SuccessMetric      `json:"success_metrics"`
}

// Result is the Executioner stage output: the primary plan for the winner
// plus fallback schedules for up to two runners-up.
type Result struct {
	Primary        ExecutionPlan   `json:"primary_plan"`
	Alternatives   []ExecutionPlan `json:"alternative_plans"`
	ReadinessScore int             `json:"readiness_score"`
	Confidence     float64         `json:"confidence"`
}
