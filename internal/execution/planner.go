package execution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/judge"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/planner"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/research"
)

// maxAlternatives caps how many runner-up evaluations get fallback
// schedules.
const maxAlternatives = 2

// Input carries everything the Executioner consumes: the winning
// evaluation, up to two runners-up, and the upstream stage outputs.
type Input struct {
	Best      judge.PlanEvaluation
	RunnersUp []judge.PlanEvaluation
	Planning  *planner.ProjectAnalysis
	Research  *research.Result
	Judgment  *judge.Result
}

// InputFromJudgment assembles an Input from the ranked judgment: the best
// plan plus the next two evaluations as runners-up. Fewer ranked entries
// simply yield fewer runners-up.
func InputFromJudgment(planning *planner.ProjectAnalysis, res *research.Result, judgment *judge.Result) Input {
	ranked := judgment.RankedRecommendations
	var runnersUp []judge.PlanEvaluation
	if len(ranked) > 1 {
		end := len(ranked)
		if end > maxAlternatives+1 {
			end = maxAlternatives + 1
		}
		runnersUp = append(runnersUp, ranked[1:end]...)
	}
	return Input{
		Best:      judgment.BestPlan,
		RunnersUp: runnersUp,
		Planning:  planning,
		Research:  res,
		Judgment:  judgment,
	}
}

// Planner expands plan evaluations into dated execution plans. Safe for
// concurrent use.
type Planner struct {
	startDate time.Time
	logger    *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithStartDate pins the schedule origin. Identical inputs plus a pinned
// start date yield identical plans.
func WithStartDate(start time.Time) Option {
	return func(p *Planner) {
		p.startDate = start
	}
}

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Planner. Without WithStartDate, schedules start at the
// beginning of the current week (Monday, UTC).
func New(opts ...Option) *Planner {
	p := &Planner{logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.startDate.IsZero() {
		p.startDate = startOfWeek(time.Now().UTC())
	}
	return p
}

// startOfWeek truncates t to the preceding (or same) Monday at midnight UTC.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// Plan builds the primary execution plan for the best evaluation and
// fallback plans for up to two runners-up. It never errors: a missing
// runner-up list just produces no alternatives.
func (p *Planner) Plan(ctx context.Context, input Input) *Result {
	primary := p.buildPlan(input.Best)

	runnersUp := input.RunnersUp
	if len(runnersUp) > maxAlternatives {
		runnersUp = runnersUp[:maxAlternatives]
	}
	alternatives := make([]ExecutionPlan, 0, len(runnersUp))
	for _, eval := range runnersUp {
		alternatives = append(alternatives, p.buildPlan(eval))
	}

	readiness := readinessScore()

	p.logger.DebugContext(ctx, "execution plans built",
		"primary", primary.ID,
		"alternatives", len(alternatives),
		"readiness", readiness,
	)

	return &Result{
		Primary:        primary,
		Alternatives:   alternatives,
		ReadinessScore: readiness,
		Confidence:     executionConfidence(input.Judgment, readiness),
	}
}

// buildPlan walks the phase catalogue with a rolling date cursor from the
// planner's start date.
func (p *Planner) buildPlan(eval judge.PlanEvaluation) ExecutionPlan {
	phases := make([]ExecutionPhase, 0, len(phaseCatalogue))
	cursor := p.startDate
	totalWeeks := 0

	for _, tmpl := range phaseCatalogue {
		start := cursor
		end := start.AddDate(0, 0, tmpl.durationWeeks*7)
		cursor = end
		totalWeeks += tmpl.durationWeeks

		deliverables := make([]Deliverable, 0, len(tmpl.deliverables))
		for _, d := range tmpl.deliverables {
			deliverables = append(deliverables, Deliverable{
				ID:             tmpl.id + "-" + d.slug,
				Name:           d.name,
				Description:    d.description,
				Type:           d.kind,
				Priority:       d.priority,
				EstimatedHours: d.estimatedHours,
				AssigneeRole:   d.assigneeRole,
				DueDate:        start.AddDate(0, 0, d.dueOffsetDays),
			})
		}

		phases = append(phases, ExecutionPhase{
			ID:        tmpl.id,
			Name:      tmpl.name,
			Duration:  fmt.Sprintf("%d weeks", tmpl.durationWeeks),
			StartDate: start,
			EndDate:   end,
			Objectives: tmpl.objectives,
			Deliverables: deliverables,
			Milestones: []Milestone{{
				ID:                 tmpl.id + "-" + tmpl.milestone.slug,
				Name:               tmpl.milestone.name,
				Date:               end,
				AcceptanceCriteria: tmpl.milestone.acceptanceCriteria,
				ReviewProcess:      tmpl.milestone.reviewProcess,
			}},
			Resources:       tmpl.resources,
			Dependencies:    tmpl.dependencies,
			Risks:           tmpl.risks,
			SuccessCriteria: tmpl.successCriteria,
		})
	}

	return ExecutionPlan{
		ID:             "exec-" + eval.PlanID,
		Name:           "Execution Plan: " + eval.PlanTitle,
		TotalDuration:  fmt.Sprintf("%d weeks", totalWeeks),
		Phases:         phases,
		CriticalPath:   append([]string(nil), criticalPath...),
		RiskMitigation: riskMitigations(eval),
		QualityGates:   append([]QualityGate(nil), qualityGateCatalogue...),
		Budget:         buildBudget(eval.InvestmentTier),
		SuccessMetrics: append([]SuccessMetric(nil), successMetricCatalogue...),
	}
}

// riskMitigations turns the evaluation's risk factors into a register with
// owners and planned mitigations.
func riskMitigations(eval judge.PlanEvaluation) []RiskMitigationPlan {
	register := make([]RiskMitigationPlan, 0, len(eval.Risk.Factors))
	for _, factor := range eval.Risk.Factors {
		register = append(register, RiskMitigationPlan{
			Risk:        factor.Factor,
			Probability: factor.Probability,
			Impact:      factor.Impact,
			Mitigation:  mitigationFor(factor.Factor),
			Owner:       ownerFor(factor.Factor),
			Status:      MitigationPlanned,
		})
	}
	return register
}

func mitigationFor(factor string) string {
	switch factor {
	case judge.RiskIntegrationComplexity:
		return "Stage integrations behind feature flags and integrate continuously from the foundation phase"
	case judge.RiskCompetitiveResponse:
		return "Track competitor releases monthly and keep the differentiating roadmap two quarters ahead"
	case judge.RiskTechnicalScalability:
		return "Load test at each milestone and design the data layer for horizontal scaling from day one"
	default:
		return "Review at each quality gate and escalate to the steering group if severity rises"
	}
}

func ownerFor(factor string) string {
	switch factor {
	case judge.RiskIntegrationComplexity:
		return RoleFullStack
	case judge.RiskCompetitiveResponse:
		return RoleProductManager
	case judge.RiskTechnicalScalability:
		return RoleDevOps
	default:
		return RoleProductManager
	}
}

// executionConfidence blends judgment confidence with schedule readiness.
func executionConfidence(judgment *judge.Result, readiness int) float64 {
	r := float64(readiness) / 100
	if judgment == nil {
		return r
	}
	return (judgment.Confidence + r) / 2
}
