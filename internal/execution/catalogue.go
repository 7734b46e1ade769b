package execution

// The phase catalogue is deliberately table-driven rather than derived from
// plan content, so every generated schedule is internally consistent: the
// list is already in topological order and dependencies only name earlier
// entries.

// Phase ids.
const (
	PhaseFoundation  = "foundation"
	PhaseCoreFeature = "core-features"
	PhaseUX          = "ux"
	PhaseIntegration = "integration-testing"
	PhaseDeployment  = "deployment"
)

// Role names used across deliverables and allocations.
const (
	RoleAIEngineer     = "AI/ML Engineer"
	RoleFullStack      = "Full-Stack Developer"
	RoleDesigner       = "Product Designer"
	RoleDevOps         = "DevOps Engineer"
	RoleQA             = "QA Engineer"
	RoleProductManager = "Product Manager"
)

type deliverableTemplate struct {
	slug           string
	name           string
	description    string
	kind           DeliverableType
	priority       string
	estimatedHours int
	assigneeRole   string
	// dueOffsetDays is counted from the phase start and never exceeds the
	// phase window.
	dueOffsetDays int
}

type milestoneTemplate struct {
	slug               string
	name               string
	acceptanceCriteria []string
	reviewProcess      string
}

type phaseTemplate struct {
	id              string
	name            string
	durationWeeks   int
	objectives      []string
	dependencies    []string
	risks           []string
	successCriteria []string
	deliverables    []deliverableTemplate
	milestone       milestoneTemplate
	resources       []ResourceAllocation
}

var phaseCatalogue = []phaseTemplate{
	{
		id:            PhaseFoundation,
		name:          "Foundation & Architecture",
		durationWeeks: 2,
		objectives: []string{
			"Stand up the core platform architecture and shared services",
			"Establish CI/CD, environments, and engineering conventions",
		},
		risks: []string{
			"Architecture decisions made under incomplete requirements",
		},
		successCriteria: []string{
			"All services build and deploy through the pipeline",
			"Architecture review signed off",
		},
		deliverables: []deliverableTemplate{
			{
				slug:           "architecture",
				name:           "Platform architecture document",
				description:    "Service boundaries, data flow, and AI integration points",
				kind:           DeliverableDocumentation,
				priority:       "critical",
				estimatedHours: 40,
				assigneeRole:   RoleFullStack,
				dueOffsetDays:  7,
			},
			{
				slug:           "scaffolding",
				name:           "Project scaffolding and CI/CD",
				description:    "Repository layout, build pipeline, staging environment",
				kind:           DeliverableCode,
				priority:       "critical",
				estimatedHours: 60,
				assigneeRole:   RoleDevOps,
				dueOffsetDays:  12,
			},
		},
		milestone: milestoneTemplate{
			slug: "m1",
			name: "Architecture baseline",
			acceptanceCriteria: []string{
				"Architecture document approved",
				"Green build on main with deploy to staging",
			},
			reviewProcess: "Architecture review board walkthrough with engineering leads",
		},
		resources: []ResourceAllocation{
			{Role: RoleFullStack, Allocation: 100, Duration: "2 weeks", Responsibilities: []string{"Architecture", "Scaffolding"}},
			{Role: RoleDevOps, Allocation: 80, Duration: "2 weeks", Responsibilities: []string{"CI/CD", "Environments"}},
			{Role: RoleProductManager, Allocation: 40, Duration: "2 weeks", Responsibilities: []string{"Scope control", "Stakeholder alignment"}},
		},
	},
	{
		id:            PhaseCoreFeature,
		name:          "Core Feature Development",
		durationWeeks: 4,
		dependencies:  []string{PhaseFoundation},
		objectives: []string{
			"Implement the differentiating product capabilities end to end",
			"Integrate AI generation into the primary user workflow",
		},
		risks: []string{
			"AI model output quality below product bar",
			"Scope creep on feature breadth",
		},
		successCriteria: []string{
			"Core workflow usable end to end in staging",
			"AI generation latency within product targets",
		},
		deliverables: []deliverableTemplate{
			{
				slug:           "ai-engine",
				name:           "AI generation engine",
				description:    "Prompting, model orchestration, and output validation",
				kind:           DeliverableCode,
				priority:       "critical",
				estimatedHours: 160,
				assigneeRole:   RoleAIEngineer,
				dueOffsetDays:  21,
			},
			{
				slug:           "core-services",
				name:           "Core product services",
				description:    "Persistence, accounts, and the primary workflow APIs",
				kind:           DeliverableCode,
				priority:       "high",
				estimatedHours: 200,
				assigneeRole:   RoleFullStack,
				dueOffsetDays:  26,
			},
		},
		milestone: milestoneTemplate{
			slug: "m2",
			name: "Core workflow complete",
			acceptanceCriteria: []string{
				"Primary workflow demoable without manual intervention",
				"AI engine passes output-quality evaluation set",
			},
			reviewProcess: "Product demo to stakeholders with recorded acceptance checklist",
		},
		resources: []ResourceAllocation{
			{Role: RoleAIEngineer, Allocation: 100, Duration: "4 weeks", Responsibilities: []string{"AI engine", "Model evaluation"}},
			{Role: RoleFullStack, Allocation: 100, Duration: "4 weeks", Responsibilities: []string{"Services", "APIs"}},
			{Role: RoleProductManager, Allocation: 50, Duration: "4 weeks", Responsibilities: []string{"Prioritization", "Acceptance"}},
		},
	},
	{
		id:            PhaseUX,
		name:          "Interface & User Experience",
		durationWeeks: 3,
		dependencies:  []string{PhaseFoundation},
		objectives: []string{
			"Design and build the user-facing surface over the core services",
			"Validate usability with early users",
		},
		risks: []string{
			"Usability findings forcing late interface rework",
		},
		successCriteria: []string{
			"Interface covers every core workflow step",
			"Usability test completion rate above target",
		},
		deliverables: []deliverableTemplate{
			{
				slug:           "design-system",
				name:           "Design system and key screens",
				description:    "Component library, onboarding flow, primary workflow screens",
				kind:           DeliverableDesign,
				priority:       "high",
				estimatedHours: 100,
				assigneeRole:   RoleDesigner,
				dueOffsetDays:  12,
			},
			{
				slug:           "frontend",
				name:           "Frontend implementation",
				description:    "Production interface wired to the core APIs",
				kind:           DeliverableCode,
				priority:       "high",
				estimatedHours: 140,
				assigneeRole:   RoleFullStack,
				dueOffsetDays:  19,
			},
		},
		milestone: milestoneTemplate{
			slug: "m3",
			name: "Usable interface",
			acceptanceCriteria: []string{
				"All key screens implemented against the design system",
				"Usability round completed with findings triaged",
			},
			reviewProcess: "Design review plus moderated usability session readout",
		},
		resources: []ResourceAllocation{
			{Role: RoleDesigner, Allocation: 100, Duration: "3 weeks", Responsibilities: []string{"Design system", "Usability testing"}},
			{Role: RoleFullStack, Allocation: 80, Duration: "3 weeks", Responsibilities: []string{"Frontend build"}},
		},
	},
	{
		id:            PhaseIntegration,
		name:          "Integration & Testing",
		durationWeeks: 2,
		dependencies:  []string{PhaseCoreFeature},
		objectives: []string{
			"Integrate all components and harden for production load",
			"Close the quality bar: functional, performance, and security testing",
		},
		risks: []string{
			"Integration defects across service boundaries",
			"Performance regressions under realistic load",
		},
		successCriteria: []string{
			"Full regression suite green",
			"Load test meets latency and error-rate targets",
		},
		deliverables: []deliverableTemplate{
			{
				slug:           "test-suite",
				name:           "End-to-end test suite",
				description:    "Automated regression coverage of the core workflows",
				kind:           DeliverableTesting,
				priority:       "critical",
				estimatedHours: 80,
				assigneeRole:   RoleQA,
				dueOffsetDays:  9,
			},
			{
				slug:           "hardening",
				name:           "Performance and security hardening",
				description:    "Load testing, profiling fixes, dependency audit",
				kind:           DeliverableTesting,
				priority:       "high",
				estimatedHours: 60,
				assigneeRole:   RoleDevOps,
				dueOffsetDays:  12,
			},
		},
		milestone: milestoneTemplate{
			slug: "m4",
			name: "Release candidate",
			acceptanceCriteria: []string{
				"Zero open critical or high defects",
				"Load and security test reports accepted",
			},
			reviewProcess: "Go/no-go review with QA sign-off and test reports attached",
		},
		resources: []ResourceAllocation{
			{Role: RoleQA, Allocation: 100, Duration: "2 weeks", Responsibilities: []string{"Test suite", "Defect triage"}},
			{Role: RoleDevOps, Allocation: 60, Duration: "2 weeks", Responsibilities: []string{"Load testing", "Hardening"}},
			{Role: RoleFullStack, Allocation: 60, Duration: "2 weeks", Responsibilities: []string{"Defect fixes"}},
		},
	},
	{
		id:            PhaseDeployment,
		name:          "Deployment & Launch",
		durationWeeks: 1,
		dependencies:  []string{PhaseIntegration},
		objectives: []string{
			"Ship to production with monitoring and rollback in place",
			"Execute the launch plan and begin measuring success metrics",
		},
		risks: []string{
			"Launch-day incidents without rehearsed rollback",
		},
		successCriteria: []string{
			"Production deploy completed with monitoring green",
			"Launch announcement executed on schedule",
		},
		deliverables: []deliverableTemplate{
			{
				slug:           "production-deploy",
				name:           "Production deployment",
				description:    "Release to production with monitoring, alerting, and rollback runbook",
				kind:           DeliverableDeployment,
				priority:       "critical",
				estimatedHours: 40,
				assigneeRole:   RoleDevOps,
				dueOffsetDays:  4,
			},
			{
				slug:           "launch-docs",
				name:           "Launch and operations documentation",
				description:    "Runbooks, support guides, and release notes",
				kind:           DeliverableDocumentation,
				priority:       "medium",
				estimatedHours: 24,
				assigneeRole:   RoleProductManager,
				dueOffsetDays:  5,
			},
		},
		milestone: milestoneTemplate{
			slug: "m5",
			name: "Live in production",
			acceptanceCriteria: []string{
				"Production traffic served with error rate inside budget",
				"Rollback rehearsal completed",
			},
			reviewProcess: "Launch retrospective within one week of go-live",
		},
		resources: []ResourceAllocation{
			{Role: RoleDevOps, Allocation: 100, Duration: "1 week", Responsibilities: []string{"Deploy", "Monitoring"}},
			{Role: RoleProductManager, Allocation: 80, Duration: "1 week", Responsibilities: []string{"Launch coordination"}},
		},
	},
}

// criticalPath is the blocking phase sequence. The UX phase runs in
// parallel off the foundation and never gates launch.
var criticalPath = []string{PhaseFoundation, PhaseCoreFeature, PhaseIntegration, PhaseDeployment}

var qualityGateCatalogue = []QualityGate{
	{
		Phase:         PhaseFoundation,
		PassCriteria:  []string{"Architecture approved", "CI/CD pipeline green"},
		ApproverRoles: []string{RoleFullStack, RoleDevOps},
		Tooling:       []string{"CI pipeline", "Architecture decision records"},
	},
	{
		Phase:         PhaseCoreFeature,
		PassCriteria:  []string{"Core workflow demo accepted", "AI evaluation set passing"},
		ApproverRoles: []string{RoleProductManager, RoleAIEngineer},
		Tooling:       []string{"Model evaluation harness", "Demo checklist"},
	},
	{
		Phase:         PhaseUX,
		PassCriteria:  []string{"Design review approved", "Usability findings triaged"},
		ApproverRoles: []string{RoleDesigner, RoleProductManager},
		Tooling:       []string{"Design system library", "Usability session recordings"},
	},
	{
		Phase:         PhaseIntegration,
		PassCriteria:  []string{"Regression suite green", "Load test within targets"},
		ApproverRoles: []string{RoleQA, RoleDevOps},
		Tooling:       []string{"Test runner", "Load testing harness"},
	},
	{
		Phase:         PhaseDeployment,
		PassCriteria:  []string{"Monitoring green post-deploy", "Rollback rehearsed"},
		ApproverRoles: []string{RoleDevOps, RoleProductManager},
		Tooling:       []string{"Monitoring dashboards", "Deployment runbook"},
	},
}

var successMetricCatalogue = []SuccessMetric{
	{
		Metric:          "Activation rate",
		Target:          "40% of signups publish a site within 7 days",
		Measurement:     "Product analytics funnel",
		ReviewFrequency: "weekly",
	},
	{
		Metric:          "AI generation acceptance",
		Target:          "70% of generated drafts kept or lightly edited",
		Measurement:     "Edit-distance telemetry on generated output",
		ReviewFrequency: "weekly",
	},
	{
		Metric:          "Time to first published site",
		Target:          "Under 30 minutes median",
		Measurement:     "Event timestamps from signup to publish",
		ReviewFrequency: "monthly",
	},
	{
		Metric:          "Production error rate",
		Target:          "Under 0.5% of requests",
		Measurement:     "Service monitoring",
		ReviewFrequency: "weekly",
	},
}
