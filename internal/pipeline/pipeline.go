// Package pipeline orchestrates the five strategy stages: Planner,
// Researcher, Recommender, Judge, and Executioner. Planner and Researcher
// run concurrently; the remaining stages are sequential because each
// consumes the prior stage's full output. The pipeline holds no mutable
// state between runs and a constructed Pipeline is safe for concurrent use.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/config"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/events"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/execution"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/judge"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/planner"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/recommend"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/research"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

// startDateLayout is the config format for the execution schedule origin.
const startDateLayout = "2006-01-02"

// Request is one strategy pipeline invocation.
type Request struct {
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	IndustryHint string `json:"industry_hint"`
}

// Result bundles all five stage outputs so callers keep intermediate
// visibility. It is plain serializable record data.
type Result struct {
	Planning       *planner.ProjectAnalysis `json:"planning"`
	Research       *research.Result         `json:"research"`
	Recommendation *recommend.Result        `json:"recommendation"`
	Judgment       *judge.Result            `json:"judgment"`
	Execution      *execution.Result        `json:"execution"`
}

// Pipeline wires the five stages together under one configuration.
type Pipeline struct {
	cfg         *config.Config
	analyzer    *planner.Analyzer
	provider    research.Provider
	engine      *recommend.Engine
	judge       *judge.Judge
	executioner *execution.Planner
	bus         events.Bus
	logger      *slog.Logger

	liveModel llms.Model
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithBus sets the event bus progress events are published to. Without a
// bus, no events are published.
func WithBus(bus events.Bus) Option {
	return func(p *Pipeline) {
		p.bus = bus
	}
}

// WithResearchProvider overrides the configured research provider.
func WithResearchProvider(provider research.Provider) Option {
	return func(p *Pipeline) {
		if provider != nil {
			p.provider = provider
		}
	}
}

// WithLiveModel supplies the LLM backing the live research provider. Only
// consulted when the config selects the live provider.
func WithLiveModel(model llms.Model) Option {
	return func(p *Pipeline) {
		p.liveModel = model
	}
}

// New constructs a Pipeline from validated configuration. Configuration
// invariants (rubric weights, score table, live model availability) fail
// here, never mid-request.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	p := &Pipeline{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.analyzer = planner.NewAnalyzer(planner.WithLogger(p.logger))
	p.engine = recommend.NewEngine(recommend.WithLogger(p.logger))

	judgeOpts := []judge.Option{judge.WithLogger(p.logger)}
	if len(cfg.Judge.RubricWeights) > 0 {
		rubric, err := judge.RubricFromWeights(cfg.Judge.RubricWeights)
		if err != nil {
			return nil, err
		}
		judgeOpts = append(judgeOpts, judge.WithRubric(rubric))
	}
	if cfg.Judge.ScoreTablePath != "" {
		scorer, err := judge.NewTableScorerFromFile(cfg.Judge.ScoreTablePath)
		if err != nil {
			return nil, err
		}
		judgeOpts = append(judgeOpts, judge.WithScorer(scorer))
	}
	j, err := judge.New(judgeOpts...)
	if err != nil {
		return nil, err
	}
	p.judge = j

	if p.provider == nil {
		provider, err := p.buildProvider()
		if err != nil {
			return nil, err
		}
		p.provider = provider
	}

	execOpts := []execution.Option{execution.WithLogger(p.logger)}
	if cfg.Execution.StartDate != "" {
		start, err := time.Parse(startDateLayout, cfg.Execution.StartDate)
		if err != nil {
			return nil, types.WrapError(types.CONFIG_VALIDATION_FAILED,
				"parsing execution.start_date "+cfg.Execution.StartDate, err)
		}
		execOpts = append(execOpts, execution.WithStartDate(start))
	}
	p.executioner = execution.New(execOpts...)

	return p, nil
}

// buildProvider constructs the research provider the config selects.
func (p *Pipeline) buildProvider() (research.Provider, error) {
	static := research.NewStaticProvider(research.WithStaticLogger(p.logger))

	switch p.cfg.Research.Provider {
	case "live":
		if p.liveModel == nil {
			return nil, types.NewError(types.CONFIG_VALIDATION_FAILED,
				"research.provider is \"live\" but no model was supplied")
		}
		return research.NewLiveProvider(p.liveModel,
			research.WithFallback(static),
			research.WithLiveTimeout(p.cfg.Research.Timeout),
			research.WithLiveLogger(p.logger),
		), nil
	default:
		return static, nil
	}
}
