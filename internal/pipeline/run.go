package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/events"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/execution"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/judge"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/observability"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/planner"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/recommend"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/research"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

// Run executes the full pipeline for one request. Stage-internal
// defaulting absorbs nearly all anomalies, so callers always receive a
// complete Result unless the context is cancelled or the research
// provider contract is broken. The run id appears only in events and
// logs, keeping the Result itself deterministic for identical inputs.
func (p *Pipeline) Run(ctx context.Context, request Request) (*Result, error) {
	runID := types.NewID()
	started := time.Now()

	p.logger.InfoContext(ctx, "pipeline run started",
		"run_id", runID,
		"industry_hint", request.IndustryHint,
	)
	p.publish(ctx, events.NewEvent(events.EventPipelineStarted, runID, ""))

	var (
		planning *planner.ProjectAnalysis
		res      *research.Result
	)

	// Planner and Researcher have no mutual data dependency: the
	// researcher works from the industry hint alone.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.runStage(gctx, runID, events.StagePlanner, p.cfg.Pipeline.PlannerTimeout,
			func(ctx context.Context) error {
				planning = p.analyzer.Analyze(ctx, request.Description, request.Requirements)
				return nil
			})
	})
	g.Go(func() error {
		return p.runStage(gctx, runID, events.StageResearcher, p.cfg.Pipeline.ResearchTimeout,
			func(ctx context.Context) error {
				var err error
				res, err = p.provider.Research(ctx, "", request.IndustryHint)
				return err
			})
	})
	if err := g.Wait(); err != nil {
		return nil, p.fail(ctx, runID, err)
	}

	if res.Degraded {
		event := events.NewEvent(events.EventStageDegraded, runID, events.StageResearcher)
		event.Message = "live research unavailable, served static panel"
		p.publish(ctx, event)
	}

	var rec *recommend.Result
	err := p.runStage(ctx, runID, events.StageRecommender, p.cfg.Pipeline.RecommendTimeout,
		func(ctx context.Context) error {
			rec = p.engine.Recommend(ctx, planning, res)
			return nil
		})
	if err != nil {
		return nil, p.fail(ctx, runID, err)
	}

	var judgment *judge.Result
	err = p.runStage(ctx, runID, events.StageJudge, p.cfg.Pipeline.JudgeTimeout,
		func(ctx context.Context) error {
			judgment = p.judge.Evaluate(ctx, planning, res, rec)
			return nil
		})
	if err != nil {
		return nil, p.fail(ctx, runID, err)
	}

	var exec *execution.Result
	err = p.runStage(ctx, runID, events.StageExecutioner, p.cfg.Pipeline.ExecutionTimeout,
		func(ctx context.Context) error {
			exec = p.executioner.Plan(ctx, execution.InputFromJudgment(planning, res, judgment))
			return nil
		})
	if err != nil {
		return nil, p.fail(ctx, runID, err)
	}

	completed := events.NewEvent(events.EventPipelineCompleted, runID, "")
	completed.Data = map[string]any{
		"best_plan":  judgment.BestPlan.PlanID,
		"best_score": judgment.BestPlan.OverallScore,
		"duration":   time.Since(started).String(),
	}
	p.publish(ctx, completed)

	p.logger.InfoContext(ctx, "pipeline run completed",
		"run_id", runID,
		"best_plan", judgment.BestPlan.PlanID,
		"best_score", judgment.BestPlan.OverallScore,
		"duration", time.Since(started),
	)

	return &Result{
		Planning:       planning,
		Research:       res,
		Recommendation: rec,
		Judgment:       judgment,
		Execution:      exec,
	}, nil
}

// runStage wraps one stage invocation with its timeout, span, events, and
// cancellation check.
func (p *Pipeline) runStage(ctx context.Context, runID types.ID, stage string, timeout time.Duration, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return types.WrapError(types.PIPELINE_CANCELLED, "pipeline cancelled before "+stage, err)
	}

	stageCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	stageCtx, end := observability.StartStageSpan(stageCtx, stage)
	p.publish(stageCtx, events.NewEvent(events.EventStageStarted, runID, stage))

	started := time.Now()
	err := fn(stageCtx)
	end(err)

	if err != nil {
		if ctx.Err() != nil {
			return types.WrapError(types.PIPELINE_CANCELLED, "pipeline cancelled during "+stage, err)
		}
		return types.WrapError(types.PIPELINE_STAGE_FAILED, "stage "+stage+" failed", err)
	}

	completed := events.NewEvent(events.EventStageCompleted, runID, stage)
	completed.Data = map[string]any{"duration": time.Since(started).String()}
	p.publish(ctx, completed)
	return nil
}

// fail publishes the failure event and logs before returning the error to
// the caller.
func (p *Pipeline) fail(ctx context.Context, runID types.ID, err error) error {
	event := events.NewEvent(events.EventPipelineFailed, runID, "")
	event.Message = err.Error()
	p.publish(ctx, event)

	p.logger.ErrorContext(ctx, "pipeline run failed",
		"run_id", runID,
		"error", err,
	)
	return err
}

// publish sends an event if a bus is attached. Publishing never blocks
// the pipeline.
func (p *Pipeline) publish(ctx context.Context, event events.Event) {
	if p.bus == nil {
		return
	}
	if err := p.bus.Publish(ctx, event); err != nil {
		p.logger.DebugContext(ctx, "event publish failed",
			"type", event.Type,
			"error", err,
		)
	}
}
