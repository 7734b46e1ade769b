// Package config defines the pipeline configuration surface: stage
// timeouts, research provider selection, judge rubric overrides, schedule
// origin, and logging. Configuration is loaded from YAML and validated
// before any pipeline is constructed.
package config

import "time"

// Config is the root configuration for a pipeline process.
type Config struct {
	Pipeline  PipelineConfig  `mapstructure:"pipeline" validate:"required"`
	Research  ResearchConfig  `mapstructure:"research" validate:"required"`
	Judge     JudgeConfig     `mapstructure:"judge"`
	Execution ExecutionConfig `mapstructure:"execution"`
	Logging   LoggingConfig   `mapstructure:"logging" validate:"required"`
}

// PipelineConfig bounds each stage invocation. A zero timeout disables the
// bound for that stage.
type PipelineConfig struct {
	PlannerTimeout   time.Duration `mapstructure:"planner_timeout" validate:"min=0"`
	ResearchTimeout  time.Duration `mapstructure:"research_timeout" validate:"min=0"`
	RecommendTimeout time.Duration `mapstructure:"recommend_timeout" validate:"min=0"`
	JudgeTimeout     time.Duration `mapstructure:"judge_timeout" validate:"min=0"`
	ExecutionTimeout time.Duration `mapstructure:"execution_timeout" validate:"min=0"`
}

// ResearchConfig selects and tunes the competitive-research provider.
type ResearchConfig struct {
	// Provider is "static" for the curated panels or "live" for an
	// LLM-backed provider with static fallback.
	Provider string        `mapstructure:"provider" validate:"required,oneof=static live"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=0"`
}

// JudgeConfig optionally overrides the fixed rubric and scoring table.
type JudgeConfig struct {
	// RubricWeights maps category name to weight. Empty means the built-in
	// rubric. When set, the weights must cover known categories and sum
	// to 1.0.
	RubricWeights map[string]float64 `mapstructure:"rubric_weights"`
	// ScoreTablePath points at a YAML variant-id x category raw-score
	// table. Empty means the built-in table.
	ScoreTablePath string `mapstructure:"score_table_path"`
}

// ExecutionConfig tunes the Executioner schedule.
type ExecutionConfig struct {
	// StartDate pins the schedule origin as YYYY-MM-DD. Empty means the
	// start of the current week.
	StartDate string `mapstructure:"start_date"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}
