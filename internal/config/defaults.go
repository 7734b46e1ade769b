package config

import "time"

// DefaultConfig returns a Config with sensible default values: static
// research, built-in rubric and score table, text logging at info.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			PlannerTimeout:   10 * time.Second,
			ResearchTimeout:  45 * time.Second,
			RecommendTimeout: 10 * time.Second,
			JudgeTimeout:     10 * time.Second,
			ExecutionTimeout: 10 * time.Second,
		},
		Research: ResearchConfig{
			Provider: "static",
			Timeout:  30 * time.Second,
		},
		Judge:     JudgeConfig{},
		Execution: ExecutionConfig{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
