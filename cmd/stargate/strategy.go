package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/events"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/observability"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/pipeline"
)

var (
	description  string
	requirements string
	industry     string
	outputPath   string
	showProgress bool
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Strategic decision pipeline commands",
}

var strategyRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full strategy pipeline for a project description",
	Example: `  stargate strategy run \
    --description "Build a real-time collaborative IDE" \
    --requirements "needs auth, database, AI features" \
    --industry development`,
	RunE: runStrategy,
}

func runStrategy(cmd *cobra.Command, args []string) error {
	logger := observability.NewLogger(os.Stderr, cfg.Logging.Level,
		observability.LogFormat(cfg.Logging.Format))

	opts := []pipeline.Option{pipeline.WithLogger(logger)}

	if cfg.Research.Provider == "live" {
		model, err := buildLiveModel()
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithLiveModel(model))
	}

	var bus *events.DefaultBus
	if showProgress {
		bus = events.NewBus()
		defer bus.Close()
		opts = append(opts, pipeline.WithBus(bus))
	}

	p, err := pipeline.New(cfg, opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	done := make(chan struct{})
	if bus != nil {
		go printProgress(ctx, cmd, bus, done)
	} else {
		close(done)
	}

	result, err := p.Run(ctx, pipeline.Request{
		Description:  description,
		Requirements: requirements,
		IndustryHint: industry,
	})
	if bus != nil {
		bus.Close()
		<-done
	}
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
			return fmt.Errorf("writing result to %s: %w", outputPath, err)
		}
		cmd.PrintErrf("Result written to %s\n", outputPath)
		return nil
	}

	cmd.Println(string(encoded))
	return nil
}

// buildLiveModel constructs the LLM backing the live research provider.
func buildLiveModel() (llms.Model, error) {
	model, err := openai.New(openai.WithModel(cfg.Research.Model))
	if err != nil {
		return nil, fmt.Errorf("constructing live research model: %w", err)
	}
	return model, nil
}

// printProgress streams pipeline events to stderr until the bus closes.
func printProgress(ctx context.Context, cmd *cobra.Command, bus events.Bus, done chan<- struct{}) {
	defer close(done)

	ch, cleanup := bus.Subscribe(ctx, events.Filter{}, 0)
	defer cleanup()

	for event := range ch {
		if event.Stage != "" {
			cmd.PrintErrf("[%s] %s %s\n", event.Timestamp.Format("15:04:05"), event.Type, event.Stage)
		} else {
			cmd.PrintErrf("[%s] %s\n", event.Timestamp.Format("15:04:05"), event.Type)
		}
	}
}

func init() {
	strategyRunCmd.Flags().StringVar(&description, "description", "", "Natural-language project description (required)")
	strategyRunCmd.Flags().StringVar(&requirements, "requirements", "", "Additional requirements text")
	strategyRunCmd.Flags().StringVar(&industry, "industry", "", "Industry hint for competitive research")
	strategyRunCmd.Flags().StringVar(&outputPath, "output", "", "Write the JSON result to a file instead of stdout")
	strategyRunCmd.Flags().BoolVar(&showProgress, "progress", false, "Stream stage progress events to stderr")
	_ = strategyRunCmd.MarkFlagRequired("description")

	strategyCmd.AddCommand(strategyRunCmd)
}
