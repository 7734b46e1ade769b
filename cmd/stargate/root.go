package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/config"
	"github.com/CodeMasters-AiFactory/Stargate-sub019/pkg/version"
)

var (
	configFile string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "stargate",
	Short: "Stargate - Strategic Decision Pipeline",
	Long: `Stargate runs the strategic decision pipeline: it analyzes a
project description, researches the competitive landscape, generates
strategic recommendations, judges candidate plans against a weighted
rubric, and produces a fully resourced execution schedule.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig runs before any command. A missing config file falls back to
// validated defaults; version and help never need config at all.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	path := configFile
	if path == "" {
		path = os.Getenv("STARGATE_CONFIG")
	}
	if path == "" {
		path = "stargate.yaml"
	}

	loaded, err := config.NewLoader(config.NewValidator()).LoadWithDefaults(path)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: stargate.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(strategyCmd)
}
