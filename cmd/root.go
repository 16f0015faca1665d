package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avvvet/dsbuddy/internal/config"
	"github.com/avvvet/dsbuddy/internal/dataset"
	"github.com/avvvet/dsbuddy/internal/llm"
	"github.com/avvvet/dsbuddy/internal/models"
	"github.com/avvvet/dsbuddy/internal/sandbox"
	"github.com/avvvet/dsbuddy/internal/session"
)

var (
	logger *slog.Logger
	sess   *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "dsbuddy",
	Short: "LLM-based data science CLI assistant",
	Long: `dsbuddy turns data science requests into LLM prompts and optionally
executes the generated code against a loaded CSV dataset.`,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the CLI and maps the resulting error class to a process
// exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		code := models.ExitCode(err)
		// Dispatch failures were already reported at the session
		// boundary; config and usage errors still need a line here.
		if code == models.ExitConfig || code == 1 {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return code
	}
	return models.ExitOK
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.AutomaticEnv()

	logger = newLogger(slog.LevelInfo)
}

// setup validates configuration and wires the pipeline before any command
// runs. A missing credential is fatal here, before anything else happens.
func setup(cmd *cobra.Command, args []string) error {
	switch viper.GetString("log-level") {
	case "debug":
		logger = newLogger(slog.LevelDebug)
	case "warn":
		logger = newLogger(slog.LevelWarn)
	case "error":
		logger = newLogger(slog.LevelError)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	gateway, err := llm.New(cfg)
	if err != nil {
		return err
	}

	runner := sandbox.NewRunner(cfg.PythonBin, cfg.SandboxTimeout, logger)
	sess = session.New(gateway, runner, dataset.NewLoader(), logger)

	logger.Debug("pipeline ready", "provider", cfg.Provider, "model", cfg.Model)
	return nil
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
