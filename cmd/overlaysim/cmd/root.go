// Package cmd implements the overlaysim commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/disclosure/pkg/config"
	"github.com/go-drift/disclosure/pkg/errors"
)

// Version is set at build time.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:          "overlaysim",
	Short:        "Replay tooltip, popover, submenu and cascader scenarios",
	Long:         "overlaysim drives disclosure widgets with scripted input on a simulated clock and prints every visibility, position and dismissal notification.",
	SilenceUsage: true,
}

// resolved holds the configuration loaded by the persistent pre-run.
var resolved *config.Resolved

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().String("config", "", "Path to disclosure.yaml or the directory holding it (default: current directory)")
	rootCmd.PersistentFlags().String("log-level", "", "Override logging.level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
		}
		resolved = cfg

		logger := newLogger(cmd, cfg)
		slog.SetDefault(logger)
		errors.SetHandler(&errors.LogHandler{Logger: logger})
		return nil
	}
}

func loadConfig(path string) (*config.Resolved, error) {
	if path == "" {
		return config.ResolveDir(".")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return config.ResolveDir(path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

func newLogger(cmd *cobra.Command, cfg *config.Resolved) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
}
