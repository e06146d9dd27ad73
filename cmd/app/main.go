package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/spf13/cobra"

	"github.com/arumata/solidnotify/internal/adapters/config"
	"github.com/arumata/solidnotify/internal/adapters/loghandler"
	"github.com/arumata/solidnotify/internal/adapters/metrics"
	"github.com/arumata/solidnotify/internal/app"
	"github.com/arumata/solidnotify/internal/usecase"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg := &usecase.Config{}

	cmd, exitCode := newRootCmd(
		cfg,
		func(ctx context.Context, factory usecase.DependenciesFactory, logger *slog.Logger) error {
			return usecase.RunDemo(ctx, usecase.DemoScenarios(), factory, logger)
		},
	)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsageError
	}
	return *exitCode
}

type demoFunc func(ctx context.Context, factory usecase.DependenciesFactory, logger *slog.Logger) error

func newRootCmd(cfg *usecase.Config, demo demoFunc) (*cobra.Command, *int) {
	exitCode := 0
	cmd := &cobra.Command{
		Use:           "solidnotify",
		Short:         "Send the demonstration notifications",
		SilenceUsage:  false,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			exitCode = runRootCommand(cmd, cfg, demo)
		},
	}
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&cfg.ConfigPath, "config", "", "path to a TOML config file")

	cmd.AddCommand(newSendCmd(cfg, &exitCode))
	cmd.AddCommand(newConfigCmd(cfg, &exitCode))
	cmd.AddCommand(newVersionCmd())

	return cmd, &exitCode
}

func runRootCommand(cmd *cobra.Command, cfg *usecase.Config, demo demoFunc) int {
	ctx := cmd.Context()
	st, err := prepare(ctx, cfg)
	if err != nil {
		return mapExitCodeWithLog(err)
	}
	st.logger.DebugContext(ctx, "Starting solidnotify demo")

	factory := app.NewFactory(st.runtime, cmd.OutOrStdout(), st.recorder, st.logger)
	err = demo(ctx, factory, st.logger)
	_ = st.recorder.Report(ctx, st.logger)
	return mapExitCodeWithLog(err)
}

type runState struct {
	logger   *slog.Logger
	runtime  *usecase.Config
	recorder *metrics.Recorder
}

// prepare loads configuration and builds the diagnostics logger and metrics recorder.
func prepare(ctx context.Context, cfg *usecase.Config) (runState, error) {
	logger := setupLogger(cfg.Verbose, "")
	runtime, err := loadRuntimeConfig(ctx, cfg, logger)
	if err != nil {
		return runState{}, err
	}
	return runState{
		logger:   setupLogger(cfg.Verbose, runtime.LogLevel),
		runtime:  runtime,
		recorder: metrics.NewRecorder(),
	}, nil
}

func loadRuntimeConfig(ctx context.Context, cfg *usecase.Config, logger *slog.Logger) (*usecase.Config, error) {
	file, err := config.New(logger).Load(ctx, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %v: %w", err, usecase.ErrCritical)
	}
	runtime, err := usecase.RuntimeConfigFromFile(file)
	if err != nil {
		return nil, err
	}
	runtime.Verbose = cfg.Verbose
	runtime.ConfigPath = cfg.ConfigPath
	return runtime, nil
}

func mapExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch {
	case errors.Is(err, usecase.ErrUsage):
		return exitUsageError
	case errors.Is(err, usecase.ErrInterrupted):
		return exitInterrupted
	default:
		return exitCriticalError
	}
}

func setupLogger(verbose bool, level string) *slog.Logger {
	lvl := parseLogLevel(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	return newLogger(os.Stderr, lvl, shouldUseColor(os.Stderr))
}

func newLogger(w io.Writer, level slog.Level, color bool) *slog.Logger {
	handler := loghandler.NewHandler(w, &loghandler.Options{
		Level:    level,
		UseColor: color,
	})
	return slog.New(handler)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func shouldUseColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
