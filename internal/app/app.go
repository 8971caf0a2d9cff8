// Package app implements the application layer for runall.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/runall/internal/adapters/linear"
	"go.trai.ch/runall/internal/core/domain"
	"go.trai.ch/runall/internal/core/ports"
	"go.trai.ch/runall/internal/engine/harness"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	clock        clockwork.Clock
	base         domain.Config
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, executor ports.Executor, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		clock:        clockwork.NewRealClock(),
		base:         domain.DefaultConfig(),
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput replaces the harness's own streams. Children write into the same writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithClock replaces the clock used for the timing summary.
// This is primarily used for testing.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// WithBaseConfig replaces the compiled-in layout the config file is applied to.
func (a *App) WithBaseConfig(cfg domain.Config) *App {
	a.base = cfg
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath names an optional override file. Empty means compiled-in defaults only.
	ConfigPath string
	// Timing asks every task to print its own timings.
	Timing bool
}

// Run builds the project, then runs every task in order until one fails.
// The timing summary is printed whether the run completes or aborts.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Resolve the layout
	cfg, err := a.configLoader.Load(opts.ConfigPath, a.base)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.ConfigPath != "" {
		a.logger.Info(fmt.Sprintf("running %d task(s) with layout from %s", cfg.Count, opts.ConfigPath))
	}
	if opts.Timing {
		cfg = cfg.WithEnv(domain.TimingEnvVar, "1")
	}

	streams := harness.Streams{Stdout: a.stdout, Stderr: a.stderr}
	reporter := linear.NewReporter(a.stdout, cfg.Label)

	// 2. Start the clock
	sw := startStopwatch(a.clock)
	report := domain.ExecutionReport{Total: cfg.Count}
	defer func() {
		report.Real = sw.Elapsed()
		reporter.OnSummary(report)
	}()

	// 3. Build
	res, err := harness.NewBuildStep(a.executor, streams).Run(ctx, cfg)
	report.Add(res)
	if err != nil {
		return err
	}

	// 4. Tasks
	return harness.NewLoop(a.executor, reporter, streams).Run(ctx, cfg, &report)
}
