// Package harness implements the build step and the sequential task loop.
package harness

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/runall/internal/core/domain"
	"go.trai.ch/runall/internal/core/ports"
	"go.trai.ch/zerr"
)

// Streams are the harness's own output handles. Every child writes into them directly.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// BuildStep runs the build command once before any task.
type BuildStep struct {
	executor ports.Executor
	streams  Streams
}

// NewBuildStep creates a new BuildStep.
func NewBuildStep(executor ports.Executor, streams Streams) *BuildStep {
	return &BuildStep{executor: executor, streams: streams}
}

// Run invokes the build command and blocks until it exits.
// Any failure is fatal and wraps domain.ErrBuildFailed.
func (b *BuildStep) Run(ctx context.Context, cfg domain.Config) (domain.RunResult, error) {
	inv := cfg.Build()
	res, err := b.executor.Execute(ctx, inv, b.streams.Stdout, b.streams.Stderr)
	if err == nil && !res.Success() {
		err = zerr.With(zerr.New("build command exited with non-zero status"), "exit_code", res.ExitCode)
	}
	if err != nil {
		failure := &domain.Failure{Stage: domain.StageBuild, ExitCode: exitCode(res)}
		return res, errors.Join(domain.ErrBuildFailed, failure, zerr.With(err, "command", inv.Argv()))
	}
	return res, nil
}

// Loop runs every task of a config exactly once, in ascending order.
type Loop struct {
	executor ports.Executor
	reporter ports.Reporter
	streams  Streams
}

// NewLoop creates a new Loop.
func NewLoop(executor ports.Executor, reporter ports.Reporter, streams Streams) *Loop {
	return &Loop{
		executor: executor,
		reporter: reporter,
		streams:  streams,
	}
}

// Run consumes cfg.Tasks() one at a time. The first failing task stops the
// sequence; no later task is started. The report accumulates the tasks that
// completed and their CPU times.
func (l *Loop) Run(ctx context.Context, cfg domain.Config, report *domain.ExecutionReport) error {
	report.Total = cfg.Count

	for spec := range cfg.Tasks() {
		if err := l.runTask(ctx, cfg, spec, report); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) runTask(ctx context.Context, cfg domain.Config, spec domain.TaskSpec, report *domain.ExecutionReport) error {
	l.reporter.OnTaskStart(spec)

	res, err := l.executor.Execute(ctx, spec.Invocation(cfg.WorkDir, cfg.Env), l.streams.Stdout, l.streams.Stderr)
	report.Add(res)
	if err == nil && !res.Success() {
		err = zerr.With(zerr.New("task exited with non-zero status"), "exit_code", res.ExitCode)
	}
	if err != nil {
		failure := &domain.Failure{Stage: domain.StageTask, Index: spec.Index, ExitCode: exitCode(res)}
		return errors.Join(domain.ErrTaskFailed, failure,
			zerr.With(zerr.With(err, "task", spec.Name), "input", spec.Input))
	}

	report.Completed++
	l.reporter.OnTaskComplete(spec)
	return nil
}

// exitCode never reports success for a failed invocation.
func exitCode(res domain.RunResult) int {
	if res.ExitCode == 0 {
		return 1
	}
	return res.ExitCode
}
