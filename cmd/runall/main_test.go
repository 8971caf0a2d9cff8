package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runall/internal/adapters/config"
	"go.trai.ch/runall/internal/adapters/logger"
	"go.trai.ch/runall/internal/adapters/shell"
	"go.trai.ch/runall/internal/app"
	"go.trai.ch/runall/internal/core/domain"
)

type harnessOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// setupProject writes one task script per body and a build command.
func setupProject(t *testing.T, build string, bodies ...string) domain.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Count = len(bodies)
	cfg.Label = "task"
	cfg.WorkDir = dir
	cfg.BuildCommand = []string{"sh", "-c", build}

	require.NoError(t, os.MkdirAll(filepath.Join(dir, cfg.BuildDir), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, cfg.InputDir), 0o750))
	for i, body := range bodies {
		spec := cfg.Spec(domain.TaskIndex(i + 1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, spec.Executable), []byte("#!/bin/sh\n"+body+"\n"), 0o700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, spec.Input), nil, 0o600))
	}
	return cfg
}

func provider(out *harnessOutput) ComponentProvider {
	return func(context.Context) (*app.Components, error) {
		log := logger.New().(*logger.Logger)
		log.SetOutput(&out.stderr)
		a := app.New(config.NewLoader(log), shell.NewExecutor(), log)
		return &app.Components{App: a, Logger: log}, nil
	}
}

func runHarness(t *testing.T, cfg domain.Config, args ...string) (int, *harnessOutput) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	out := &harnessOutput{}
	code := run(context.Background(), args, &out.stdout, &out.stderr, provider(out), func(a *app.App) {
		a.WithBaseConfig(cfg).
			WithClock(clockwork.NewFakeClock()).
			WithOutput(&out.stdout, &out.stderr)
	})
	return code, out
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		build        string
		bodies       []string
		args         []string
		expectedExit int
		wantStdout   string
		notStdout    string
	}{
		{
			name:         "All tasks succeed",
			build:        "exit 0",
			bodies:       []string{"echo ok", "echo ok", "echo ok"},
			expectedExit: 0,
			wantStdout:   "task 1\nok\n\ntask 2\nok\n\ntask 3\nok\n\nreal ",
		},
		{
			name:         "Task failure exit code is propagated",
			build:        "exit 0",
			bodies:       []string{"echo ok", "exit 3", "echo ok"},
			expectedExit: 3,
			wantStdout:   "task 1\nok\n\ntask 2\nreal ",
			notStdout:    "task 3",
		},
		{
			name:         "Build failure runs no task",
			build:        "exit 101",
			bodies:       []string{"echo ok"},
			expectedExit: 101,
			notStdout:    "task 1",
		},
		{
			name:         "Positional arguments are rejected",
			build:        "exit 0",
			bodies:       []string{"echo ok"},
			args:         []string{"day1"},
			expectedExit: 1,
			notStdout:    "task",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := setupProject(t, tt.build, tt.bodies...)

			exitCode, out := runHarness(t, cfg, tt.args...)

			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.wantStdout != "" {
				assert.Contains(t, out.stdout.String(), tt.wantStdout)
			}
			if tt.notStdout != "" {
				assert.NotContains(t, out.stdout.String(), tt.notStdout)
			}
		})
	}
}

func TestRun_ChildFailureIsNotLogged(t *testing.T) {
	cfg := setupProject(t, "exit 0", "echo 'bad input' >&2; exit 2")

	exitCode, out := runHarness(t, cfg)

	assert.Equal(t, 2, exitCode)
	assert.Equal(t, "bad input\n", out.stderr.String())
}

func TestRun_InvalidConfigIsLogged(t *testing.T) {
	cfg := setupProject(t, "exit 0", "echo ok")
	path := filepath.Join(t.TempDir(), "runall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 0\n"), 0o600))

	exitCode, out := runHarness(t, cfg, "--config", path)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, out.stderr.String(), "Error: failed to load configuration")
	assert.Empty(t, out.stdout.String())
}

func TestRun_ConfigFileOverridesCount(t *testing.T) {
	cfg := setupProject(t, "exit 0", "echo one", "echo two", "echo three")
	path := filepath.Join(t.TempDir(), "runall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 2\n"), 0o600))

	exitCode, out := runHarness(t, cfg, "-c", path)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, out.stdout.String(), "task 2\ntwo\n\n")
	assert.NotContains(t, out.stdout.String(), "three")
}

func TestRun_ProviderError(t *testing.T) {
	var stderr bytes.Buffer

	exitCode := run(context.Background(), nil, &bytes.Buffer{}, &stderr,
		func(context.Context) (*app.Components, error) {
			return nil, errors.New("graft failed")
		})

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graft failed\n", stderr.String())
}
