// Package shell provides an os/exec based executor for the build command and the tasks.
package shell

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/runall/internal/core/domain"
	"go.trai.ch/zerr"
)

// Exit codes reported when the child could not be started, following POSIX shells.
const (
	exitCannotExecute = 126
	exitNotFound      = 127
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	environ func() []string
}

// NewExecutor creates a new Executor that inherits the harness environment.
func NewExecutor() *Executor {
	return &Executor{environ: os.Environ}
}

// Execute runs the invocation and waits for it to exit.
// The child writes straight into stdout and stderr.
func (e *Executor) Execute(
	ctx context.Context,
	inv domain.Invocation,
	stdout, stderr io.Writer,
) (domain.RunResult, error) {
	if inv.Path == "" {
		return domain.RunResult{ExitCode: 1}, domain.ErrEmptyCommand
	}

	// A relative path with a separator is resolved by the child against Dir.
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...) //nolint:gosec // configured command
	cmd.Dir = inv.Dir
	cmd.Env = resolveEnvironment(e.environ(), inv.Env)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		code := startExitCode(err)
		return domain.RunResult{ExitCode: code},
			zerr.With(zerr.Wrap(err, "failed to start command"), "exit_code", code)
	}

	err := cmd.Wait()
	res := domain.RunResult{}
	if state := cmd.ProcessState; state != nil {
		res.User = state.UserTime()
		res.System = state.SystemTime()
	}
	if err != nil {
		res.ExitCode = 1
		var exitErr *exec.ExitError
		// ExitCode is -1 when the child was killed by a signal.
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			res.ExitCode = exitErr.ExitCode()
		}
		return res, zerr.With(zerr.Wrap(err, "command failed"), "exit_code", res.ExitCode)
	}

	return res, nil
}

func startExitCode(err error) int {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return exitNotFound
	case errors.Is(err, fs.ErrPermission):
		return exitCannotExecute
	default:
		return 1
	}
}

// resolveEnvironment applies the invocation overrides on top of the inherited environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	result := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if ok {
			if _, overridden := overrides[k]; overridden {
				continue
			}
		}
		result = append(result, entry)
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		result = append(result, k+"="+overrides[k])
	}
	return result
}
