package domain

import (
	"fmt"
	"time"
)

// RunResult is the outcome of one child process.
type RunResult struct {
	ExitCode int
	User     time.Duration
	System   time.Duration
}

// Success reports whether the child exited with status 0.
func (r RunResult) Success() bool {
	return r.ExitCode == 0
}

// Stage names the part of the pipeline that failed.
type Stage string

const (
	// StageBuild is the build command.
	StageBuild Stage = "build"
	// StageTask is one of the task executables.
	StageTask Stage = "task"
)

// Failure identifies the invocation that stopped the run and the exit code
// the harness should terminate with.
type Failure struct {
	Stage    Stage
	Index    TaskIndex
	ExitCode int
}

func (f *Failure) Error() string {
	if f.Stage == StageTask {
		return fmt.Sprintf("task %d exited with status %d", f.Index, f.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d", f.Stage, f.ExitCode)
}

// ExecutionReport summarizes a run for the final timing line.
type ExecutionReport struct {
	Completed int
	Total     int
	Real      time.Duration
	User      time.Duration
	System    time.Duration
}

// Add accumulates the CPU times of a finished child.
func (r *ExecutionReport) Add(res RunResult) {
	r.User += res.User
	r.System += res.System
}
