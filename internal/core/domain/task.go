// Package domain holds the core types of the harness: the task sequence, the
// per-task invocation, and the run report.
package domain

import (
	"iter"
	"strconv"
)

// TaskIndex identifies a task by its position in the run, starting at 1.
type TaskIndex int

// String returns the decimal representation of the index.
func (i TaskIndex) String() string {
	return strconv.Itoa(int(i))
}

// Indices yields 1..n in ascending order. The consumer may stop early; no
// index is produced after it does.
func Indices(n int) iter.Seq[TaskIndex] {
	return func(yield func(TaskIndex) bool) {
		for i := 1; i <= n; i++ {
			if !yield(TaskIndex(i)) {
				return
			}
		}
	}
}

// TaskSpec is the invocation derived from a single TaskIndex.
type TaskSpec struct {
	Index      TaskIndex
	Name       string
	Executable string
	Input      string
}

// Invocation returns the command line `<executable> <input>` for the task.
func (t TaskSpec) Invocation(dir string, env map[string]string) Invocation {
	return Invocation{
		Path: t.Executable,
		Args: []string{t.Input},
		Dir:  dir,
		Env:  env,
	}
}

// Invocation is a single child process to run to completion.
type Invocation struct {
	Path string
	Args []string
	// Dir is the working directory of the child. Relative executable paths
	// that contain a separator resolve against it.
	Dir string
	// Env is added on top of the inherited environment.
	Env map[string]string
}

// Argv returns the full argument vector, executable first.
func (inv Invocation) Argv() []string {
	return append([]string{inv.Path}, inv.Args...)
}
