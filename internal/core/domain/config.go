package domain

import (
	"iter"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultTaskCount is the number of tasks in a full run.
	DefaultTaskCount = 25
	// DefaultPrefix is prepended to the task index to form the task name.
	DefaultPrefix = "day"
	// DefaultLabel is printed in front of the index before each task.
	DefaultLabel = "Day"
	// DefaultBuildDir is where the build places the task executables.
	DefaultBuildDir = "target/release"
	// DefaultInputDir holds one input file per task.
	DefaultInputDir = "inputs"
	// DefaultInputExt is the extension of the input files.
	DefaultInputExt = ".txt"
	// TimingEnvVar asks each task to print its own per-part timings.
	TimingEnvVar = "AOCTIME"
)

// DefaultBuildCommand produces the optimized task executables.
func DefaultBuildCommand() []string {
	return []string{"cargo", "build", "--release"}
}

// Config is the fixed layout of a run. It is passed to the engine explicitly.
type Config struct {
	Count        int
	Prefix       string
	Label        string
	BuildCommand []string
	BuildDir     string
	InputDir     string
	InputExt     string
	WorkDir      string
	Env          map[string]string
}

// DefaultConfig returns the compiled-in layout rooted at the current directory.
func DefaultConfig() Config {
	return Config{
		Count:        DefaultTaskCount,
		Prefix:       DefaultPrefix,
		Label:        DefaultLabel,
		BuildCommand: DefaultBuildCommand(),
		BuildDir:     DefaultBuildDir,
		InputDir:     DefaultInputDir,
		InputExt:     DefaultInputExt,
		WorkDir:      ".",
	}
}

// Validate checks that the layout can produce a run.
func (c Config) Validate() error {
	if c.Count < 1 {
		return zerr.With(ErrInvalidConfig, "count", c.Count)
	}
	if c.Prefix == "" {
		return zerr.With(ErrInvalidConfig, "field", "prefix")
	}
	if len(c.BuildCommand) == 0 || c.BuildCommand[0] == "" {
		return zerr.With(ErrInvalidConfig, "field", "build")
	}
	return nil
}

// TaskName returns the name shared by the executable and the input file of task i.
func (c Config) TaskName(i TaskIndex) string {
	return c.Prefix + i.String()
}

// Spec derives the executable and input paths of task i.
func (c Config) Spec(i TaskIndex) TaskSpec {
	name := c.TaskName(i)
	exe := filepath.Join(c.BuildDir, name)
	// A bare name would be looked up in PATH.
	if !strings.ContainsRune(exe, filepath.Separator) {
		exe = "." + string(filepath.Separator) + exe
	}
	return TaskSpec{
		Index:      i,
		Name:       name,
		Executable: exe,
		Input:      filepath.Join(c.InputDir, name+c.InputExt),
	}
}

// Tasks yields the spec of every task in ascending order.
func (c Config) Tasks() iter.Seq[TaskSpec] {
	return func(yield func(TaskSpec) bool) {
		for i := range Indices(c.Count) {
			if !yield(c.Spec(i)) {
				return
			}
		}
	}
}

// Build returns the invocation of the build command.
func (c Config) Build() Invocation {
	return Invocation{
		Path: c.BuildCommand[0],
		Args: slices.Clone(c.BuildCommand[1:]),
		Dir:  c.WorkDir,
	}
}

// WithEnv returns a copy of c with key=value added to the task environment.
func (c Config) WithEnv(key, value string) Config {
	env := maps.Clone(c.Env)
	if env == nil {
		env = make(map[string]string, 1)
	}
	env[key] = value
	c.Env = env
	return c
}
