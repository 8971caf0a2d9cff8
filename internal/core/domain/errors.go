package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildFailed is returned when the build command fails to start or exits non-zero.
	ErrBuildFailed = zerr.New("build failed")

	// ErrTaskFailed is returned when a task executable is missing, cannot be started or exits non-zero.
	ErrTaskFailed = zerr.New("task execution failed")

	// ErrInvalidConfig is returned when a configuration value is out of range or empty.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEmptyCommand is returned when an invocation has no executable.
	ErrEmptyCommand = zerr.New("empty command")
)
