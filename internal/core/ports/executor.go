// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/runall/internal/core/domain"
)

// Executor defines the interface for running a child process.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute starts the invocation and blocks until it has exited.
	//
	// The child's stdout and stderr are wired to the given writers without
	// buffering or transformation.
	//
	// A non-zero exit is reported both in the returned RunResult and as an error.
	Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) (domain.RunResult, error)
}
