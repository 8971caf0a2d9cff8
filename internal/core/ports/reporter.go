package ports

import "go.trai.ch/runall/internal/core/domain"

// Reporter frames the task output on the harness's own streams.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnTaskStart is called before the task is invoked.
	OnTaskStart(spec domain.TaskSpec)

	// OnTaskComplete is called after the task has exited successfully.
	OnTaskComplete(spec domain.TaskSpec)

	// OnSummary is called once when the run completes or aborts.
	OnSummary(report domain.ExecutionReport)
}
