// Package linear provides the synchronous, line-oriented reporter that frames
// each task's output on the harness's stdout.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/runall/internal/core/domain"
	"go.trai.ch/runall/internal/ui/output"
	"go.trai.ch/runall/internal/ui/style"
)

// Reporter implements ports.Reporter.
// On a terminal, labels are bold and the summary carries a status icon.
// Piped output is plain bytes.
type Reporter struct {
	output *termenv.Output
	label  string

	mu sync.Mutex
}

// NewReporter creates a new Reporter writing to stdout. Each task is
// announced as "<label> <index>".
func NewReporter(stdout io.Writer, label string) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return newReporter(output.New(stdout), label)
}

func newReporter(out *termenv.Output, label string) *Reporter {
	return &Reporter{
		output: out,
		label:  label,
	}
}

// OnTaskStart prints the task label.
func (r *Reporter) OnTaskStart(spec domain.TaskSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	text := spec.Index.String()
	if r.label != "" {
		text = r.label + " " + text
	}
	styled := r.output.String(text).Bold().Foreground(r.output.Color(string(style.Iris)))
	_, _ = r.output.WriteString(styled.String() + "\n")
}

// OnTaskComplete prints the blank separator line.
func (r *Reporter) OnTaskComplete(_ domain.TaskSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = r.output.WriteString("\n")
}

// OnSummary prints the timing line.
func (r *Reporter) OnSummary(report domain.ExecutionReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := FormatSummary(report)
	if r.output.Profile != termenv.Ascii {
		icon, color := style.Check, style.Green
		if report.Completed < report.Total {
			icon, color = style.Cross, style.Red
		}
		line = r.output.String(icon).Foreground(r.output.Color(string(color))).String() + " " + line
	}
	_, _ = r.output.WriteString(line + "\n")
}

// FormatSummary renders the report the way time(1) reports a command, on one
// line, followed by how many tasks completed.
func FormatSummary(report domain.ExecutionReport) string {
	return fmt.Sprintf("real %s  user %s  sys %s  %d/%d tasks",
		seconds(report.Real), seconds(report.User), seconds(report.System),
		report.Completed, report.Total)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
