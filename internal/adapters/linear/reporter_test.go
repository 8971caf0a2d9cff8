package linear_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/runall/internal/adapters/linear"
	"go.trai.ch/runall/internal/core/domain"
)

func TestReporter_TwoTasks(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	cfg := domain.DefaultConfig()
	r := linear.NewReporter(&buf, cfg.Label)

	for i := range domain.Indices(2) {
		r.OnTaskStart(cfg.Spec(i))
		r.OnTaskComplete(cfg.Spec(i))
	}
	r.OnSummary(domain.ExecutionReport{
		Completed: 2,
		Total:     2,
		Real:      1500 * time.Millisecond,
		User:      250 * time.Millisecond,
		System:    10 * time.Millisecond,
	})

	g := goldie.New(t)
	g.Assert(t, "two_tasks", buf.Bytes())
}

func TestReporter_AbortedRunHasNoTrailingSeparator(t *testing.T) {
	var buf bytes.Buffer
	cfg := domain.DefaultConfig()
	r := linear.NewReporter(&buf, "task")

	r.OnTaskStart(cfg.Spec(1))
	r.OnTaskComplete(cfg.Spec(1))
	r.OnTaskStart(cfg.Spec(2))
	r.OnSummary(domain.ExecutionReport{Completed: 1, Total: 3, Real: 2 * time.Millisecond})

	g := goldie.New(t)
	g.Assert(t, "abort_after_second", buf.Bytes())
}

func TestReporter_EmptyLabelPrintsIndexOnly(t *testing.T) {
	var buf bytes.Buffer
	r := linear.NewReporter(&buf, "")

	r.OnTaskStart(domain.DefaultConfig().Spec(12))

	assert.Equal(t, "12\n", buf.String())
}

func TestFormatSummary(t *testing.T) {
	got := linear.FormatSummary(domain.ExecutionReport{Real: 61*time.Second + 5*time.Millisecond})

	assert.Equal(t, "real 61.005s  user 0.000s  sys 0.000s  0/0 tasks", got)
}

func TestFormatSummary_CountsCompletedTasks(t *testing.T) {
	got := linear.FormatSummary(domain.ExecutionReport{
		Completed: 2,
		Total:     25,
		Real:      time.Second,
		User:      300 * time.Millisecond,
		System:    20 * time.Millisecond,
	})

	assert.Equal(t, "real 1.000s  user 0.300s  sys 0.020s  2/25 tasks", got)
}
