package pool

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_TaskOutcomes(t *testing.T) {
	m := NewMetrics("test", nil)
	p := New(WithWorkerCount(2), WithMetrics(m))
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	var futures []*Future[int]
	for i := range 3 {
		futures = append(futures, Submit(p, func() int { return i }))
	}
	for range 2 {
		futures = append(futures, SubmitErr(p, func() (int, error) { return 0, boom }))
	}
	futures = append(futures, Submit(p, func() int { panic("bad") }))

	for _, f := range futures {
		<-f.Done()
	}
	// Stop joins the workers, so their bookkeeping after each task is visible.
	if err := p.Stop(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		collector prometheus.Collector
		want      float64
	}{
		{"submitted", m.Submitted, 6},
		{"completed", m.Completed, 3},
		{"failed", m.Failed, 3},
		{"abandoned", m.Abandoned, 0},
		{"pending", m.Pending, 0},
		{"busy", m.Busy, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.collector); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMetrics_Abandoned(t *testing.T) {
	m := NewMetrics("test", nil)
	p := New(WithWorkerCount(2), WithMetrics(m))

	for range 4 {
		Submit(p, func() int { return 1 })
	}
	if got := testutil.ToFloat64(m.Pending); got != 4 {
		t.Errorf("expected 4 pending, got %v", got)
	}

	p.ClearPending()

	if got := testutil.ToFloat64(m.Abandoned); got != 4 {
		t.Errorf("expected 4 abandoned, got %v", got)
	}
	if got := testutil.ToFloat64(m.Pending); got != 0 {
		t.Errorf("expected 0 pending, got %v", got)
	}
}

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("app", reg)

	m.Submitted.Inc()

	count, err := testutil.GatherAndCount(reg,
		"app_pool_tasks_submitted_total",
		"app_pool_task_duration_seconds",
	)
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 registered series, got %d", count)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	m.submitted(1)
	m.setPending(1)
	m.abandoned(1, 0)
	m.taskStarted()
	m.taskFinished(0, nil)
}
