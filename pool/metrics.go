package pool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports pool activity as Prometheus collectors. A nil *Metrics is
// valid and records nothing, which is what a pool without WithMetrics uses.
type Metrics struct {
	Submitted prometheus.Counter
	Completed prometheus.Counter
	Failed    prometheus.Counter
	Abandoned prometheus.Counter
	Pending   prometheus.Gauge
	Busy      prometheus.Gauge
	Latency   prometheus.Histogram
}

// NewMetrics creates the pool collectors under namespace and registers them
// with reg. A nil reg skips registration, which is handy in tests.
//
// Example:
//
//	m := pool.NewMetrics("mandelbrot", prometheus.DefaultRegisterer)
//	p := pool.New(pool.WithMetrics(m))
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "tasks_submitted_total",
			Help:      "Tasks pushed onto the pool queue.",
		}),
		Completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "tasks_completed_total",
			Help:      "Tasks that ran and returned without error.",
		}),
		Failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "tasks_failed_total",
			Help:      "Tasks that returned an error or panicked.",
		}),
		Abandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "tasks_abandoned_total",
			Help:      "Tasks discarded before a worker picked them up.",
		}),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "tasks_pending",
			Help:      "Tasks waiting in the queue.",
		}),
		Busy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "workers_busy",
			Help:      "Workers currently running a task.",
		}),
		Latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "task_duration_seconds",
			Help:      "Time spent running a task, retries included.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Submitted, m.Completed, m.Failed, m.Abandoned, m.Pending, m.Busy, m.Latency)
	}
	return m
}

func (m *Metrics) submitted(pending int) {
	if m == nil {
		return
	}
	m.Submitted.Inc()
	m.Pending.Set(float64(pending))
}

func (m *Metrics) setPending(pending int) {
	if m == nil {
		return
	}
	m.Pending.Set(float64(pending))
}

func (m *Metrics) abandoned(n, pending int) {
	if m == nil {
		return
	}
	m.Abandoned.Add(float64(n))
	m.Pending.Set(float64(pending))
}

func (m *Metrics) taskStarted() {
	if m == nil {
		return
	}
	m.Busy.Inc()
}

func (m *Metrics) taskFinished(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.Busy.Dec()
	m.Latency.Observe(d.Seconds())
	if err != nil {
		m.Failed.Inc()
	} else {
		m.Completed.Inc()
	}
}
