package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/graphalgo/termination"
)

// Registry holds the task metrics. It is separate from the Prometheus
// default registry so embedding programs choose whether to expose it.
var Registry = prometheus.NewRegistry()

var (
	runs = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "graphalgo_task_runs_total",
		Help: "Finished tasks by outcome (ok, cancelled, error)",
	}, []string{"task", "result"})

	duration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graphalgo_task_duration_seconds",
		Help:    "Wall time of finished tasks",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4.4min
	}, []string{"task"})

	running = promauto.With(Registry).NewGaugeVec(prometheus.GaugeOpts{
		Name: "graphalgo_tasks_running",
		Help: "Tasks started and not yet finished",
	}, []string{"task"})
)

func observe(task string, elapsed time.Duration, err error) {
	result := "ok"
	switch {
	case errors.Is(err, termination.ErrCancelled):
		result = "cancelled"
	case err != nil:
		result = "error"
	}
	runs.WithLabelValues(task, result).Inc()
	duration.WithLabelValues(task).Observe(elapsed.Seconds())
}

// WriteTextfile writes the registry in the Prometheus text format to path,
// for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("progress: metrics: %w", err)
	}

	return nil
}
