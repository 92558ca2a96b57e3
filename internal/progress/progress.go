// Package progress wraps log/slog with the few helpers the analytics use to
// report what they are doing: a run-scoped logger carrying the task name and
// a run id, and throttled progress lines so tight loops can report without
// flooding the log.
//
// Every task is also traced as an OpenTelemetry span (exported only when the
// process installs a TracerProvider) and counted in the Prometheus registry
// of metrics.go.
package progress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// TracerName is the instrumentation scope of the task spans.
const TracerName = "github.com/katalvlaran/graphalgo"

// DefaultInterval is the minimum spacing between two progress lines.
const DefaultInterval = 5 * time.Second

// Logger is a task-scoped slog.Logger.
type Logger struct {
	*slog.Logger

	task    string
	run     string
	started time.Time
	every   *rate.Sometimes
	span    trace.Span
}

// Discard returns a slog.Logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// New scopes base to task. A nil base discards output; interval <= 0 uses
// DefaultInterval.
func New(base *slog.Logger, task string, interval time.Duration) *Logger {
	if base == nil {
		base = Discard()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	run := uuid.NewString()

	return &Logger{
		Logger: base.With("task", task, "run", run),
		task:   task,
		run:    run,
		every:  &rate.Sometimes{First: 1, Interval: interval},
		span:   trace.SpanFromContext(context.Background()),
	}
}

// Task returns the task name.
func (l *Logger) Task() string { return l.task }

// Run returns the run id attached to every line.
func (l *Logger) Run() string { return l.run }

// Start records the start time, opens the task span and logs the beginning
// of the task. The returned context carries the span.
func (l *Logger) Start(ctx context.Context, args ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	l.started = time.Now()
	ctx, l.span = otel.Tracer(TracerName).Start(ctx, l.task,
		trace.WithAttributes(attribute.String("graphalgo.run", l.run)))
	l.DebugContext(ctx, "started", args...)
	running.WithLabelValues(l.task).Inc()

	return ctx
}

// Progress logs done/total, at most once per interval. Safe for concurrent use.
func (l *Logger) Progress(ctx context.Context, done, total int64) {
	l.every.Do(func() {
		l.span.AddEvent("progress", trace.WithAttributes(
			attribute.Int64("done", done), attribute.Int64("total", total)))
		pct := 0.0
		if total > 0 {
			pct = float64(done) * 100 / float64(total)
		}
		l.InfoContext(ctx, "progress",
			"done", done,
			"total", total,
			"percent", pct,
		)
	})
}

// Finish logs the outcome of the task with its elapsed time and returns err.
func (l *Logger) Finish(ctx context.Context, err error, args ...any) error {
	elapsed := time.Since(l.started)
	defer l.span.End()
	if !l.started.IsZero() {
		running.WithLabelValues(l.task).Dec()
	}
	observe(l.task, elapsed, err)
	if err != nil {
		l.span.RecordError(err)
		l.span.SetStatus(codes.Error, err.Error())
		l.WarnContext(ctx, "stopped",
			append(args, "elapsed", elapsed, "error", err)...,
		)
		return err
	}
	l.span.SetStatus(codes.Ok, "")
	l.InfoContext(ctx, "completed", append(args, "elapsed", elapsed)...)

	return nil
}

// NewTextLogger returns a logger writing human-readable lines to w.
func NewTextLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger returns a logger writing one JSON object per line to w.
func NewJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps "debug", "info", "warn" and "error" onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("progress: %w", err)
	}

	return lvl, nil
}
