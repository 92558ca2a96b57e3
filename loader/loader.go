// Package loader reads and writes graphs as edge lists.
//
// Format: one relationship per line, "src dst [weight]", fields separated by
// blanks or tabs. Lines starting with '#' or '%' and blank lines are
// skipped. Node identifiers are arbitrary int64 values; they are mapped to
// dense ids in first-seen order (core.IDMap). Missing weights take the
// configured default.
//
// Files ending in .gz, .zst or .lz4 are decompressed transparently.
package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/internal/progress"
)

// Sentinel errors.
var (
	// ErrSyntax is returned for a line that is not "src dst [weight]".
	ErrSyntax = errors.New("loader: malformed edge line")

	// ErrEmpty is returned when the input declares no relationship.
	ErrEmpty = errors.New("loader: no relationships")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loader: invalid option supplied")
)

// checkEvery is the number of lines between two context checks.
const checkEvery = 1 << 16

// Option configures reading.
type Option func(*Options)

// Options controls how an edge list becomes a core.Graph.
type Options struct {
	Undirected    bool
	DefaultWeight float64
	// Compression overrides extension detection in Load.
	Compression *Compression
	Logger      *slog.Logger

	err error
}

// DefaultOptions returns directed, default weight 1.0, codec by extension.
func DefaultOptions() Options {
	return Options{DefaultWeight: core.DefaultWeight}
}

// WithUndirected mirrors every relationship.
func WithUndirected(on bool) Option {
	return func(o *Options) { o.Undirected = on }
}

// WithDefaultWeight sets the weight of lines without a third column.
func WithDefaultWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) {
			o.err = fmt.Errorf("%w: default weight is NaN", ErrOptionViolation)
			return
		}
		o.DefaultWeight = w
	}
}

// WithCompression forces the codec used by Load.
func WithCompression(c Compression) Option {
	return func(o *Options) {
		if c > LZ4 {
			o.err = fmt.Errorf("%w: unknown compression %d", ErrOptionViolation, c)
			return
		}
		o.Compression = &c
	}
}

// WithLogger routes start/finish lines to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is a loaded graph together with its id mapping.
type Result struct {
	Graph *core.Graph
	IDs   *core.IDMap
	Lines int
}

// Load opens path and reads it with Read, decompressing by extension.
func Load(ctx context.Context, path string, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	codec := DetectCompression(path)
	if o.Compression != nil {
		codec = *o.Compression
	}
	r, err := NewReader(bufio.NewReader(f), codec)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return read(ctx, r, o, path)
}

// Read parses an uncompressed edge list from r.
func Read(ctx context.Context, r io.Reader, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return read(ctx, r, o, "")
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func read(ctx context.Context, r io.Reader, o Options, source string) (*Result, error) {
	log := progress.New(o.Logger, "Load", 0)
	ctx = log.Start(ctx, "source", source, "undirected", o.Undirected)

	var (
		ids     = core.NewIDMap(1024)
		src     []int
		dst     []int
		weights []float64
		lines   int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		lines++
		if lines%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, log.Finish(ctx, err)
			}
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, log.Finish(ctx, fmt.Errorf("%w: line %d: want 2 or 3 fields, got %d", ErrSyntax, lines, len(fields)))
		}
		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, log.Finish(ctx, fmt.Errorf("%w: line %d: source: %w", ErrSyntax, lines, err))
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, log.Finish(ctx, fmt.Errorf("%w: line %d: target: %w", ErrSyntax, lines, err))
		}
		w := o.DefaultWeight
		if len(fields) == 3 {
			if w, err = strconv.ParseFloat(fields[2], 64); err != nil || math.IsNaN(w) {
				return nil, log.Finish(ctx, fmt.Errorf("%w: line %d: weight %q", ErrSyntax, lines, fields[2]))
			}
		}
		src = append(src, ids.Add(u))
		dst = append(dst, ids.Add(v))
		weights = append(weights, w)
	}
	if err := sc.Err(); err != nil {
		return nil, log.Finish(ctx, fmt.Errorf("loader: %w", err))
	}
	if len(src) == 0 {
		return nil, log.Finish(ctx, ErrEmpty)
	}

	bopts := []core.BuilderOption{core.WithDefaultWeight(o.DefaultWeight), core.WithLoops()}
	if o.Undirected {
		bopts = append(bopts, core.WithUndirected())
	}
	b := core.NewBuilder(ids.Len(), bopts...)
	for i := range src {
		if err := b.AddWeightedEdge(src[i], dst[i], weights[i]); err != nil {
			return nil, log.Finish(ctx, fmt.Errorf("loader: %w", err))
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, log.Finish(ctx, fmt.Errorf("loader: %w", err))
	}

	return &Result{Graph: g, IDs: ids, Lines: lines},
		log.Finish(ctx, nil, "nodes", g.NodeCount(), "relationships", g.RelationshipCount())
}
