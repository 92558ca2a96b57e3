// Package cli implements the graphalgo command-line interface.
package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphalgo"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/internal/config"
	"github.com/katalvlaran/graphalgo/internal/progress"
	"github.com/katalvlaran/graphalgo/loader"
	"github.com/katalvlaran/graphalgo/pool"
)

// ErrNoInput is returned by commands that need a graph when none is configured.
var ErrNoInput = errors.New("cli: no input graph (use --input or graph.input)")

// flagKeys binds command-line flags to configuration keys. A flag only
// overrides the key when it is set explicitly.
var flagKeys = map[string]string{
	"input":          "graph.input",
	"undirected":     "graph.undirected",
	"default-weight": "graph.default_weight",
	"compression":    "graph.compression",
	"direction":      "compute.direction",
	"concurrency":    "compute.concurrency",
	"batch-size":     "compute.batch_size",
	"threshold":      "compute.threshold",
	"variant":        "compute.variant",
	"memory-limit":   "compute.memory_limit",
	"timeout":        "compute.timeout",
	"format":         "output.format",
	"output":         "output.path",
	"metrics-file":   "output.metrics",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg config.Config
	log *slog.Logger
}

// NewRootCommand returns the graphalgo command tree writing results to out
// and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{log: progress.Discard()}

	root := &cobra.Command{
		Use:   "graphalgo",
		Short: "Parallel graph analytics over edge lists",
		Long: "graphalgo computes connected components, betweenness and closeness " +
			"centrality, minimum spanning forests and BFS paths on graphs read from " +
			"(optionally compressed) edge lists.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .graphalgo.toml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringP("input", "i", "", "edge-list file; .gz, .zst and .lz4 are decompressed")
	pf.Bool("undirected", false, "treat every relationship as undirected")
	pf.Float64("default-weight", core.DefaultWeight, "weight of lines without a third column")
	pf.String("compression", "", "force the input codec (none, gzip, zstd, lz4)")
	pf.IntP("concurrency", "c", 0, "workers (0 = GOMAXPROCS)")
	pf.Int64("memory-limit", 0, "bytes the workers may reserve (0 = unlimited)")
	pf.StringP("format", "f", "csv", "output format (csv or json)")
	pf.StringP("output", "o", "", "output file (default stdout)")
	pf.String("metrics-file", "", "write task metrics in Prometheus text format to this file")
	pf.String("timeout", "0s", "abort the computation after this duration (0 = never)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text or json)")

	root.AddCommand(
		newComponentsCommand(a),
		newBetweennessCommand(a),
		newClosenessCommand(a),
		newPathCommand(a),
		newSpanningCommand(a),
		newGenerateCommand(a),
		newConfigCommand(a),
	)

	return root
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	lvl, _ := progress.ParseLevel(cfg.Log.Level)
	if cfg.Log.Format == "json" {
		a.log = progress.NewJSONLogger(cmd.ErrOrStderr(), lvl)
	} else {
		a.log = progress.NewTextLogger(cmd.ErrOrStderr(), lvl)
	}

	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.cfg.Output.Metrics == "" {
		return nil
	}

	return progress.WriteTextfile(a.cfg.Output.Metrics)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("cli: bind --%s: %w", name, err)
		}
	}

	return nil
}

// context applies compute.timeout to the command context.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if d, _ := a.cfg.TimeoutDuration(); d > 0 {
		return context.WithTimeout(ctx, d)
	}

	return context.WithCancel(ctx)
}

// settings translates the configuration into facade settings.
func (a *app) settings() graphalgo.Settings {
	dir, _ := core.ParseDirection(a.cfg.Compute.Direction)

	return graphalgo.Settings{
		Pool:         pool.New(a.cfg.Compute.Concurrency, pool.WithMemoryLimit(a.cfg.Compute.MemoryLimit)),
		Concurrency:  a.cfg.Compute.Concurrency,
		BatchSize:    a.cfg.Compute.BatchSize,
		Threshold:    a.cfg.Compute.Threshold,
		HasThreshold: a.cfg.Compute.UseThreshold,
		Direction:    dir,
		Logger:       a.log,
	}
}

// load reads the configured input graph.
func (a *app) load(ctx context.Context) (*loader.Result, error) {
	if a.cfg.Graph.Input == "" {
		return nil, ErrNoInput
	}
	opts := []loader.Option{
		loader.WithUndirected(a.cfg.Graph.Undirected),
		loader.WithDefaultWeight(a.cfg.Graph.DefaultWeight),
		loader.WithLogger(a.log),
	}
	if a.cfg.Graph.Compression != "" {
		c, err := loader.ParseCompression(a.cfg.Graph.Compression)
		if err != nil {
			return nil, err
		}
		opts = append(opts, loader.WithCompression(c))
	}

	return loader.Load(ctx, a.cfg.Graph.Input, opts...)
}

// output opens output.path, or returns the command's stdout.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.cfg.Output.Path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.cfg.Output.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: %w", err)
	}

	return f, f.Close, nil
}

// emit writes rows as CSV with header, or doc as indented JSON.
func (a *app) emit(cmd *cobra.Command, header []string, rows [][]string, doc any) (err error) {
	w, closeOut, err := a.output(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil && cerr != nil {
			err = fmt.Errorf("cli: %w", cerr)
		}
	}()

	if a.cfg.Output.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("cli: %w", err)
	}

	return nil
}

// external maps a dense id back to the id used in the input file.
func external(ids *core.IDMap, id int) int64 {
	if ids == nil {
		return int64(id)
	}
	orig, err := ids.ToOriginal(id)
	if err != nil {
		return int64(id)
	}

	return orig
}
