package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphalgo"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/spanning"
)

type spanningEdge struct {
	Source int64   `json:"source"`
	Target int64   `json:"target"`
	Weight float64 `json:"weight"`
}

type spanningDoc struct {
	Method string         `json:"method"`
	Trees  int            `json:"trees"`
	Weight float64        `json:"weight"`
	Edges  []spanningEdge `json:"edges"`
}

func newSpanningCommand(a *app) *cobra.Command {
	var (
		method string
		root   int64
	)

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning forest (Kruskal or Prim)",
		Long: "Treats every relationship as undirected and prints the relationships of a minimum spanning forest. " +
			"Prim grows one tree from --root; Kruskal covers every component.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			in, err := a.load(ctx)
			if err != nil {
				return err
			}
			start := 0
			if cmd.Flags().Changed("root") {
				var ok bool
				if start, ok = in.IDs.ToDense(root); !ok {
					return fmt.Errorf("cli: --root %d: %w", root, core.ErrNodeOutOfRange)
				}
			}

			f, err := graphalgo.SpanningForest(ctx, in.Graph, spanning.Method(method), start, a.settings())
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "spanning forest", "method", method, "edges", len(f.Edges),
				"trees", f.Trees, "weight", f.Weight)

			doc := spanningDoc{Method: method, Trees: f.Trees, Weight: f.Weight, Edges: make([]spanningEdge, len(f.Edges))}
			rows := make([][]string, len(f.Edges))
			for i, e := range f.Edges {
				doc.Edges[i] = spanningEdge{Source: external(in.IDs, e.Source), Target: external(in.IDs, e.Target), Weight: e.Weight}
				rows[i] = []string{
					strconv.FormatInt(doc.Edges[i].Source, 10),
					strconv.FormatInt(doc.Edges[i].Target, 10),
					strconv.FormatFloat(e.Weight, 'g', -1, 64),
				}
			}

			return a.emit(cmd, []string{"source", "target", "weight"}, rows, doc)
		},
	}

	f := cmd.Flags()
	f.StringVar(&method, "method", string(spanning.MethodKruskal), "kruskal or prim")
	f.Int64Var(&root, "root", 0, "start node id of prim (default: first node of the input)")

	return cmd
}
