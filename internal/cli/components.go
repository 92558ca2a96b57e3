package cli

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphalgo"
)

type componentRow struct {
	Node int64 `json:"node"`
	Set  int64 `json:"set"`
}

type setRow struct {
	Set  int64  `json:"set"`
	Size uint64 `json:"size"`
}

type componentsDoc struct {
	Nodes         int            `json:"nodes"`
	Sets          int            `json:"sets"`
	LargestSet    int            `json:"largest_set"`
	Parallel      bool           `json:"parallel"`
	LoadMillis    int64          `json:"load_millis"`
	ComputeMillis int64          `json:"compute_millis"`
	Components    []componentRow `json:"components,omitempty"`
	Summary       []setRow       `json:"summary,omitempty"`
}

func newComponentsCommand(a *app) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Weakly connected components (union-find)",
		Long: "Partitions the graph into weakly connected components. A positive " +
			"--batch-size selects the parallel executor; --threshold ignores lighter relationships.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			loadStart := time.Now()
			in, err := a.load(ctx)
			if err != nil {
				return err
			}
			loadTime := time.Since(loadStart)

			res, err := graphalgo.ConnectedComponents(ctx, in.Graph, a.settings())
			if err != nil {
				return err
			}
			defer res.Sets.Release()

			_, largest := res.Sets.LargestSet()
			doc := componentsDoc{
				Nodes:         res.NodeCount,
				Sets:          res.SetCount,
				LargestSet:    largest,
				Parallel:      res.Parallel,
				LoadMillis:    loadTime.Milliseconds(),
				ComputeMillis: res.ComputeTime.Milliseconds(),
			}
			a.log.InfoContext(ctx, "components",
				"nodes", doc.Nodes,
				"sets", doc.Sets,
				"largest", doc.LargestSet,
				"load", loadTime,
				"compute", res.ComputeTime,
			)

			if summary {
				sets := res.Sets.Components()
				doc.Summary = make([]setRow, 0, len(sets))
				for root, members := range sets {
					doc.Summary = append(doc.Summary, setRow{
						Set:  external(in.IDs, root),
						Size: members.GetCardinality(),
					})
				}
				slices.SortFunc(doc.Summary, func(x, y setRow) int {
					if c := cmp.Compare(y.Size, x.Size); c != 0 {
						return c
					}
					return cmp.Compare(x.Set, y.Set)
				})
				rows := make([][]string, len(doc.Summary))
				for i, s := range doc.Summary {
					rows[i] = []string{strconv.FormatInt(s.Set, 10), strconv.FormatUint(s.Size, 10)}
				}
				return a.emit(cmd, []string{"set", "size"}, rows, doc)
			}

			doc.Components = make([]componentRow, 0, res.NodeCount)
			rows := make([][]string, 0, res.NodeCount)
			for node, set := range res.Sets.All() {
				r := componentRow{Node: external(in.IDs, node), Set: external(in.IDs, set)}
				doc.Components = append(doc.Components, r)
				rows = append(rows, []string{strconv.FormatInt(r.Node, 10), strconv.FormatInt(r.Set, 10)})
			}

			return a.emit(cmd, []string{"node", "set"}, rows, doc)
		},
	}

	f := cmd.Flags()
	f.Float64("threshold", 0, "only unite endpoints of relationships with weight >= threshold")
	f.Int("batch-size", 0, "node ids per batch; > 0 selects the parallel executor")
	f.BoolVar(&summary, "summary", false, "print one row per set with its size instead of one row per node")

	return cmd
}
