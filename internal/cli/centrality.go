package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphalgo"
	"github.com/katalvlaran/graphalgo/centrality"
	"github.com/katalvlaran/graphalgo/core"
)

type scoreRow struct {
	Node  int64   `json:"node"`
	Score float64 `json:"score"`
}

type scoresDoc struct {
	Algorithm string     `json:"algorithm"`
	Nodes     int        `json:"nodes"`
	Min       float64    `json:"min"`
	Max       float64    `json:"max"`
	Sum       float64    `json:"sum"`
	Scores    []scoreRow `json:"scores"`
}

func (a *app) emitScores(cmd *cobra.Command, algorithm string, ids *core.IDMap, res *centrality.Result) error {
	st := res.Stats()
	doc := scoresDoc{
		Algorithm: algorithm,
		Nodes:     res.Len(),
		Min:       st.Min,
		Max:       st.Max,
		Sum:       st.Sum,
		Scores:    make([]scoreRow, 0, res.Len()),
	}
	rows := make([][]string, 0, res.Len())
	for node, score := range res.All() {
		r := scoreRow{Node: external(ids, node), Score: score}
		doc.Scores = append(doc.Scores, r)
		rows = append(rows, []string{
			strconv.FormatInt(r.Node, 10),
			strconv.FormatFloat(r.Score, 'g', -1, 64),
		})
	}

	return a.emit(cmd, []string{"node", "score"}, rows, doc)
}

func newBetweennessCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "betweenness",
		Short: "Betweenness centrality (Brandes)",
		Long: "Computes unweighted betweenness centrality. --variant picks the " +
			"implementation: brandes (predecessor lists), successor (no predecessor lists) " +
			"or parallel (sources partitioned over the workers). With --direction both every " +
			"unordered pair is counted once.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			variant, err := graphalgo.ParseVariant(a.cfg.Compute.Variant)
			if err != nil {
				return err
			}
			in, err := a.load(ctx)
			if err != nil {
				return err
			}
			res, err := graphalgo.Betweenness(ctx, in.Graph, variant, a.settings())
			if err != nil {
				return err
			}

			return a.emitScores(cmd, "betweenness/"+string(variant), in.IDs, res)
		},
	}

	f := cmd.Flags()
	f.String("variant", string(graphalgo.VariantParallel), "brandes, successor or parallel")
	f.String("direction", core.Outgoing.String(), "relationships to follow (outgoing, incoming, both)")

	return cmd
}

func newClosenessCommand(a *app) *cobra.Command {
	var wassermanFaust bool

	cmd := &cobra.Command{
		Use:   "closeness",
		Short: "Closeness centrality (multi-source BFS)",
		Long: "Computes reached/farness for every node, 64 sources per traversal. " +
			"--wasserman-faust scales each score by the share of the graph it reaches.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			in, err := a.load(ctx)
			if err != nil {
				return err
			}
			res, err := graphalgo.Closeness(ctx, in.Graph, wassermanFaust, a.settings())
			if err != nil {
				return err
			}

			return a.emitScores(cmd, "closeness", in.IDs, res)
		},
	}

	f := cmd.Flags()
	f.String("direction", core.Outgoing.String(), "relationships to follow (outgoing, incoming, both)")
	f.BoolVar(&wassermanFaust, "wasserman-faust", false, "normalize for disconnected graphs")

	return cmd
}
