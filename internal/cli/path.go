package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphalgo/bfs"
	"github.com/katalvlaran/graphalgo/core"
)

type pathDoc struct {
	From int64   `json:"from"`
	To   int64   `json:"to"`
	Hops int     `json:"hops"`
	Path []int64 `json:"path"`
}

func newPathCommand(a *app) *cobra.Command {
	var from, to int64

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Fewest-hop path between two nodes (BFS)",
		Long:  "Runs a breadth-first search from --from and prints the path to --to using the ids of the input file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			in, err := a.load(ctx)
			if err != nil {
				return err
			}
			src, ok := in.IDs.ToDense(from)
			if !ok {
				return fmt.Errorf("cli: --from %d: %w", from, core.ErrNodeOutOfRange)
			}
			dst, ok := in.IDs.ToDense(to)
			if !ok {
				return fmt.Errorf("cli: --to %d: %w", to, core.ErrNodeOutOfRange)
			}
			dir, err := core.ParseDirection(a.cfg.Compute.Direction)
			if err != nil {
				return err
			}

			res, err := bfs.BFS(in.Graph, src, bfs.WithContext(ctx), bfs.WithDirection(dir))
			if err != nil {
				return err
			}
			dense, err := res.PathTo(dst)
			if err != nil {
				return err
			}

			doc := pathDoc{From: from, To: to, Hops: len(dense) - 1, Path: make([]int64, len(dense))}
			rows := make([][]string, len(dense))
			for i, id := range dense {
				doc.Path[i] = external(in.IDs, id)
				rows[i] = []string{strconv.Itoa(i), strconv.FormatInt(doc.Path[i], 10)}
			}
			a.log.InfoContext(ctx, "path", "from", from, "to", to, "hops", doc.Hops)

			return a.emit(cmd, []string{"step", "node"}, rows, doc)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&from, "from", 0, "source node id")
	f.Int64Var(&to, "to", 0, "target node id")
	f.String("direction", core.Outgoing.String(), "relationships to follow (outgoing, incoming, both)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
