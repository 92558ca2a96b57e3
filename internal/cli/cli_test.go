package cli_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalgo"
	"github.com/katalvlaran/graphalgo/internal/cli"
	"github.com/katalvlaran/graphalgo/loader"
)

const twoTriangles = "1 2\n2 3\n3 1\n4 5\n5 6\n6 4\n"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeGraph(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func scoresByNode(t *testing.T, out string) map[string]float64 {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"node", "score"}, records[0])
	scores := make(map[string]float64, len(records)-1)
	for _, r := range records[1:] {
		s, err := strconv.ParseFloat(r[1], 64)
		require.NoError(t, err)
		scores[r[0]] = s
	}

	return scores
}

func TestComponentsCSV(t *testing.T) {
	in := writeGraph(t, "g.txt", twoTriangles)

	out, err := run(t, "components", "-i", in)
	require.NoError(t, err)
	assert.Equal(t, "node,set\n1,1\n2,1\n3,1\n4,4\n5,4\n6,4\n", out)

	out, err = run(t, "components", "-i", in, "--summary")
	require.NoError(t, err)
	assert.Equal(t, "set,size\n1,3\n4,3\n", out)
}

func TestComponentsJSON(t *testing.T) {
	in := writeGraph(t, "g.txt", twoTriangles)

	tests := []struct {
		name     string
		args     []string
		sets     int
		parallel bool
	}{
		{"sequential", nil, 2, false},
		{"parallel", []string{"--batch-size", "2", "-c", "3"}, 2, true},
		{"threshold above every weight", []string{"--threshold", "5"}, 6, false},
		{"threshold at weight", []string{"--threshold", "1"}, 2, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"components", "-i", in, "-f", "json"}, tc.args...)
			out, err := run(t, args...)
			require.NoError(t, err)

			var doc struct {
				Nodes      int  `json:"nodes"`
				Sets       int  `json:"sets"`
				Parallel   bool `json:"parallel"`
				Components []struct {
					Node int64 `json:"node"`
					Set  int64 `json:"set"`
				} `json:"components"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &doc))
			assert.Equal(t, 6, doc.Nodes)
			assert.Equal(t, tc.sets, doc.Sets)
			assert.Equal(t, tc.parallel, doc.Parallel)
			assert.Len(t, doc.Components, 6)
		})
	}
}

func TestBetweennessStar(t *testing.T) {
	in := writeGraph(t, "star.txt", "0 1\n0 2\n0 3\n0 4\n0 5\n")

	for _, v := range []graphalgo.Variant{graphalgo.VariantBrandes, graphalgo.VariantSuccessor, graphalgo.VariantParallel} {
		t.Run(string(v), func(t *testing.T) {
			out, err := run(t, "betweenness", "-i", in, "--direction", "both", "--variant", string(v))
			require.NoError(t, err)
			scores := scoresByNode(t, out)
			assert.InDelta(t, 10.0, scores["0"], 1e-9)
			for _, leaf := range []string{"1", "2", "3", "4", "5"} {
				assert.InDelta(t, 0.0, scores[leaf], 1e-9)
			}
		})
	}

	_, err := run(t, "betweenness", "-i", in, "--variant", "magic")
	require.Error(t, err)
}

func TestCloseness(t *testing.T) {
	in := writeGraph(t, "path.txt", "1 2\n2 3\n")

	out, err := run(t, "closeness", "-i", in, "--undirected")
	require.NoError(t, err)
	scores := scoresByNode(t, out)
	assert.InDelta(t, 2.0/3.0, scores["1"], 1e-9)
	assert.InDelta(t, 1.0, scores["2"], 1e-9)
	assert.InDelta(t, 2.0/3.0, scores["3"], 1e-9)
}

func TestPath(t *testing.T) {
	in := writeGraph(t, "g.txt", "10 20\n20 30\n10 40\n40 30\n30 50\n")

	out, err := run(t, "path", "-i", in, "--from", "10", "--to", "50", "-f", "json")
	require.NoError(t, err)
	var doc struct {
		Hops int     `json:"hops"`
		Path []int64 `json:"path"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 3, doc.Hops)
	assert.Equal(t, []int64{10, 20, 30, 50}, doc.Path)

	_, err = run(t, "path", "-i", in, "--from", "50", "--to", "10")
	require.Error(t, err, "relationships are followed outgoing by default")

	_, err = run(t, "path", "-i", in, "--from", "10", "--to", "99")
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "generate", "--kind", "path", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "0 1 1\n1 2 1\n2 3 1\n", out)

	dst := filepath.Join(t.TempDir(), "grid.txt.zst")
	_, err = run(t, "generate", "--kind", "grid", "-n", "3", "--m", "3", "-o", dst)
	require.NoError(t, err)
	res, err := loader.Load(context.Background(), dst)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Graph.NodeCount())
	assert.EqualValues(t, 12, res.Graph.RelationshipCount())

	_, err = run(t, "generate", "--kind", "hypercube")
	require.ErrorIs(t, err, cli.ErrUnknownKind)
}

func TestConfigCommand(t *testing.T) {
	_, err := run(t, "config", "--variant", "brandes")
	require.Error(t, err, "--variant is local to betweenness")

	out, err := run(t, "config", "-c", "4", "--undirected")
	require.NoError(t, err)
	assert.Contains(t, out, "concurrency = 4")
	assert.Contains(t, out, "undirected = true")
	assert.Contains(t, out, "[compute]")
}

func TestMissingInput(t *testing.T) {
	_, err := run(t, "components")
	require.ErrorIs(t, err, cli.ErrNoInput)

	_, err = run(t, "components", "-f", "xml", "-i", "x.txt")
	require.Error(t, err)
}

func TestSpanning(t *testing.T) {
	in := writeGraph(t, "g.txt", "10 20 4\n20 30 1\n30 40 2\n10 40 3\n")

	out, err := run(t, "mst", "-i", in)
	require.NoError(t, err)
	assert.Equal(t, "source,target,weight\n20,30,1\n30,40,2\n10,40,3\n", out)

	out, err = run(t, "mst", "-i", in, "--method", "prim", "--root", "40", "-f", "json")
	require.NoError(t, err)
	var doc struct {
		Method string  `json:"method"`
		Trees  int     `json:"trees"`
		Weight float64 `json:"weight"`
		Edges  []struct {
			Source int64 `json:"source"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "prim", doc.Method)
	assert.Equal(t, 6.0, doc.Weight)
	require.Len(t, doc.Edges, 3)
	assert.EqualValues(t, 40, doc.Edges[0].Source)

	_, err = run(t, "mst", "-i", in, "--method", "boruvka")
	require.Error(t, err)
	_, err = run(t, "mst", "-i", in, "--root", "99")
	require.Error(t, err)
}

func TestMetricsFile(t *testing.T) {
	in := writeGraph(t, "g.txt", twoTriangles)
	metrics := filepath.Join(t.TempDir(), "graphalgo.prom")

	_, err := run(t, "components", "-i", in, "--metrics-file", metrics)
	require.NoError(t, err)

	raw, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `graphalgo_task_runs_total{result="ok",task="CC(SequentialUnionFind)"}`)
	assert.Contains(t, string(raw), `graphalgo_task_duration_seconds_count{task="Load"}`)
}

func TestComponentsThresholdFromEnv(t *testing.T) {
	in := writeGraph(t, "g.txt", twoTriangles)
	t.Setenv("GRAPHALGO_COMPUTE_THRESHOLD", "5")

	out, err := run(t, "components", "-i", in, "--summary")
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(out, "\n"), "header plus six singleton sets")
}
