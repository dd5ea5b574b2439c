package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// execute runs a fresh root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_GoldenOutput(t *testing.T) {
	tests := []struct {
		golden string
		args   []string
	}{
		{"default", nil},
		{"source_3_destination_0", []string{"--source", "3", "--destination", "0"}},
		{"same_vertex", []string{"-s", "0", "-d", "0"}},
		{"max_distance_10", []string{"--max-distance", "10"}},
		{"config_file", []string{"--config", filepath.Join("testdata", "config.yaml")}},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			g.Assert(t, tt.golden, []byte(stdout))
		})
	}
}

func TestRoot_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SHORTESTPATH_SOURCE", "3")
	t.Setenv("SHORTESTPATH_DESTINATION", "0")

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "Shortest path from 3 to 0:\n3 2 0 \n", stdout)

	// An explicit flag beats the environment.
	stdout, _, err = execute(t, "--destination", "4")
	require.NoError(t, err)
	assert.Equal(t, "Shortest path from 3 to 4:\n3 4 \n", stdout)
}

func TestRoot_InfEdgeThresholdReroutes(t *testing.T) {
	// Edges of weight ≥ 10 are walls: 3→0 must avoid 3—2(11) and 1—3(15),
	// leaving 3—4—5—2—0 with weight 6+9+2+9 = 26.
	stdout, _, err := execute(t, "-s", "3", "-d", "0", "--inf-edge-threshold", "10")
	require.NoError(t, err)
	assert.Equal(t, "Shortest path from 3 to 0:\n3 4 5 2 0 \n", stdout)
}

func TestRoot_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "graph built")
	assert.Contains(t, stderr, "vertices=6")
	assert.Contains(t, stderr, "edges=9")
	assert.Contains(t, stderr, "weight=20")
	assert.NotContains(t, stderr, "edge added", "trace events must stay hidden at debug level")
}

func TestRoot_TraceLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "trace")
	require.NoError(t, err)
	assert.Contains(t, stderr, "edge added")
	assert.Contains(t, stderr, "relax")
}

func TestRoot_Errors(t *testing.T) {
	_, _, err := execute(t, "--source", "6")
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.Contains(t, err.Error(), "source")

	_, _, err = execute(t, "--destination=-1")
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.Contains(t, err.Error(), "destination")

	_, _, err = execute(t, "--max-distance=-1")
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = execute(t, "--inf-edge-threshold", "0")
	require.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)

	_, _, err = execute(t, "--log-level", "loud")
	require.Error(t, err)

	_, _, err = execute(t, "--config", filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)

	_, _, err = execute(t, "extra")
	require.Error(t, err)
}

func TestSampleGraph(t *testing.T) {
	g := SampleGraph()
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 9, g.EdgeCount())
	require.NoError(t, g.Validate())

	path, ok := g.ShortestPath(0, 4)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 5, 4}, path)

	w, ok := g.PathWeight(path)
	require.True(t, ok)
	assert.Equal(t, int64(20), w)

	// Each call returns an independent graph.
	g.AddEdge(0, 4, 1)
	assert.Equal(t, 9, SampleGraph().EdgeCount())
}
