package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub009/core"
	"github.com/AnacletoLAB/ensmallen-sub009/internal/cli"
)

const chainConfig = `
[graph]
generator = "chain"
nodes = 4

[walks]
walk_length = 5
`

func execute(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := cli.New(&out, io.Discard, cli.LogInfo)
	if config != "" {
		args = append([]string{"--config", writeConfig(t, config)}, args...)
	}
	err := c.Execute(context.Background(), args)

	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestInfo(t *testing.T) {
	out, err := execute(t, chainConfig, "info", "--diameter")
	require.NoError(t, err)
	assert.Contains(t, out, "4 nodes, 3 edges")
	assert.Contains(t, out, "degree\tmin=1 max=2")
	assert.Contains(t, out, "diameter\t3")
}

func TestWalks(t *testing.T) {
	out, err := execute(t, chainConfig, "walks")
	require.NoError(t, err)
	walks := lines(out)
	require.Len(t, walks, 4)
	for i, w := range walks {
		nodes := strings.Fields(w)
		assert.Len(t, nodes, 5)
		assert.Equal(t, fmt.Sprint(i), nodes[0])
	}

	out, err = execute(t, chainConfig, "walks", "--random", "3", "--length", "2", "--seed", "9")
	require.NoError(t, err)
	walks = lines(out)
	require.Len(t, walks, 3)
	for _, w := range walks {
		assert.Len(t, strings.Fields(w), 2)
	}
}

func TestComponents(t *testing.T) {
	for _, method := range []string{"kruskal", "parallel", "components"} {
		t.Run(method, func(t *testing.T) {
			out, err := execute(t, chainConfig, "components", "--method", method)
			require.NoError(t, err)
			got := lines(out)
			require.Len(t, got, 5)
			assert.True(t, strings.HasPrefix(got[0], "components\t1\tmin=4\tmax=4"))
			assert.Equal(t, "3\t0", got[4])
		})
	}

	_, err := execute(t, chainConfig, "components", "--method", "boruvka")
	require.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestSCC(t *testing.T) {
	out, err := execute(t, chainConfig, "scc")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 1)
	assert.ElementsMatch(t, []string{"0", "1", "2", "3"}, strings.Fields(got[0]))
}

func TestPaths(t *testing.T) {
	out, err := execute(t, chainConfig, "paths", "--src", "0", "--dst", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3\t3\n", out)

	_, err = execute(t, chainConfig, "paths", "--src", "0", "--dst", "9")
	require.Error(t, err)
	assert.Equal(t, cli.ExitOutOfRange, cli.ExitCode(err))
}

func TestCentrality(t *testing.T) {
	out, err := execute(t, chainConfig, "centrality", "--kind", "betweenness")
	require.NoError(t, err)
	assert.Equal(t, []string{"0\t0", "1\t2", "2\t2", "3\t0"}, lines(out))

	out, err = execute(t, chainConfig, "centrality", "--kind", "degree")
	require.NoError(t, err)
	assert.Equal(t, []string{"0\t0.5", "1\t1", "2\t1", "3\t0.5"}, lines(out))

	_, err = execute(t, chainConfig, "centrality", "--kind", "weighted", "--weighted")
	require.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = execute(t, chainConfig, "centrality", "--kind", "degree", "--weighted")
	require.Error(t, err)
	assert.Equal(t, cli.ExitMissing, cli.ExitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, cli.ExitOK},
		{context.Canceled, cli.ExitInterrupted},
		{fmt.Errorf("wrapped: %w", context.Canceled), cli.ExitInterrupted},
		{core.NodeOutOfRange(5, 2), cli.ExitOutOfRange},
		{core.ErrMissingWeights, cli.ExitMissing},
		{core.ErrInvalidParameter, cli.ExitMalformed},
		{core.ErrNotConverged, cli.ExitNoConverge},
		{io.EOF, cli.ExitFailure},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cli.ExitCode(tt.err), "%v", tt.err)
	}
}
