package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/disjoint/cluster"
	"github.com/katalvlaran/disjoint/internal/cli"
	"github.com/katalvlaran/disjoint/internal/config"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var samplePath = filepath.Join("..", "..", "junction", "testdata", "sample.txt")

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := cli.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSolve_Text(t *testing.T) {
	out, err := run(t, "solve", "--input", samplePath, "--connections", "10")
	require.NoError(t, err)
	require.Equal(t, "Part 1: 40\nPart 2: 25272\n", out)
}

func TestSolve_TopFlag(t *testing.T) {
	out, err := run(t, "solve", "-i", samplePath, "--connections", "10", "--top", "1")
	require.NoError(t, err)
	require.Equal(t, "Part 1: 5\nPart 2: 25272\n", out)
}

func TestSolve_YAML(t *testing.T) {
	out, err := run(t, "solve", "-i", samplePath, "--connections", "10", "--format", "yaml")
	require.NoError(t, err)

	var rep struct {
		Part1    int64 `yaml:"part1"`
		Part2    int64 `yaml:"part2"`
		Circuits int   `yaml:"circuits"`
		Sizes    []int `yaml:"sizes"`
		LastEdge struct {
			From string `yaml:"from"`
			To   string `yaml:"to"`
		} `yaml:"last_edge"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Equal(t, int64(40), rep.Part1)
	require.Equal(t, int64(25272), rep.Part2)
	require.Equal(t, 11, rep.Circuits)
	require.Equal(t, []int{5, 4, 2, 2, 1, 1, 1, 1, 1, 1, 1}, rep.Sizes)
	require.Equal(t, "216,146,977", rep.LastEdge.From)
	require.Equal(t, "117,168,530", rep.LastEdge.To)
}

func TestSolve_SinglePoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.txt")
	require.NoError(t, os.WriteFile(path, []byte("3,4,5\n"), 0o600))

	out, err := run(t, "solve", "-i", path, "--connections", "0")
	require.NoError(t, err)
	require.Equal(t, "Part 1: 1\nPart 2: no connecting edge\n", out)

	out, err = run(t, "solve", "-i", path, "--connections", "0", "-f", "yaml")
	require.NoError(t, err)
	require.NotContains(t, out, "part2")
	require.NotContains(t, out, "last_edge")
}

func TestSolve_EnvOverride(t *testing.T) {
	t.Setenv("DISJOINT_CONNECTIONS", "10")
	t.Setenv("DISJOINT_INPUT", samplePath)

	out, err := run(t, "solve")
	require.NoError(t, err)
	require.Equal(t, "Part 1: 40\nPart 2: 25272\n", out)
}

func TestSolve_FlagBeatsEnv(t *testing.T) {
	t.Setenv("DISJOINT_TOP", "1")

	out, err := run(t, "solve", "-i", samplePath, "--connections", "10", "--top", "2")
	require.NoError(t, err)
	require.Equal(t, "Part 1: 20\nPart 2: 25272\n", out)
}

func TestSolve_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "disjoint.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("connections: 10\nformat: text\n"), 0o600))

	out, err := run(t, "--config", cfg, "solve", "-i", samplePath)
	require.NoError(t, err)
	require.Equal(t, "Part 1: 40\nPart 2: 25272\n", out)
}

func TestSolve_Errors(t *testing.T) {
	// Default 1000 connections exceed the 190 candidate cables of the sample.
	_, err := run(t, "solve", "-i", samplePath)
	require.ErrorIs(t, errors.Cause(err), cluster.ErrConnectionsExceedEdges)

	_, err = run(t, "solve", "-i", samplePath, "--format", "json")
	require.ErrorIs(t, errors.Cause(err), config.ErrInvalidFormat)

	_, err = run(t, "solve", "-i", filepath.Join(t.TempDir(), "missing.txt"))
	require.True(t, os.IsNotExist(errors.Cause(err)))

	_, err = run(t, "solve", "extra-arg")
	require.Error(t, err)
}

func TestRegions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	grid := "@@.@\r\n....\r\n@.@@\r\n\r\n"
	require.NoError(t, os.WriteFile(path, []byte(grid), 0o600))

	out, err := run(t, "regions", "-i", path)
	require.NoError(t, err)
	require.Equal(t, "Regions: 4\nLargest: 2\nLand cells: 6\n", out)

	out, err = run(t, "regions", "-i", path, "--land", ".", "--diagonal")
	require.NoError(t, err)
	require.Equal(t, "Regions: 1\nLargest: 6\nLand cells: 6\n", out)

	out, err = run(t, "regions", "-i", path, "-f", "yaml")
	require.NoError(t, err)
	var rep struct {
		Regions   int   `yaml:"regions"`
		LandCells int   `yaml:"land_cells"`
		Sizes     []int `yaml:"sizes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Equal(t, 4, rep.Regions)
	require.Equal(t, 6, rep.LandCells)
	require.Equal(t, []int{2, 2, 1, 1}, rep.Sizes)
}

func TestRegions_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.txt")
	require.NoError(t, os.WriteFile(path, []byte("@@\n@\n"), 0o600))

	_, err := run(t, "regions", "-i", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ragged.txt")

	_, err = run(t, "regions", "-i", path, "--land", "ab")
	require.ErrorIs(t, errors.Cause(err), config.ErrInvalidLand)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "disjoint "+cli.Version+"\n", out)
}
