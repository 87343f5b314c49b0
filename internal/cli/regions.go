package cli

import (
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/disjoint/gridgraph"
	"github.com/katalvlaran/disjoint/internal/config"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRegionsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Count connected regions of a character grid",
		Long: `regions reads a rectangular text grid and groups every cell equal to
--land with its neighbours (4 directions, 8 with --diagonal).`,
		Args: cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command) error {
			return a.regions(cmd.OutOrStdout())
		}),
	}

	f := cmd.Flags()
	f.StringP("input", "i", "input.txt", "grid input, one row per line")
	f.String("land", "@", "character marking land cells")
	f.BoolP("diagonal", "d", false, "treat diagonal neighbours as connected")
	f.StringP("format", "f", config.FormatText, "output format: text, yaml")

	return cmd
}

func (a *app) regions(w io.Writer) error {
	data, err := os.ReadFile(a.cfg.Input)
	if err != nil {
		return errors.Trace(err)
	}

	gg, err := gridgraph.FromLines(splitLines(string(data)), a.cfg.LandRune(), a.cfg.GridOptions())
	if err != nil {
		return errors.Annotatef(err, "grid %s", a.cfg.Input)
	}
	sizes := gg.ComponentSizes()

	a.logger.Info("regions grouped",
		zap.String("input", a.cfg.Input),
		zap.Int("width", gg.Width),
		zap.Int("height", gg.Height),
		zap.Int("regions", len(sizes)))

	return renderRegions(w, a.cfg, sizes)
}

// splitLines splits text into rows, dropping carriage returns and trailing blank lines.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
