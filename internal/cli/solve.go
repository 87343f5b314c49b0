package cli

import (
	"io"
	"time"

	"github.com/katalvlaran/disjoint/cluster"
	"github.com/katalvlaran/disjoint/internal/config"
	"github.com/katalvlaran/disjoint/junction"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Wire junction boxes and print both answers",
		Long: `solve reads one "x,y,z" junction box per line.
Part 1 connects the --connections closest pairs and multiplies the sizes of
the --top largest circuits. Part 2 multiplies the X coordinates of the two
boxes joined by the cable that finally puts every box on one circuit.`,
		Args: cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command) error {
			run := func() error {
				return a.solve(cmd.OutOrStdout())
			}
			if !a.cfg.Watch {
				return run()
			}

			return watchFile(cmd.Context(), a.cfg.Input, a.logger, run)
		}),
	}

	f := cmd.Flags()
	f.StringP("input", "i", "input.txt", "puzzle input, one x,y,z per line")
	f.Int("connections", cluster.DefaultConnections, "closest pairs connected for part 1")
	f.Int("top", cluster.DefaultTop, "largest circuits multiplied for part 1")
	f.StringP("format", "f", config.FormatText, "output format: text, yaml")
	f.BoolP("watch", "w", false, "re-solve whenever the input file changes")

	return cmd
}

func (a *app) solve(w io.Writer) error {
	start := time.Now()
	res, err := junction.SolveFile(a.cfg.Input, a.cfg.ClusterOptions()...)
	if err != nil {
		return err
	}

	a.logger.Info("solved",
		zap.String("input", a.cfg.Input),
		zap.Int("edges", res.Edges),
		zap.Int("circuits", res.Circuits),
		zap.Bool("connected", res.HasPart2),
		zap.Duration("elapsed", time.Since(start)))

	return renderSolve(w, a.cfg, res)
}
