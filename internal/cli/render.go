package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/disjoint/internal/config"
	"github.com/katalvlaran/disjoint/junction"
	"github.com/pingcap/errors"
	"gopkg.in/yaml.v3"
)

type solveReport struct {
	Input    string      `yaml:"input"`
	Part1    int64       `yaml:"part1"`
	Part2    *int64      `yaml:"part2,omitempty"`
	Circuits int         `yaml:"circuits"`
	Sizes    []int       `yaml:"sizes,flow"`
	LastEdge *edgeReport `yaml:"last_edge,omitempty"`
}

type edgeReport struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
}

type regionsReport struct {
	Input     string `yaml:"input"`
	Regions   int    `yaml:"regions"`
	LandCells int    `yaml:"land_cells"`
	Sizes     []int  `yaml:"sizes,flow"`
}

func renderSolve(w io.Writer, cfg config.Config, res junction.Result) error {
	if cfg.Format == config.FormatYAML {
		rep := solveReport{
			Input:    cfg.Input,
			Part1:    res.Part1,
			Circuits: res.Circuits,
			Sizes:    res.Sizes,
		}
		if res.HasPart2 {
			part2 := res.Part2
			rep.Part2 = &part2
			rep.LastEdge = &edgeReport{
				From:     res.LastEdge.From.String(),
				To:       res.LastEdge.To.String(),
				Distance: res.LastEdge.Weight,
			}
		}
		return writeYAML(w, rep)
	}

	if _, err := fmt.Fprintf(w, "Part 1: %d\n", res.Part1); err != nil {
		return errors.Trace(err)
	}
	if !res.HasPart2 {
		_, err := fmt.Fprintln(w, "Part 2: no connecting edge")
		return errors.Trace(err)
	}
	_, err := fmt.Fprintf(w, "Part 2: %d\n", res.Part2)

	return errors.Trace(err)
}

func renderRegions(w io.Writer, cfg config.Config, sizes []int) error {
	land := 0
	for _, s := range sizes {
		land += s
	}

	if cfg.Format == config.FormatYAML {
		return writeYAML(w, regionsReport{
			Input:     cfg.Input,
			Regions:   len(sizes),
			LandCells: land,
			Sizes:     sizes,
		})
	}

	largest := 0
	if len(sizes) > 0 {
		largest = sizes[0]
	}
	_, err := fmt.Fprintf(w, "Regions: %d\nLargest: %d\nLand cells: %d\n", len(sizes), largest, land)

	return errors.Trace(err)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Trace(err)
	}

	return errors.Trace(enc.Close())
}
