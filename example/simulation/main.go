// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"os"

	"github.com/rscherrer/readpars"
	"github.com/rscherrer/readpars/check"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type simulation struct {
	NGenes  int
	MutRate float64
	Noise   float64
	Genes   []float64
}

// readSimulation drives one Reader over one parameter file, dispatching
// on each parameter name.
func readSimulation(path string, logger *zap.Logger) (*simulation, error) {
	var sim simulation

	r := readpars.New(path, readpars.WithLogger(logger))
	if err := r.Open(); err != nil {
		return nil, err
	}
	defer r.Close()

	for !r.EOF() {
		if err := r.ReadLine(); err != nil {
			return nil, err
		}
		if r.Empty() || r.Comment() {
			continue
		}

		var err error
		switch r.Name() {
		case "ngenes":
			err = readpars.ReadValue(r, &sim.NGenes, check.StrictlyPositive[int])
		case "mutrate":
			err = readpars.ReadValue(r, &sim.MutRate, check.Proportion[float64])
		case "noise":
			err = readpars.ReadValue(r, &sim.Noise, check.Positive[float64])
		case "genes":
			// ngenes must appear before genes, it sets the vector size.
			err = readpars.ReadValues(r, &sim.Genes, sim.NGenes, check.StrictlyPositive[float64], nil)
		default:
			err = r.Unknown()
		}
		if err != nil {
			return nil, err
		}
	}
	return &sim, nil
}

func buildCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "simulation [files...]",
		Short:        "Read simulation parameter files",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"parameters.txt"}
			}

			// One Reader per file, each on its own handle.
			var g errgroup.Group
			for _, path := range args {
				path := path
				g.Go(func() error {
					sim, err := readSimulation(path, logger)
					if err != nil {
						return err
					}
					logger.Info("input read in successfully",
						zap.String("file", path),
						zap.Int("ngenes", sim.NGenes),
						zap.Float64("mutrate", sim.MutRate),
						zap.Float64("noise", sim.Noise),
						zap.Float64s("genes", sim.Genes),
					)
					return nil
				})
			}
			return g.Wait()
		},
	}
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := buildCmd(logger).Execute(); err != nil {
		logger.Error("failed to read parameters", zap.Error(err))
		os.Exit(1)
	}
}
