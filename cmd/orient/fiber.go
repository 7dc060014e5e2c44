package main

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/fiber"
	"github.com/katalvlaran/orient/symmetry"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

type fiberOpts struct {
	symOpts
	c, s   []float64
	ndiv   int
	invert bool
	centro bool
}

func newFiberCommand() *cobra.Command {
	var opts fiberOpts
	cmd := &cobra.Command{
		Use:   "fiber",
		Short: "Sample the orientations carrying crystal direction c onto sample direction s",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := vector("c", opts.c)
			if err != nil {
				return err
			}
			s, err := vector("s", opts.s)
			if err != nil {
				return err
			}
			cfg := fiber.DefaultOptions()
			cfg.NDiv = opts.ndiv
			cfg.Invert = opts.invert
			if opts.crystal != "" {
				cfg.CSym = symmetry.Tag(opts.crystal)
			}
			if opts.sample != "" {
				cfg.SSym = symmetry.Tag(opts.sample)
			}
			klog.V(2).InfoS("generating fiber", "c", c, "s", s, "ndiv", cfg.NDiv)
			fib, err := fiber.DiscreteFiber([]r3.Vector{c}, []r3.Vector{s}, cfg)
			if err != nil {
				return err
			}
			for _, q := range fib[0][0] {
				fmt.Fprintln(cmd.OutOrStdout(), formatQuat(q))
			}

			return nil
		},
	}
	fs := cmd.Flags()
	addSymmetryFlags(fs, &opts.symOpts, "")
	fs.Float64SliceVar(&opts.c, "c", []float64{0, 0, 1}, "crystal direction x,y,z")
	fs.Float64SliceVar(&opts.s, "s", []float64{0, 0, 1}, "sample direction x,y,z")
	fs.IntVar(&opts.ndiv, "ndiv", fiber.DefaultNDiv, "number of samples along the fiber")
	fs.BoolVar(&opts.invert, "invert", false, "print the inverse rotations (sample to crystal)")

	return cmd
}

func newFiberDistanceCommand() *cobra.Command {
	var opts fiberOpts
	cmd := &cobra.Command{
		Use:   "fiber-distance w,x,y,z...",
		Short: "Distance of each orientation from the c∥s fiber",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuats(args)
			if err != nil {
				return err
			}
			c, err := vector("c", opts.c)
			if err != nil {
				return err
			}
			s, err := vector("s", opts.s)
			if err != nil {
				return err
			}
			g, err := symmetry.QuatOfLaueGroup(opts.crystal)
			if err != nil {
				return err
			}
			d, err := fiber.DistanceToFiber(c, s, q, g, fiber.DistanceOptions{Centrosymmetry: opts.centro})
			if err != nil {
				return err
			}
			for _, x := range d {
				fmt.Fprintln(cmd.OutOrStdout(), opts.angle(x))
			}

			return nil
		},
	}
	fs := cmd.Flags()
	addSymmetryFlags(fs, &opts.symOpts, "ci")
	fs.Float64SliceVar(&opts.c, "c", []float64{0, 0, 1}, "crystal direction x,y,z")
	fs.Float64SliceVar(&opts.s, "s", []float64{0, 0, 1}, "sample direction x,y,z")
	fs.BoolVar(&opts.centro, "centrosymmetry", false, "include -c among the equivalent directions")

	return cmd
}
