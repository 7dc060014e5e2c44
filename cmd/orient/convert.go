package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/orient/angles"
	"github.com/katalvlaran/orient/euler"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/rotmat"
	"github.com/spf13/cobra"
)

func newEulerCommand() *cobra.Command {
	var (
		order     string
		intrinsic bool
		units     string
	)
	cmd := &cobra.Command{
		Use:   "euler a,b,c",
		Short: "Convert Euler angles to a rotation matrix, exponential map and quaternion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := angles.ParseUnits(units)
			if err != nil {
				return err
			}
			v, err := parseFloats(args[0], 3)
			if err != nil {
				return err
			}
			r, err := euler.NewRotation([3]float64{v[0], v[1], v[2]}, order, !intrinsic, u)
			if err != nil {
				return err
			}
			m, err := r.Matrix()
			if err != nil {
				return err
			}
			w, err := r.ExpMap()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := 0; i < 3; i++ {
				fmt.Fprintf(out, "% .9f % .9f % .9f\n", m.At(i, 0), m.At(i, 1), m.At(i, 2))
			}
			fmt.Fprintf(out, "expmap %.9f,%.9f,%.9f\n", w.X, w.Y, w.Z)
			fmt.Fprintf(out, "quat %s\n", formatQuat(quaternion.FromRotMat(rotmat.Batch{m})[0]))

			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&order, "order", "xyz", "axis order, e.g. xyz or zxz")
	fs.BoolVar(&intrinsic, "intrinsic", false, "rotate about moving axes instead of fixed axes")
	fs.StringVar(&units, "units", "degrees", "angular units: degrees or radians")

	return cmd
}

func newMapAngleCommand() *cobra.Command {
	var (
		units string
		rng   []float64
	)
	cmd := &cobra.Command{
		Use:   "map-angle angle...",
		Short: "Wrap angles into one period",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := angles.ParseUnits(units)
			if err != nil {
				return err
			}
			vals := make([]float64, len(args))
			for i, a := range args {
				if vals[i], err = strconv.ParseFloat(a, 64); err != nil {
					return err
				}
			}
			opts := []angles.Option{angles.WithUnits(u)}
			switch len(rng) {
			case 0:
			case 2:
				opts = append(opts, angles.WithRange(rng[0], rng[1]))
			default:
				return fmt.Errorf("--range needs lo,hi: %w", errArgs)
			}
			mapped, err := angles.MapAngle(vals, opts...)
			if err != nil {
				return err
			}
			for _, m := range mapped {
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(m, 'g', -1, 64))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&units, "units", "degrees", "angular units: degrees or radians")
	cmd.Flags().Float64SliceVar(&rng, "range", nil, "explicit target range lo,hi spanning one period")

	return cmd
}
