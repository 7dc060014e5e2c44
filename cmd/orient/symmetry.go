package main

import (
	"fmt"

	"github.com/katalvlaran/orient/misorientation"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/symmetry"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func newLaueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "laue [tag...]",
		Short: "List Laue groups, or print the rotations of the given groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, tag := range symmetry.Tags() {
					lt, _ := symmetry.LatticeTypeOfLaueGroup(tag)
					n, _ := symmetry.Order(tag)
					fmt.Fprintf(out, "%-4s %-13s %2d\n", tag, lt, n)
				}

				return nil
			}
			for _, tag := range args {
				g, err := symmetry.QuatOfLaueGroup(tag)
				if err != nil {
					return err
				}
				lt, _ := symmetry.LatticeTypeOfLaueGroup(tag)
				fmt.Fprintf(out, "# %s %s %d\n", tag, lt, len(g))
				for _, q := range g {
					fmt.Fprintln(out, formatQuat(q))
				}
			}

			return nil
		},
	}
}

// reduceOptions turns the --sample flag into symmetry options.
func (o symOpts) reduceOptions() []symmetry.Option {
	if o.sample == "" {
		return nil
	}

	return []symmetry.Option{symmetry.WithSampleSymmetry(symmetry.Tag(o.sample))}
}

func newFundamentalRegionCommand() *cobra.Command {
	var opts symOpts
	cmd := &cobra.Command{
		Use:   "fr w,x,y,z...",
		Short: "Reduce orientations to the fundamental region",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuats(args)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("reducing to fundamental region", "count", len(q), "crystal", opts.crystal, "sample", opts.sample)
			fr, err := symmetry.ToFundamentalRegion(q, symmetry.Tag(opts.crystal), opts.reduceOptions()...)
			if err != nil {
				return err
			}
			for _, r := range fr {
				fmt.Fprintln(cmd.OutOrStdout(), formatQuat(r))
			}

			return nil
		},
	}
	addSymmetryFlags(cmd.Flags(), &opts, "oh")

	return cmd
}

// groups resolves the crystal and optional sample groups for misorientation.
func (o symOpts) groups() ([]quaternion.Batch, error) {
	gc, err := symmetry.QuatOfLaueGroup(o.crystal)
	if err != nil {
		return nil, err
	}
	if o.sample == "" {
		return []quaternion.Batch{gc}, nil
	}
	gs, err := symmetry.QuatOfLaueGroup(o.sample)
	if err != nil {
		return nil, err
	}

	return []quaternion.Batch{gc, gs}, nil
}

func newMisorientationCommand() *cobra.Command {
	var opts symOpts
	cmd := &cobra.Command{
		Use:     "misorientation reference target...",
		Aliases: []string{"mis"},
		Short:   "Smallest rotation from a reference orientation to each target",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuats(args)
			if err != nil {
				return err
			}
			syms, err := opts.groups()
			if err != nil {
				return err
			}
			klog.V(2).InfoS("computing misorientation", "targets", len(q)-1, "groups", len(syms))
			ang, mis, err := misorientation.Misorientation(q[0], q[1:], syms...)
			if err != nil {
				return err
			}
			for i := range ang {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", opts.angle(ang[i]), formatQuat(mis[i]))
			}

			return nil
		},
	}
	addSymmetryFlags(cmd.Flags(), &opts, "oh")

	return cmd
}

func newAverageCommand() *cobra.Command {
	var (
		opts   symOpts
		method string
	)
	cmd := &cobra.Command{
		Use:   "average w,x,y,z...",
		Short: "Symmetry-aware mean orientation",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuats(args)
			if err != nil {
				return err
			}
			g, err := symmetry.QuatOfLaueGroup(opts.crystal)
			if err != nil {
				return err
			}
			klog.V(2).InfoS("averaging", "count", len(q), "method", method)
			avg := q[0]
			switch method {
			case "cluster":
				avg, err = misorientation.AverageCluster(q, g)
			case "lsq":
				avg, err = misorientation.Average(q, g, misorientation.DefaultAverageOptions())
			default:
				return fmt.Errorf("--method %q: %w", method, errArgs)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatQuat(avg))

			return nil
		},
	}
	addSymmetryFlags(cmd.Flags(), &opts, "oh")
	cmd.Flags().StringVar(&method, "method", "cluster", "averaging method: cluster (fast mean) or lsq (least squares)")

	return cmd
}
