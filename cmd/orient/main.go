// Command orient is a small front-end over the orient packages: Laue group
// tables, fundamental-region reduction, misorientation, averaging, fibers,
// Euler conversions and angle mapping. Quaternions are passed as
// "w,x,y,z" arguments; angles print in degrees unless --radians is given.
package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	defer klog.Flush()

	root := newRootCommand()
	root.PersistentFlags().AddFlagSet(pflag.CommandLine)
	if err := root.Execute(); err != nil {
		klog.ErrorS(err, "orient failed")
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "orient",
		Short:         "Crystallographic orientation toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newLaueCommand(),
		newFundamentalRegionCommand(),
		newMisorientationCommand(),
		newAverageCommand(),
		newFiberCommand(),
		newFiberDistanceCommand(),
		newEulerCommand(),
		newMapAngleCommand(),
	)

	return cmd
}
