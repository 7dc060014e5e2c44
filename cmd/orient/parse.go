package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/num/quat"
)

var errArgs = errors.New("orient: bad argument")

// symOpts holds the symmetry flags shared by several commands.
type symOpts struct {
	crystal string
	sample  string
	radians bool
}

func addSymmetryFlags(fs *pflag.FlagSet, o *symOpts, crystalDefault string) {
	fs.StringVar(&o.crystal, "crystal", crystalDefault, "crystal Laue group tag (ci, c2h, d2h, c4h, d4h, c3i, d3d, c6h, d6h, th, oh)")
	fs.StringVar(&o.sample, "sample", "", "optional sample Laue group tag")
	fs.BoolVar(&o.radians, "radians", false, "print angles in radians instead of degrees")
}

// angle formats a radian value per the --radians flag.
func (o symOpts) angle(rad float64) string {
	if o.radians {
		return strconv.FormatFloat(rad, 'f', 8, 64)
	}

	return strconv.FormatFloat(rad*180/math.Pi, 'f', 6, 64)
}

// parseFloats splits a comma-separated list into exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: want %d comma-separated numbers: %w", s, n, errArgs)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseQuats reads "w,x,y,z" arguments into a batch of unit quaternions.
func parseQuats(args []string) (quaternion.Batch, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no quaternions given: %w", errArgs)
	}
	out := make(quaternion.Batch, len(args))
	for i, a := range args {
		v, err := parseFloats(a, 4)
		if err != nil {
			return nil, err
		}
		out[i] = quaternion.Normalize(quat.Number{Real: v[0], Imag: v[1], Jmag: v[2], Kmag: v[3]})
	}

	return out, nil
}

// vector converts a --flag value given as a float slice.
func vector(name string, v []float64) (r3.Vector, error) {
	if len(v) != 3 {
		return r3.Vector{}, fmt.Errorf("--%s needs 3 components, got %d: %w", name, len(v), errArgs)
	}

	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
}

// formatQuat prints w,x,y,z to nine decimals.
func formatQuat(q quat.Number) string {
	return fmt.Sprintf("%.9f,%.9f,%.9f,%.9f", printed(q.Real), printed(q.Imag), printed(q.Jmag), printed(q.Kmag))
}

// printed rounds v to nine decimals so residues below the last printed
// digit cannot show up as -0.000000000; adding zero folds -0 into 0.
func printed(v float64) float64 {
	return math.Round(v*1e9)/1e9 + 0
}
