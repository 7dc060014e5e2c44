package symmetry_test

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/symmetry"
)

func ExampleQuatOfLaueGroup() {
	for _, tag := range []string{"ci", "d2h", "d6h", "oh"} {
		g, _ := symmetry.QuatOfLaueGroup(tag)
		lt, _ := symmetry.LatticeTypeOfLaueGroup(tag)
		fmt.Printf("%s %s %d\n", tag, lt, len(g))
	}
	// Output:
	// ci triclinic 1
	// d2h orthorhombic 4
	// d6h hexagonal 12
	// oh cubic 24
}

func ExampleApplySym() {
	oh, _ := symmetry.QuatOfLaueGroup("oh")
	v, _ := symmetry.ApplySym(r3.Vector{X: 1}, oh, symmetry.ApplyOptions{CullPM: true})
	fmt.Println(len(v))
	// Output: 3
}

// A 100° turn about z reduces to a 10° turn under cubic symmetry.
func ExampleToFundamentalRegion() {
	q, _ := quaternion.FromAngleAxis([]float64{100 * math.Pi / 180}, []r3.Vector{{Z: 1}})
	fr, _ := symmetry.ToFundamentalRegion(q, symmetry.Tag("oh"))
	fmt.Printf("%.1f\n", 2*math.Acos(fr[0].Real)*180/math.Pi)
	// Output: 10.0
}
