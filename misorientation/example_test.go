package misorientation_test

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/misorientation"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/symmetry"
)

func ExampleMisorientation() {
	oh, _ := symmetry.QuatOfLaueGroup("oh")
	q2, _ := quaternion.FromAngleAxis([]float64{100 * math.Pi / 180}, []r3.Vector{{Z: 1}})

	plain, _, _ := misorientation.Misorientation(quaternion.Identity(), q2)
	cubic, _, _ := misorientation.Misorientation(quaternion.Identity(), q2, oh)
	fmt.Printf("%.1f %.1f\n", plain[0]*180/math.Pi, cubic[0]*180/math.Pi)
	// Output: 100.0 10.0
}
