package quaternion_test

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/quaternion"
	"gonum.org/v1/gonum/num/quat"
)

// randomBatch draws n unit quaternions (either sign) from a fixed seed.
func randomBatch(seed int64, n int) quaternion.Batch {
	rng := rand.New(rand.NewSource(seed))
	out := make(quaternion.Batch, n)
	for i := range out {
		q := quat.Number{Real: rng.NormFloat64(), Imag: rng.NormFloat64(), Jmag: rng.NormFloat64(), Kmag: rng.NormFloat64()}
		out[i] = quat.Scale(1/quat.Abs(q), q)
	}

	return out
}

// randomExpMaps draws n exponential maps with |v| < π.
func randomExpMaps(seed int64, n int) []r3.Vector {
	rng := rand.New(rand.NewSource(seed))
	out := make([]r3.Vector, n)
	for i := range out {
		ax := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}.Normalize()
		out[i] = ax.Mul(rng.Float64() * (math.Pi - 1e-3))
	}

	return out
}

// quatDist is the max component distance between a and b.
func quatDist(a, b quat.Number) float64 {
	return math.Max(math.Max(math.Abs(a.Real-b.Real), math.Abs(a.Imag-b.Imag)),
		math.Max(math.Abs(a.Jmag-b.Jmag), math.Abs(a.Kmag-b.Kmag)))
}
