package misorientation

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/symmetry"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/optimize"
)

// epsf is float64 machine epsilon.
var epsf = math.Nextafter(1, 2) - 1

// AverageOptions configures the least-squares search in Average.
type AverageOptions struct {
	// MaxIterations caps simplex iterations; 0 means no limit.
	MaxIterations int
	// MaxEvaluations caps objective evaluations; 0 means no limit.
	MaxEvaluations int
	// Tol is the absolute change in the objective treated as converged.
	Tol float64
	// StallIterations is how many iterations the objective may move by less
	// than Tol before the search stops.
	StallIterations int
}

// DefaultAverageOptions returns the settings used by Average.
func DefaultAverageOptions() AverageOptions {
	return AverageOptions{
		MaxIterations:   2000,
		Tol:             1e-12,
		StallIterations: 100,
	}
}

// AverageCluster returns the symmetry-aware mean of a tight cluster.
//
// One quaternion is returned as given. Two are joined by the midpoint of
// their misorientation. Three or more are rotated into the frame of the
// first, reduced to the fundamental region, averaged component-wise,
// renormalized, rotated back and reduced again.
func AverageCluster(q quaternion.Batch, qsym quaternion.Batch) (quat.Number, error) {
	if len(q) == 0 {
		return quat.Number{}, fmt.Errorf("AverageCluster: %w", ErrEmpty)
	}
	if len(qsym) == 0 {
		return quat.Number{}, fmt.Errorf("AverageCluster: %w", symmetry.ErrEmptyGroup)
	}
	qn := normalizeAll(q)
	if len(qn) < 3 {
		return shortAverage(qn, qsym)
	}

	// drag to the origin with the first element
	q0 := qn[0]
	qrot := quaternion.LeftMultiply(quaternion.Invert(quaternion.Batch{q0}), qn)
	qrot, err := symmetry.ToFundamentalRegion(qrot, symmetry.Group(qsym))
	if err != nil {
		return quat.Number{}, fmt.Errorf("AverageCluster: %w", err)
	}

	sum := make([]float64, 4)
	for _, r := range qrot {
		floats.Add(sum, []float64{r.Real, r.Imag, r.Jmag, r.Kmag})
	}
	floats.Scale(1/float64(len(qrot)), sum)
	mean := quaternion.Normalize(quat.Number{Real: sum[0], Imag: sum[1], Jmag: sum[2], Kmag: sum[3]})

	out, err := symmetry.ToFundamentalRegion(quaternion.Batch{quat.Mul(q0, mean)}, symmetry.Group(qsym))
	if err != nil {
		return quat.Number{}, fmt.Errorf("AverageCluster: %w", err)
	}

	return out[0], nil
}

// Average returns the orientation minimizing the sum of squared
// misorientation angles to every element of q under crystal symmetry qsym.
// One or two inputs use the same closed forms as AverageCluster.
//
// The search runs over the exponential map, starting from the first input.
// The result is canonical but not reduced to the fundamental region.
func Average(q quaternion.Batch, qsym quaternion.Batch, opts AverageOptions) (quat.Number, error) {
	if len(q) == 0 {
		return quat.Number{}, fmt.Errorf("Average: %w", ErrEmpty)
	}
	if len(qsym) == 0 {
		return quat.Number{}, fmt.Errorf("Average: %w", symmetry.ErrEmptyGroup)
	}
	qn := normalizeAll(q)
	if len(qn) < 3 {
		return shortAverage(qn, qsym)
	}

	objective := func(x []float64) float64 {
		ang, _, err := Misorientation(quatOfParams(x), qn, qsym)
		if err != nil {
			return math.Inf(1)
		}

		return floats.Dot(ang, ang)
	}

	settings := &optimize.Settings{
		MajorIterations: opts.MaxIterations,
		FuncEvaluations: opts.MaxEvaluations,
		Converger: &optimize.FunctionConverge{
			Absolute:   opts.Tol,
			Iterations: opts.StallIterations,
		},
	}
	res, err := optimize.Minimize(optimize.Problem{Func: objective}, initialParams(qn[0]), settings, &optimize.NelderMead{})
	if err != nil {
		return quat.Number{}, fmt.Errorf("Average: %w", err)
	}

	return quaternion.Canonical(quatOfParams(res.X)), nil
}

// shortAverage handles one or two inputs.
func shortAverage(q quaternion.Batch, qsym quaternion.Batch) (quat.Number, error) {
	if len(q) == 1 {
		return q[0], nil
	}
	ma, mq, err := Misorientation(q[0], q[1:2], qsym)
	if err != nil {
		return quat.Number{}, err
	}
	axis := r3.Vector{X: mq[0].Imag, Y: mq[0].Jmag, Z: mq[0].Kmag}
	if n := axis.Norm(); n > epsf {
		axis = axis.Mul(1 / n)
	} else {
		axis = r3.Vector{}
	}
	half := quaternion.FromExpMap([]r3.Vector{axis.Mul(0.5 * ma[0])})
	mid, err := quaternion.Product(q[:1], half)
	if err != nil {
		return quat.Number{}, err
	}

	return mid[0], nil
}

// initialParams is the exponential map of q without sign fixing, or zero
// for a rotation below machine precision.
func initialParams(q quat.Number) []float64 {
	phi := 2 * math.Acos(math.Max(-1, math.Min(1, q.Real)))
	v := []float64{q.Imag, q.Jmag, q.Kmag}
	n := floats.Norm(v, 2)
	if phi <= epsf || n <= epsf {
		return make([]float64, 3)
	}
	floats.Scale(phi/n, v)

	return v
}

// quatOfParams maps an exponential-map parameter vector to a quaternion.
func quatOfParams(x []float64) quat.Number {
	phi := floats.Norm(x, 2)
	if phi <= epsf {
		return quaternion.Identity()
	}
	s, c := math.Sincos(0.5 * phi)
	s /= phi

	return quat.Number{Real: c, Imag: s * x[0], Jmag: s * x[1], Kmag: s * x[2]}
}

// normalizeAll rescales every element to unit norm.
func normalizeAll(q quaternion.Batch) quaternion.Batch {
	out := make(quaternion.Batch, len(q))
	for i := range q {
		out[i] = quaternion.Normalize(q[i])
	}

	return out
}
