package fiber

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/angles"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/rotmat"
	"github.com/katalvlaran/orient/symmetry"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// epsf is float64 machine epsilon.
var epsf = math.Nextafter(1, 2) - 1

// DiscreteFiber samples, for every crystal direction c[i], the fibers to
// every sample direction s[j]. The result holds one Stack per c; stack j
// holds opts.NDiv quaternions, member k being the half turn about the
// bisector of c and s[j] after a rotation by 2πk/NDiv about c. When c and
// s[j] are antiparallel the half turn is about a direction perpendicular
// to c.
//
// Members are sign-fixed, or reduced to the fundamental region when
// opts.CSym is set.
// Complexity: O(len(c)·len(s)·NDiv·m·p).
func DiscreteFiber(c, s []r3.Vector, opts Options) ([]quaternion.Stack, error) {
	if len(c) == 0 || len(s) == 0 {
		return nil, fmt.Errorf("DiscreteFiber: %d c, %d s: %w", len(c), len(s), ErrShape)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("DiscreteFiber: %w", err)
	}
	su := make([]r3.Vector, len(s))
	var err error
	for j := range s {
		if su[j], err = unit(s[j]); err != nil {
			return nil, fmt.Errorf("DiscreteFiber: s[%d]: %w", j, err)
		}
	}

	phi := make([]float64, opts.NDiv)
	for k := range phi {
		phi[k] = float64(k) * (2 * math.Pi / float64(opts.NDiv))
	}
	var reduce []symmetry.Option
	if !opts.SSym.IsZero() {
		reduce = append(reduce, symmetry.WithSampleSymmetry(opts.SSym))
	}

	out := make([]quaternion.Stack, len(c))
	for i := range c {
		ci, err := crystalDirection(opts.B, c[i])
		if err != nil {
			return nil, fmt.Errorf("DiscreteFiber: c[%d]: %w", i, err)
		}
		qh, _ := quaternion.FromAngleAxis(phi, []r3.Vector{ci})

		var hperp *r3.Vector
		st := make(quaternion.Stack, len(su))
		for j := range su {
			ax := su[j].Add(ci)
			if n := ax.Norm(); n > rotmat.SqrtEps {
				ax = ax.Mul(1 / n)
			} else {
				if hperp == nil {
					ns, err := NullSpace(ci)
					if err != nil {
						return nil, fmt.Errorf("DiscreteFiber: c[%d]: %w", i, err)
					}
					hperp = &ns[0]
				}
				ax = *hperp
			}
			q0 := quat.Number{Imag: ax.X, Jmag: ax.Y, Kmag: ax.Z}
			st[j] = quaternion.RightMultiply(quaternion.Batch{q0}, qh)
		}

		if !opts.CSym.IsZero() {
			if st, err = symmetry.ToFundamentalRegionStack(st, opts.CSym, reduce...); err != nil {
				return nil, fmt.Errorf("DiscreteFiber: %w", err)
			}
		}
		if opts.Invert {
			for j := range st {
				st[j] = quaternion.Invert(st[j])
			}
		}
		out[i] = st
	}

	return out, nil
}

// DistanceToFiber returns, for each orientation q[n], the angle (radians)
// between s and the closest of the symmetry-equivalent directions of c
// rotated by q[n].
// Complexity: O(len(q)·m).
func DistanceToFiber(c, s r3.Vector, q quaternion.Batch, qsym quaternion.Batch, opts DistanceOptions) ([]float64, error) {
	cu, err := crystalDirection(opts.BMatrix, c)
	if err != nil {
		return nil, fmt.Errorf("DistanceToFiber: c: %w", err)
	}
	su, err := unit(s)
	if err != nil {
		return nil, fmt.Errorf("DistanceToFiber: s: %w", err)
	}
	ao := symmetry.DefaultApplyOptions()
	ao.Centrosymmetric = opts.Centrosymmetry
	csym, err := symmetry.ApplySym(cu, qsym, ao)
	if err != nil {
		return nil, fmt.Errorf("DistanceToFiber: %w", err)
	}

	rmats := quaternion.RotMat(q)
	d := make([]float64, len(q))
	for n := range rmats {
		best := math.Inf(-1)
		for _, v := range csym {
			best = math.Max(best, su.Dot(rmats[n].Apply(v)))
		}
		if d[n], err = angles.ArccosSafe(best); err != nil {
			return nil, fmt.Errorf("DistanceToFiber: q[%d]: %w", n, err)
		}
	}

	return d, nil
}

// NullSpace returns an orthonormal basis of the plane perpendicular to v,
// taken from the right singular vectors of v as a 1×3 matrix. A zero v
// yields three basis vectors.
func NullSpace(v r3.Vector) ([]r3.Vector, error) {
	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(1, 3, []float64{v.X, v.Y, v.Z}), mat.SVDFull) {
		return nil, ErrFactorization
	}
	var vm mat.Dense
	svd.VTo(&vm)
	sv := svd.Values(nil)
	rank := 0
	for _, x := range sv {
		if x > 3*sv[0]*epsf {
			rank++
		}
	}
	out := make([]r3.Vector, 0, 3-rank)
	for j := rank; j < 3; j++ {
		out = append(out, r3.Vector{X: vm.At(0, j), Y: vm.At(1, j), Z: vm.At(2, j)})
	}

	return out, nil
}
