package quaternion

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/rotmat"
	"gonum.org/v1/gonum/num/quat"
)

// smallAngle is the threshold below which ExpMap switches to the series
// expansion of angle/sin(angle/2).
const smallAngle = 1e-3

// unitOrZero normalizes v; vectors with norm ≤ epsf map to the zero vector.
func unitOrZero(v r3.Vector) r3.Vector {
	n := v.Norm()
	if n <= epsf {
		return r3.Vector{}
	}

	return v.Mul(1 / n)
}

// fromRotVec is the canonical quaternion of a rotation by angle about the
// unit vector axis. A zero axis yields the identity.
func fromRotVec(angle float64, axis r3.Vector) quat.Number {
	if axis == (r3.Vector{}) {
		return Identity()
	}
	s, c := math.Sincos(0.5 * angle)
	q := quat.Number{Real: c, Imag: s * axis.X, Jmag: s * axis.Y, Kmag: s * axis.Z}
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}

	return q
}

// FromAngleAxis builds canonical quaternions from angle/axis pairs. Axes are
// normalized first. axes may hold a single axis shared by every angle, or
// one axis per angle; any other length fails with ErrShape. A single angle
// with many axes is also accepted.
// Complexity: O(n).
func FromAngleAxis(angles []float64, axes []r3.Vector) (Batch, error) {
	if len(angles) == 0 || len(axes) == 0 {
		return nil, fmt.Errorf("FromAngleAxis: %d angles, %d axes: %w", len(angles), len(axes), ErrShape)
	}
	n, err := pairedLen(len(angles), len(axes))
	if err != nil {
		return nil, fmt.Errorf("FromAngleAxis: rotation axes have incompatible shape: %w", err)
	}
	out := make(Batch, n)
	var ang float64
	var ax r3.Vector
	for i := 0; i < n; i++ {
		ang, ax = angles[0], axes[0]
		if len(angles) > 1 {
			ang = angles[i]
		}
		if len(axes) > 1 {
			ax = axes[i]
		}
		out[i] = fromRotVec(ang, unitOrZero(ax))
	}

	return out, nil
}

// FromExpMap builds canonical quaternions from exponential-map vectors
// (direction = axis, magnitude = angle in radians).
func FromExpMap(v []r3.Vector) Batch {
	out := make(Batch, len(v))
	for i := range v {
		out[i] = fromRotVec(v[i].Norm(), unitOrZero(v[i]))
	}

	return out
}

// FromRotMat builds canonical quaternions from rotation matrices. The branch
// is chosen on the largest of the trace and the diagonal entries, which keeps
// the extraction well conditioned for every rotation angle.
// Complexity: O(n).
func FromRotMat(b rotmat.Batch) Batch {
	out := make(Batch, len(b))
	for i := range b {
		out[i] = fromRotMatOne(&b[i])
	}

	return out
}

func fromRotMatOne(r *rotmat.Matrix) quat.Number {
	var (
		tr   = r[0] + r[4] + r[8]
		best = 3 // 0..2 diagonal index, 3 trace
		bval = tr
		v    [3]float64
		w    float64
	)
	for k := 0; k < 3; k++ {
		if r[4*k] > bval {
			best, bval = k, r[4*k]
		}
	}
	if best == 3 {
		w = 1 + tr
		v[0] = r[7] - r[5]
		v[1] = r[2] - r[6]
		v[2] = r[3] - r[1]
	} else {
		i := best
		j := (i + 1) % 3
		k := (j + 1) % 3
		v[i] = 1 - tr + 2*r[4*i]
		v[j] = r[3*j+i] + r[3*i+j]
		v[k] = r[3*k+i] + r[3*i+k]
		w = r[3*k+j] - r[3*j+k]
	}

	return fixOne(quat.Number{Real: w, Imag: v[0], Jmag: v[1], Kmag: v[2]})
}

// ExpMap returns the exponential-map vectors of unit quaternions. The sign of
// each quaternion is fixed first, so the angle lies in [0, π].
func ExpMap(q Batch) []r3.Vector {
	out := make([]r3.Vector, len(q))
	var (
		p      quat.Number
		vec    r3.Vector
		angle  float64
		scale  float64
		angle2 float64
	)
	for i := range q {
		p = q[i]
		if p.Real < 0 {
			p = quat.Scale(-1, p)
		}
		vec = r3.Vector{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
		angle = 2 * math.Atan2(vec.Norm(), p.Real)
		if angle <= smallAngle {
			angle2 = angle * angle
			scale = 2 + angle2/12 + 7*angle2*angle2/2880
		} else {
			scale = angle / math.Sin(0.5*angle)
		}
		out[i] = vec.Mul(scale)
	}

	return out
}

// RotMat converts quaternions to rotation matrices with the closed-form
// polynomial kernel. Quaternions are used as given (no renormalization).
// Complexity: O(n), one allocation for the output.
func RotMat(q Batch) rotmat.Batch {
	out := make(rotmat.Batch, len(q))
	rotMatKernel(out, q)

	return out
}

// RotMatInto writes the rotation matrices of q into dst, which must have the
// same length. It allocates nothing.
func RotMatInto(dst rotmat.Batch, q Batch) error {
	if len(dst) != len(q) {
		return fmt.Errorf("RotMatInto: dst %d vs q %d: %w", len(dst), len(q), ErrShape)
	}
	rotMatKernel(dst, q)

	return nil
}

// RotMatParallel is RotMat split over workers goroutines, each converting a
// contiguous partition of the batch. workers ≤ 0 selects GOMAXPROCS.
func RotMatParallel(q Batch, workers int) rotmat.Batch {
	out := make(rotmat.Batch, len(q))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(q) {
		workers = len(q)
	}
	if workers <= 1 {
		rotMatKernel(out, q)

		return out
	}
	chunk := (len(q) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(q); lo += chunk {
		hi := min(lo+chunk, len(q))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			rotMatKernel(out[lo:hi], q[lo:hi])
		}(lo, hi)
	}
	wg.Wait()

	return out
}

// rotMatKernel is the hot loop; len(dst) == len(q) is assumed.
func rotMatKernel(dst rotmat.Batch, q Batch) {
	var a, b, c, d, aa, bb, cc, dd float64
	for i := range q {
		a, b, c, d = q[i].Real, q[i].Imag, q[i].Jmag, q[i].Kmag
		aa, bb, cc, dd = a*a, b*b, c*c, d*d
		dst[i] = rotmat.Matrix{
			aa + bb - cc - dd, 2*b*c - 2*a*d, 2*a*c + 2*b*d,
			2*a*d + 2*b*c, aa - bb + cc - dd, 2*c*d - 2*a*b,
			2*b*d - 2*a*c, 2*a*b + 2*c*d, aa - bb - cc + dd,
		}
	}
}

// RotMatOfExpMap converts exponential-map vectors to rotation matrices.
func RotMatOfExpMap(v []r3.Vector) rotmat.Batch {
	return RotMat(FromExpMap(v))
}

// AngleAxisOfRotMat extracts rotation angles (radians, in [0, π]) and unit
// axes from proper orthogonal matrices. The axis of a zero rotation is the
// zero vector.
func AngleAxisOfRotMat(b rotmat.Batch) ([]float64, []r3.Vector) {
	rv := ExpMap(FromRotMat(b))
	ang := make([]float64, len(rv))
	axes := make([]r3.Vector, len(rv))
	for i, v := range rv {
		ang[i] = v.Norm()
		axes[i] = unitOrZero(v)
	}

	return ang, axes
}
