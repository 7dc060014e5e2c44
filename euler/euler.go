package euler

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/rotmat"
	"gonum.org/v1/gonum/num/quat"
)

// gimbalTol is the distance of the middle angle from 0 or π below which the
// first and third angles are no longer separable.
const gimbalTol = 1e-7

// MakeRotMat builds the rotation matrix for angles (radians) about the axes
// of order.
//
// Extrinsic: the rotations are about the fixed axes, first angle applied
// first, so R = E3·E2·E1. Intrinsic: the rotations are about the moving
// axes, R = E1·E2·E3.
func MakeRotMat(ang [3]float64, order Order, extrinsic bool) (rotmat.Matrix, error) {
	o, err := ParseOrder(string(order))
	if err != nil {
		return rotmat.Matrix{}, err
	}
	ax := o.axes()
	var e [3]rotmat.Matrix
	for i := 0; i < 3; i++ {
		// ax[i] is always 0..2 here
		e[i], _ = rotmat.Elementary(ax[i], ang[i])
	}
	if extrinsic {
		return rotmat.Mul(e[2], rotmat.Mul(e[1], e[0])), nil
	}

	return rotmat.Mul(e[0], rotmat.Mul(e[1], e[2])), nil
}

// AnglesFromRotMat returns Euler angles (radians) of a rotation matrix for
// the given order and convention. The matrix is validated first
// (rotmat.ErrNotRotation). The first and third angles are in [-π, π]; the
// middle one in [0, π] for proper orders and [-π/2, π/2] for Tait–Bryan
// orders. At gimbal lock the third angle (in the extrinsic frame) is zero.
func AnglesFromRotMat(r rotmat.Matrix, order Order, extrinsic bool) ([3]float64, error) {
	o, err := ParseOrder(string(order))
	if err != nil {
		return [3]float64{}, err
	}
	if err = r.Validate(); err != nil {
		return [3]float64{}, fmt.Errorf("AnglesFromRotMat: %w", err)
	}
	q := quaternion.FromRotMat(rotmat.Batch{r})[0]

	return anglesFromQuat(q, o, extrinsic), nil
}

// AnglesFromRotMatXYZ returns the extrinsic x-y-z angles of r.
func AnglesFromRotMatXYZ(r rotmat.Matrix) ([3]float64, error) {
	return AnglesFromRotMat(r, XYZ, true)
}

// AnglesFromRotMatZXZ returns the intrinsic z-x-z angles of r.
func AnglesFromRotMatZXZ(r rotmat.Matrix) ([3]float64, error) {
	return AnglesFromRotMat(r, ZXZ, false)
}

// anglesFromQuat extracts angles with the quaternion method of Bernardes
// and Viollet (2022). Intrinsic sequences are solved as the reversed
// extrinsic sequence with the first and third angles swapped.
func anglesFromQuat(q quat.Number, o Order, extrinsic bool) [3]float64 {
	ax := o.axes()
	if !extrinsic {
		ax[0], ax[2] = ax[2], ax[0]
	}
	i, j, k := ax[0], ax[1], ax[2]
	proper := i == k
	if proper {
		k = 3 - i - j
	}
	// +1 for an even permutation of (i, j, k), -1 for odd
	sign := float64((i - j) * (j - k) * (k - i) / 2)

	comp := [4]float64{q.Imag, q.Jmag, q.Kmag, q.Real}
	var a, b, c, d float64
	if proper {
		a, b, c, d = comp[3], comp[i], comp[j], comp[k]*sign
	} else {
		a = comp[3] - comp[j]
		b = comp[i] + comp[k]*sign
		c = comp[j] + comp[3]
		d = comp[k]*sign - comp[i]
	}

	first, third := 0, 2
	if !extrinsic {
		first, third = 2, 0
	}

	var out [3]float64
	out[1] = 2 * math.Atan2(math.Hypot(c, d), math.Hypot(a, b))
	halfSum := math.Atan2(b, a)
	halfDiff := math.Atan2(d, c)

	// at gimbal lock the third angle of the extrinsic solve is zero; for
	// intrinsic orders that is the first reported angle
	switch {
	case math.Abs(out[1]) <= gimbalTol:
		out[third] = 0
		out[first] = 2 * halfSum
	case math.Abs(out[1]-math.Pi) <= gimbalTol:
		out[third] = 0
		out[first] = -2 * halfDiff
	default:
		out[first] = halfSum - halfDiff
		out[third] = halfSum + halfDiff
	}

	if !proper {
		out[third] *= sign
		out[1] -= math.Pi / 2
	}

	for n := range out {
		if out[n] < -math.Pi {
			out[n] += 2 * math.Pi
		} else if out[n] > math.Pi {
			out[n] -= 2 * math.Pi
		}
	}

	return out
}
