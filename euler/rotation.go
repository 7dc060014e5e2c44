package euler

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/angles"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/rotmat"
)

// Rotation is an orientation given by Euler angles. The angles are the
// canonical parameterization; Matrix and ExpMap derive the other views
// each time they are called, and FromMatrix/FromExpMap return an updated
// copy whose angles follow the receiver's order, convention and units.
//
// The zero value is not valid; use NewRotation.
type Rotation struct {
	Angles    [3]float64   // in Units
	Order     Order        // one of Orders
	Extrinsic bool         // fixed-axes convention when true
	Units     angles.Units // Radians or Degrees
}

// NewRotation validates order and units and returns the Rotation.
func NewRotation(ang [3]float64, order string, extrinsic bool, units angles.Units) (Rotation, error) {
	o, err := ParseOrder(order)
	if err != nil {
		return Rotation{}, err
	}
	r := Rotation{Angles: ang, Order: o, Extrinsic: extrinsic, Units: units}
	if err = r.Validate(); err != nil {
		return Rotation{}, err
	}

	return r, nil
}

// Validate checks the order and the units.
func (r Rotation) Validate() error {
	if _, err := ParseOrder(string(r.Order)); err != nil {
		return err
	}
	if r.Units != angles.Radians && r.Units != angles.Degrees {
		return fmt.Errorf("Rotation: units %d: %w", int(r.Units), angles.ErrUnknownUnits)
	}

	return nil
}

// radians returns the angles converted to radians.
func (r Rotation) radians() [3]float64 {
	var out [3]float64
	for i, a := range r.Angles {
		out[i] = r.Units.ToRadians(a)
	}

	return out
}

// Matrix derives the rotation matrix.
func (r Rotation) Matrix() (rotmat.Matrix, error) {
	if err := r.Validate(); err != nil {
		return rotmat.Matrix{}, err
	}

	return MakeRotMat(r.radians(), r.Order, r.Extrinsic)
}

// ExpMap derives the exponential-map vector (radians, whatever r.Units).
func (r Rotation) ExpMap() (r3.Vector, error) {
	m, err := r.Matrix()
	if err != nil {
		return r3.Vector{}, err
	}
	phi, n := quaternion.AngleAxisOfRotMat(rotmat.Batch{m})

	return n[0].Mul(phi[0]), nil
}

// FromMatrix returns a copy of r whose angles encode m under r's order,
// convention and units. m must be proper orthogonal.
func (r Rotation) FromMatrix(m rotmat.Matrix) (Rotation, error) {
	if err := r.Validate(); err != nil {
		return Rotation{}, err
	}
	ang, err := AnglesFromRotMat(m, r.Order, r.Extrinsic)
	if err != nil {
		return Rotation{}, err
	}
	out := r
	for i, a := range ang {
		out.Angles[i] = r.Units.FromRadians(a)
	}

	return out, nil
}

// FromExpMap returns a copy of r encoding the rotation v (radians).
func (r Rotation) FromExpMap(v r3.Vector) (Rotation, error) {
	return r.FromMatrix(quaternion.RotMatOfExpMap([]r3.Vector{v})[0])
}

// WithUnits returns a copy expressed in u, rescaling the stored angles.
func (r Rotation) WithUnits(u angles.Units) (Rotation, error) {
	if u != angles.Radians && u != angles.Degrees {
		return Rotation{}, fmt.Errorf("WithUnits(%d): %w", int(u), angles.ErrUnknownUnits)
	}
	out := r
	if r.Units != u {
		for i, a := range r.Angles {
			out.Angles[i] = u.FromRadians(r.Units.ToRadians(a))
		}
	}
	out.Units = u

	return out, nil
}

// WithOrder returns a copy tagged with another axis order. The angles are
// kept as they are, so the encoded rotation generally changes.
func (r Rotation) WithOrder(order string) (Rotation, error) {
	o, err := ParseOrder(order)
	if err != nil {
		return Rotation{}, err
	}
	out := r
	out.Order = o

	return out, nil
}
