package fiber

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/symmetry"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrUnknownOption is returned for an unrecognized keyword option.
	ErrUnknownOption = errors.New("fiber: keyword arg is not recognized")

	// ErrBadOption is returned for an option with an invalid value or type.
	ErrBadOption = errors.New("fiber: invalid option value")

	// ErrShape is returned for empty direction lists or a non-3×3 B matrix.
	ErrShape = errors.New("fiber: wrong shape")

	// ErrZeroVector is returned for a zero-length c or s direction.
	ErrZeroVector = errors.New("fiber: zero-length direction")

	// ErrFactorization is returned when the SVD behind NullSpace fails.
	ErrFactorization = errors.New("fiber: SVD factorization failed")
)

// DefaultNDiv is the number of fiber samples when none is configured.
const DefaultNDiv = 120

// Options configures DiscreteFiber.
type Options struct {
	// B maps lattice directions to the crystal frame; nil means identity.
	B mat.Matrix
	// NDiv is the number of samples per fiber (≥ 1).
	NDiv int
	// Invert returns the inverse rotations (sample to crystal).
	Invert bool
	// CSym, when set, reduces every member to the fundamental region.
	CSym symmetry.Source
	// SSym adds sample symmetry to the reduction; requires CSym.
	SSym symmetry.Source
}

// DefaultOptions returns Options with NDiv = DefaultNDiv and no symmetry.
func DefaultOptions() Options {
	return Options{NDiv: DefaultNDiv}
}

func (o Options) validate() error {
	if o.NDiv < 1 {
		return fmt.Errorf("NDiv %d: %w", o.NDiv, ErrBadOption)
	}
	if o.CSym.IsZero() && !o.SSym.IsZero() {
		return fmt.Errorf("sample symmetry without crystal symmetry: %w", ErrBadOption)
	}

	return nil
}

// DistanceOptions configures DistanceToFiber.
type DistanceOptions struct {
	// Centrosymmetry adds -c to the symmetry-equivalent directions.
	Centrosymmetry bool
	// BMatrix maps c to the crystal frame; nil means identity.
	BMatrix mat.Matrix
}

// DistanceOptionsFromMap builds DistanceOptions from keyword-style options.
// Recognized keys: "centrosymmetry" (bool) and "bmatrix" (mat.Matrix or
// [3][3]float64). Any other key fails with ErrUnknownOption.
func DistanceOptionsFromMap(kw map[string]any) (DistanceOptions, error) {
	var o DistanceOptions
	for k, v := range kw {
		switch k {
		case "centrosymmetry":
			b, ok := v.(bool)
			if !ok {
				return DistanceOptions{}, fmt.Errorf("centrosymmetry: %T: %w", v, ErrBadOption)
			}
			o.Centrosymmetry = b
		case "bmatrix":
			switch m := v.(type) {
			case mat.Matrix:
				o.BMatrix = m
			case [3][3]float64:
				o.BMatrix = mat.NewDense(3, 3, []float64{
					m[0][0], m[0][1], m[0][2],
					m[1][0], m[1][1], m[1][2],
					m[2][0], m[2][1], m[2][2],
				})
			default:
				return DistanceOptions{}, fmt.Errorf("bmatrix: %T: %w", v, ErrBadOption)
			}
		default:
			return DistanceOptions{}, fmt.Errorf("%q: %w", k, ErrUnknownOption)
		}
	}

	return o, nil
}

// crystalDirection returns unit(B·c).
func crystalDirection(b mat.Matrix, c r3.Vector) (r3.Vector, error) {
	if b != nil {
		if r, k := b.Dims(); r != 3 || k != 3 {
			return r3.Vector{}, fmt.Errorf("B is %d×%d: %w", r, k, ErrShape)
		}
		var out mat.VecDense
		out.MulVec(b, mat.NewVecDense(3, []float64{c.X, c.Y, c.Z}))
		c = r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
	}

	return unit(c)
}

func unit(v r3.Vector) (r3.Vector, error) {
	n := v.Norm()
	if n == 0 {
		return r3.Vector{}, ErrZeroVector
	}

	return v.Mul(1 / n), nil
}
