package rotmat

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShape is returned when input cannot be read as a 3×3 matrix.
	ErrShape = errors.New("rotmat: input must be 3x3")

	// ErrNotRotation is returned when a matrix is not proper orthogonal
	// within SqrtEps.
	ErrNotRotation = errors.New("rotmat: input is not an orthogonal matrix")

	// ErrAxis is returned for an elementary axis index outside {0,1,2}.
	ErrAxis = errors.New("rotmat: axis index must be 0, 1 or 2")
)

// SqrtEps is the square root of float64 machine epsilon, the tolerance of
// the orthogonality check.
var SqrtEps = math.Sqrt(math.Nextafter(1, 2) - 1)

// Matrix is a 3×3 matrix stored row-major: element (i,j) is at 3*i+j.
type Matrix [9]float64

// Batch is an ordered collection of matrices (the n×3×3 layout).
type Batch []Matrix

// Identity returns the 3×3 identity.
func Identity() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// FromRows builds a Matrix from three rows.
func FromRows(r0, r1, r2 [3]float64) Matrix {
	return Matrix{r0[0], r0[1], r0[2], r1[0], r1[1], r1[2], r2[0], r2[1], r2[2]}
}

// FromSlice reads a row-major slice of exactly 9 values.
func FromSlice(v []float64) (Matrix, error) {
	var m Matrix
	if len(v) != 9 {
		return m, fmt.Errorf("FromSlice: len=%d: %w", len(v), ErrShape)
	}
	copy(m[:], v)

	return m, nil
}

// FromDense copies a gonum matrix into a Matrix; it must be 3×3.
func FromDense(d mat.Matrix) (Matrix, error) {
	var m Matrix
	r, c := d.Dims()
	if r != 3 || c != 3 {
		return m, fmt.Errorf("FromDense: %dx%d: %w", r, c, ErrShape)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3*i+j] = d.At(i, j)
		}
	}

	return m, nil
}

// Dense returns a gonum copy of m.
func (m Matrix) Dense() *mat.Dense {
	data := make([]float64, 9)
	copy(data, m[:])

	return mat.NewDense(3, 3, data)
}

// At returns element (i,j).
func (m Matrix) At(i, j int) float64 {
	return m[3*i+j]
}

// Column returns column j as a vector.
func (m Matrix) Column(j int) r3.Vector {
	return r3.Vector{X: m[j], Y: m[3+j], Z: m[6+j]}
}

// Mul returns the product a·b.
func Mul(a, b Matrix) Matrix {
	var out Matrix
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			out[3*i+j] = a[3*i]*b[j] + a[3*i+1]*b[3+j] + a[3*i+2]*b[6+j]
		}
	}

	return out
}

// Transpose returns mᵗ.
func (m Matrix) Transpose() Matrix {
	return Matrix{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Apply returns m·v.
func (m Matrix) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Det returns the determinant of m.
func (m Matrix) Det() float64 {
	return mat.Det(m.Dense())
}

// Validate reports ErrNotRotation unless |1-det(m)| and Σ|I - m·mᵗ| are
// both below SqrtEps.
func (m Matrix) Validate() error {
	det := m.Det()
	mmt := Mul(m, m.Transpose())
	id := Identity()
	var resid float64
	for k := range mmt {
		resid += math.Abs(id[k] - mmt[k])
	}
	if math.Abs(1-det) >= SqrtEps || resid >= SqrtEps {
		return fmt.Errorf("Validate: det=%g, |I-RRt|=%g: %w", det, resid, ErrNotRotation)
	}

	return nil
}

// Validate checks every matrix of the batch, reporting the first failure.
func (b Batch) Validate() error {
	for i := range b {
		if err := b[i].Validate(); err != nil {
			return fmt.Errorf("batch[%d]: %w", i, err)
		}
	}

	return nil
}

// Elementary returns the active rotation by angle (radians) about the
// coordinate axis 0 (x), 1 (y) or 2 (z).
func Elementary(axis int, angle float64) (Matrix, error) {
	s, c := math.Sincos(angle)
	switch axis {
	case 0:
		return Matrix{1, 0, 0, 0, c, -s, 0, s, c}, nil
	case 1:
		return Matrix{c, 0, s, 0, 1, 0, -s, 0, c}, nil
	case 2:
		return Matrix{c, -s, 0, s, c, 0, 0, 0, 1}, nil
	default:
		return Matrix{}, fmt.Errorf("Elementary(%d): %w", axis, ErrAxis)
	}
}

// MaxAbsDiff returns the largest element-wise |a-b|.
func MaxAbsDiff(a, b Matrix) float64 {
	var d float64
	for k := range a {
		d = math.Max(d, math.Abs(a[k]-b[k]))
	}

	return d
}
