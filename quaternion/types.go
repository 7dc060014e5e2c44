package quaternion

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

var (
	// ErrShape is returned for input whose layout cannot be read as
	// quaternions, matrices or matched batches.
	ErrShape = errors.New("quaternion: input has the wrong shape")

	// ErrMult is returned for a multiplication sense other than Right or Left.
	ErrMult = errors.New("quaternion: mult must be Right or Left")
)

// Batch is an ordered collection of quaternions (the 4×n layout).
type Batch []quat.Number

// Stack is a collection of batches (the l×4×n layout).
type Stack []Batch

// Mult selects the sense of a quaternion product operator.
type Mult int

const (
	// Right builds the operator of right multiplication: M(h)·q = q*h.
	Right Mult = iota

	// Left builds the operator of left multiplication: M(q)·h = q*h.
	Left
)

// String returns "right" or "left".
func (m Mult) String() string {
	if m == Left {
		return "left"
	}

	return "right"
}

// ProductMatrix is a row-major 4×4 quaternion product operator.
type ProductMatrix [16]float64

// Apply returns M·q, reading q as the column (q0, q1, q2, q3).
func (m *ProductMatrix) Apply(q quat.Number) quat.Number {
	return quat.Number{
		Real: m[0]*q.Real + m[1]*q.Imag + m[2]*q.Jmag + m[3]*q.Kmag,
		Imag: m[4]*q.Real + m[5]*q.Imag + m[6]*q.Jmag + m[7]*q.Kmag,
		Jmag: m[8]*q.Real + m[9]*q.Imag + m[10]*q.Jmag + m[11]*q.Kmag,
		Kmag: m[12]*q.Real + m[13]*q.Imag + m[14]*q.Jmag + m[15]*q.Kmag,
	}
}

// Identity returns the identity rotation [1, 0, 0, 0].
func Identity() quat.Number {
	return quat.Number{Real: 1}
}

// FromArray reads a 4×n array (four rows of equal length n) into a Batch.
func FromArray(a [][]float64) (Batch, error) {
	if len(a) != 4 {
		return nil, fmt.Errorf("FromArray: leading dimension %d: %w", len(a), ErrShape)
	}
	n := len(a[0])
	for i := 1; i < 4; i++ {
		if len(a[i]) != n {
			return nil, fmt.Errorf("FromArray: ragged row %d: %w", i, ErrShape)
		}
	}
	out := make(Batch, n)
	for j := 0; j < n; j++ {
		out[j] = quat.Number{Real: a[0][j], Imag: a[1][j], Jmag: a[2][j], Kmag: a[3][j]}
	}

	return out, nil
}

// Array returns the 4×n array form of b.
func (b Batch) Array() [][]float64 {
	out := make([][]float64, 4)
	for i := range out {
		out[i] = make([]float64, len(b))
	}
	for j, q := range b {
		out[0][j], out[1][j], out[2][j], out[3][j] = q.Real, q.Imag, q.Jmag, q.Kmag
	}

	return out
}

// Clone returns an independent copy of b.
func (b Batch) Clone() Batch {
	out := make(Batch, len(b))
	copy(out, b)

	return out
}

// Flatten concatenates the batches of s, in order, into one Batch.
func (s Stack) Flatten() Batch {
	var total int
	for _, b := range s {
		total += len(b)
	}
	out := make(Batch, 0, total)
	for _, b := range s {
		out = append(out, b...)
	}

	return out
}

// Restack splits flat back into batches sized like s.
// Returns ErrShape when the total length differs.
func (s Stack) Restack(flat Batch) (Stack, error) {
	var total int
	for _, b := range s {
		total += len(b)
	}
	if total != len(flat) {
		return nil, fmt.Errorf("Restack: %d vs %d: %w", total, len(flat), ErrShape)
	}
	out := make(Stack, len(s))
	var off int
	for i, b := range s {
		out[i] = flat[off : off+len(b) : off+len(b)]
		off += len(b)
	}

	return out, nil
}
