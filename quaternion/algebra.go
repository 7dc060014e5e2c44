package quaternion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// epsf is float64 machine epsilon; norms at or below it count as zero.
var epsf = math.Nextafter(1, 2) - 1

// Normalize scales q to unit norm. A zero quaternion is returned unchanged.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n <= epsf {
		return q
	}

	return quat.Scale(1/n, q)
}

// fixOne normalizes q and flips it so the scalar part is non-negative.
func fixOne(q quat.Number) quat.Number {
	q = Normalize(q)
	if q.Real < 0 {
		return quat.Scale(-1, q)
	}

	return q
}

// Canonical is Fix for a single quaternion.
func Canonical(q quat.Number) quat.Number {
	return fixOne(q)
}

// Fix returns the canonical form of every quaternion in q: unit norm and
// q0 ≥ 0. The input is not modified. Fix is idempotent.
// Complexity: O(n).
func Fix(q Batch) Batch {
	out := make(Batch, len(q))
	for i := range q {
		out[i] = fixOne(q[i])
	}

	return out
}

// FixStack applies Fix to the l×4×n layout, preserving its shape.
func FixStack(s Stack) Stack {
	out := make(Stack, len(s))
	for i := range s {
		out[i] = Fix(s[i])
	}

	return out
}

// Invert returns the canonical inverse of each unit quaternion: the vector
// part is negated (sign pattern [+,-,-,-] up to the overall sign) and the
// result is passed through Fix.
func Invert(q Batch) Batch {
	out := make(Batch, len(q))
	for i := range q {
		out[i] = fixOne(quat.Conj(q[i]))
	}

	return out
}

// Product returns the canonical Hamilton products q2[i]*q1[i], so that
// R(result) = R(q2)·R(q1): q1 is applied first. Either argument may hold a
// single quaternion, which is then paired with every element of the other.
// Returns ErrShape for other length mismatches.
// Complexity: O(n).
func Product(q1, q2 Batch) (Batch, error) {
	n, err := pairedLen(len(q1), len(q2))
	if err != nil {
		return nil, fmt.Errorf("Product: %w", err)
	}
	out := make(Batch, n)
	var a, b quat.Number
	for i := 0; i < n; i++ {
		a, b = pick(q1, i), pick(q2, i)
		out[i] = fixOne(quat.Mul(b, a))
	}

	return out, nil
}

// ProductMatrices builds, for each quaternion, the 4×4 operator of right or
// left multiplication:
//
//	ProductMatrices(h, Right)[i].Apply(q) == q * h[i]
//	ProductMatrices(q, Left)[i].Apply(h)  == q[i] * h
//
// Applying a symmetry group to a large batch then costs one 4×4 product per
// (orientation, group element) pair with no intermediate quaternion algebra.
func ProductMatrices(q Batch, mult Mult) ([]ProductMatrix, error) {
	switch mult {
	case Right:
		return RightMatrices(q), nil
	case Left:
		return LeftMatrices(q), nil
	default:
		return nil, fmt.Errorf("ProductMatrices(%d): %w", int(mult), ErrMult)
	}
}

// RightMatrices is ProductMatrices(h, Right).
func RightMatrices(h Batch) []ProductMatrix {
	out := make([]ProductMatrix, len(h))
	for i := range h {
		out[i] = RightMatrix(h[i])
	}

	return out
}

// LeftMatrices is ProductMatrices(q, Left).
func LeftMatrices(q Batch) []ProductMatrix {
	out := make([]ProductMatrix, len(q))
	for i := range q {
		out[i] = LeftMatrix(q[i])
	}

	return out
}

// RightMatrix is the operator q ↦ q*h.
func RightMatrix(h quat.Number) ProductMatrix {
	h0, h1, h2, h3 := h.Real, h.Imag, h.Jmag, h.Kmag

	return ProductMatrix{
		h0, -h1, -h2, -h3,
		h1, h0, h3, -h2,
		h2, -h3, h0, h1,
		h3, h2, -h1, h0,
	}
}

// LeftMatrix is the operator h ↦ q*h.
func LeftMatrix(q quat.Number) ProductMatrix {
	q0, q1, q2, q3 := q.Real, q.Imag, q.Jmag, q.Kmag

	return ProductMatrix{
		q0, -q1, -q2, -q3,
		q1, q0, -q3, q2,
		q2, q3, q0, -q1,
		q3, -q2, q1, q0,
	}
}

// RightMultiply returns the canonical products q[i]*g for every pair, laid
// out orientation-major: element i*len(g)+k holds q[i]*g[k].
func RightMultiply(q, g Batch) Batch {
	ops := RightMatrices(g)
	m := len(g)
	out := make(Batch, len(q)*m)
	for i := range q {
		for k := range ops {
			out[i*m+k] = fixOne(ops[k].Apply(q[i]))
		}
	}

	return out
}

// LeftMultiply returns the canonical products g*q[i] for every pair, laid
// out orientation-major: element i*len(g)+j holds g[j]*q[i].
func LeftMultiply(g, q Batch) Batch {
	ops := LeftMatrices(g)
	p := len(g)
	out := make(Batch, len(q)*p)
	for i := range q {
		for j := range ops {
			out[i*p+j] = fixOne(ops[j].Apply(q[i]))
		}
	}

	return out
}

// pairedLen resolves the broadcast length of two batches where a length of
// one pairs with anything.
func pairedLen(a, b int) (int, error) {
	switch {
	case a == b:
		return a, nil
	case a == 1:
		return b, nil
	case b == 1:
		return a, nil
	default:
		return 0, fmt.Errorf("lengths %d and %d: %w", a, b, ErrShape)
	}
}

// pick returns b[i], or b[0] for a broadcast single-element batch.
func pick(b Batch, i int) quat.Number {
	if len(b) == 1 {
		return b[0]
	}

	return b[i]
}
