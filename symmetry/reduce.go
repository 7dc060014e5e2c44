package symmetry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/rotmat"
	"gonum.org/v1/gonum/num/quat"
)

// ApplyOptions configures ApplySym.
type ApplyOptions struct {
	// Centrosymmetric appends the negated copy of every rotated vector.
	Centrosymmetric bool
	// CullPM also treats antiparallel vectors as duplicates.
	CullPM bool
	// Tol is the L1 distance below which two vectors are duplicates.
	Tol float64
}

// DefaultApplyOptions returns the settings ApplySym uses when none are given:
// no centrosymmetry, no ± culling, Tol = √ε.
func DefaultApplyOptions() ApplyOptions {
	return ApplyOptions{Tol: rotmat.SqrtEps}
}

// ApplySym rotates vec by every operation of qsym and returns the distinct
// results in first-seen order. A non-positive Tol falls back to √ε.
// Complexity: O(m²) for a group of order m.
func ApplySym(vec r3.Vector, qsym quaternion.Batch, opts ApplyOptions) ([]r3.Vector, error) {
	if len(qsym) == 0 {
		return nil, fmt.Errorf("ApplySym: %w", ErrEmptyGroup)
	}
	if opts.Tol <= 0 {
		opts.Tol = rotmat.SqrtEps
	}
	rs := quaternion.RotMat(qsym)
	all := make([]r3.Vector, 0, 2*len(rs))
	for i := range rs {
		all = append(all, rs[i].Apply(vec))
	}
	if opts.Centrosymmetric {
		for i := range rs {
			all = append(all, all[i].Mul(-1))
		}
	}
	_, uid := FindDuplicateVectors(all, opts.Tol, opts.CullPM)
	out := make([]r3.Vector, len(uid))
	for i, u := range uid {
		out[i] = all[u]
	}

	return out, nil
}

// FindDuplicateVectors groups vectors whose component-wise L1 distance is at
// most tol. With equivPM, v and -v are also considered equal.
//
// eqv lists every group with more than one member (indices ascending, first
// member is the representative); uid lists one representative per group in
// ascending index order.
// Complexity: O(n²).
func FindDuplicateVectors(vecs []r3.Vector, tol float64, equivPM bool) (eqv [][]int, uid []int) {
	taken := make([]bool, len(vecs))
	for i := range vecs {
		if taken[i] {
			continue
		}
		taken[i] = true
		uid = append(uid, i)
		group := []int{i}
		for j := i + 1; j < len(vecs); j++ {
			if taken[j] {
				continue
			}
			if l1(vecs[i].Sub(vecs[j])) <= tol || (equivPM && l1(vecs[i].Add(vecs[j])) <= tol) {
				taken[j] = true
				group = append(group, j)
			}
		}
		if len(group) > 1 {
			eqv = append(eqv, group)
		}
	}

	return eqv, uid
}

func l1(v r3.Vector) float64 {
	return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z)
}

// Option tunes ToFundamentalRegion.
type Option func(*reduceOptions)

type reduceOptions struct {
	sample Source
}

// WithSampleSymmetry also reduces by the sample group, applied on the left.
func WithSampleSymmetry(s Source) Option {
	return func(o *reduceOptions) { o.sample = s }
}

// ToFundamentalRegion replaces each orientation by the canonical member of
// its symmetry class: the sign-fixed product q*gc (or gs*q*gc with
// WithSampleSymmetry) with the largest scalar part. Ties go to the first
// member in class order, crystal index outer and sample index inner.
//
// Steps:
//  1. Resolve the groups and build their product matrices once.
//  2. Walk each orientation's class without materializing it.
//  3. Keep the running maximum of the scalar part.
//
// Complexity: O(n·m·p) time, O(n) extra memory.
func ToFundamentalRegion(q quaternion.Batch, crys Source, opts ...Option) (quaternion.Batch, error) {
	var ro reduceOptions
	for _, o := range opts {
		o(&ro)
	}
	gc, err := crys.Resolve()
	if err != nil {
		return nil, fmt.Errorf("ToFundamentalRegion: crystal symmetry %s: %w", crys, err)
	}
	right := quaternion.RightMatrices(gc)
	var left []quaternion.ProductMatrix
	if !ro.sample.IsZero() {
		gs, err := ro.sample.Resolve()
		if err != nil {
			return nil, fmt.Errorf("ToFundamentalRegion: sample symmetry %s: %w", ro.sample, err)
		}
		left = quaternion.LeftMatrices(gs)
	}

	out := make(quaternion.Batch, len(q))
	for i := range q {
		out[i] = reduceOne(q[i], right, left)
	}

	return out, nil
}

// ToFundamentalRegionStack is ToFundamentalRegion over the l×4×n layout.
func ToFundamentalRegionStack(s quaternion.Stack, crys Source, opts ...Option) (quaternion.Stack, error) {
	flat, err := ToFundamentalRegion(s.Flatten(), crys, opts...)
	if err != nil {
		return nil, err
	}

	return s.Restack(flat)
}

// reduceOne scans the class of q. left may be nil (crystal symmetry only).
func reduceOne(q quat.Number, right, left []quaternion.ProductMatrix) quat.Number {
	var (
		best  quat.Number
		found bool
		c     quat.Number
	)
	for k := range right {
		qc := right[k].Apply(q)
		if left == nil {
			c = quaternion.Canonical(qc)
			if !found || c.Real > best.Real {
				best, found = c, true
			}
			continue
		}
		for j := range left {
			c = quaternion.Canonical(left[j].Apply(qc))
			if !found || c.Real > best.Real {
				best, found = c, true
			}
		}
	}

	return best
}
