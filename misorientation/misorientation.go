package misorientation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orient/angles"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/symmetry"
	"gonum.org/v1/gonum/num/quat"
)

var (
	// ErrSymmetryArity is returned when more than two symmetry groups are given.
	ErrSymmetryArity = errors.New("misorientation: symmetry argument must hold 1 or 2 groups")

	// ErrEmpty is returned when there is nothing to average.
	ErrEmpty = errors.New("misorientation: empty quaternion batch")
)

// Misorientation returns, for each q2[i], the smallest rotation angle
// (radians) to q1 and the quaternion realizing it.
//
// syms holds no group (no symmetry), the crystal group, or the crystal and
// sample groups in that order. Crystal symmetry acts on the right of q2 and
// sample symmetry on the left. Ties go to the first member of the class,
// crystal index outer and sample index inner.
//
// Steps:
//  1. Build right/left product matrices for the groups and for q1⁻¹.
//  2. For each target scan gs_j*q2*gc_k*q1⁻¹, sign-fixed.
//  3. angle = 2·arccos(max scalar part).
//
// Complexity: O(n·m·p).
func Misorientation(q1 quat.Number, q2 quaternion.Batch, syms ...quaternion.Batch) ([]float64, quaternion.Batch, error) {
	crys, samp, err := splitSymmetry(syms)
	if err != nil {
		return nil, nil, fmt.Errorf("Misorientation: %w", err)
	}

	right := quaternion.RightMatrices(crys)
	left := quaternion.LeftMatrices(samp)
	q1i := quaternion.RightMatrix(quaternion.Canonical(quat.Conj(q1)))

	ang := make([]float64, len(q2))
	mis := make(quaternion.Batch, len(q2))
	var c, qc quat.Number
	for i := range q2 {
		found := false
		for k := range right {
			qc = right[k].Apply(q2[i])
			for j := range left {
				c = quaternion.Canonical(q1i.Apply(left[j].Apply(qc)))
				if !found || c.Real > mis[i].Real {
					mis[i], found = c, true
				}
			}
		}
		if ang[i], err = angles.ArccosSafe(mis[i].Real); err != nil {
			return nil, nil, fmt.Errorf("Misorientation: target %d: %w", i, err)
		}
		ang[i] *= 2
	}

	return ang, mis, nil
}

// splitSymmetry expands the 0/1/2-group form to explicit crystal and sample
// groups, filling absent ones with the identity.
func splitSymmetry(syms []quaternion.Batch) (crys, samp quaternion.Batch, err error) {
	identity := quaternion.Batch{quaternion.Identity()}
	switch len(syms) {
	case 0:
		return identity, identity, nil
	case 1:
		crys, samp = syms[0], identity
	case 2:
		crys, samp = syms[0], syms[1]
	default:
		return nil, nil, fmt.Errorf("%d groups: %w", len(syms), ErrSymmetryArity)
	}
	if len(crys) == 0 || len(samp) == 0 {
		return nil, nil, symmetry.ErrEmptyGroup
	}

	return crys, samp, nil
}
