// Package quaternion implements batched unit-quaternion algebra for
// crystallographic orientations.
//
// Conventions:
//
//   - A quaternion is a gonum quat.Number with Real = q0 (scalar part) and
//     Imag, Jmag, Kmag = q1, q2, q3.
//   - A Batch is the 4×n column-major layout: one quaternion per element.
//   - A Stack is the l×4×n layout: l batches of n quaternions each.
//   - Canonical form: unit norm with q0 ≥ 0. Since q and -q denote the
//     same rotation, Fix selects the q0 ≥ 0 representative.
//   - Rotations are active; RotMat(q)·v rotates v by q.
//   - Product(q1, q2) composes right-to-left: R(result) = R(q2)·R(q1).
//
// ProductMatrix turns a quaternion into the 4×4 operator of left or right
// multiplication, so a whole symmetry group can be applied to a batch with
// one contraction per group element.
//
// RotMat is the hot kernel: a closed-form polynomial in the quaternion
// components, branch-free and allocation-free per element (see RotMatInto).
package quaternion
