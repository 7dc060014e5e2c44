// Package euler converts between Euler angles and rotation matrices for the
// twelve axis orders (six Tait–Bryan, six proper Euler) under either the
// extrinsic (fixed axes) or intrinsic (moving axes) convention.
//
// Angle extraction works for every order through one quaternion-based
// routine, so the conversions stay well conditioned away from gimbal lock
// and return a consistent split of the angles at it.
//
// Rotation bundles angles, order, convention and units into one value. Its
// matrix and exponential-map views are derived on demand, never cached.
package euler
