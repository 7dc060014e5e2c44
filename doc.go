// Package orient is an in-memory toolkit for crystallographic orientations:
// converting between rotation parameterizations, reducing them by crystal
// and sample symmetry, and measuring how far apart they are.
//
// 🚀 What is orient?
//
//	A pure library (no I/O, no global mutable state) that brings together:
//		• Angles: period wrapping, acute differences, a forgiving arccos
//		• Quaternions: canonical form, products, 4×4 product operators
//		• Conversions: angle/axis, exponential map, rotation matrices
//		• Euler angles: all 12 axis orders, intrinsic and extrinsic
//		• Symmetry: the eleven Laue groups, fundamental-region reduction
//		• Misorientation: minimum angles, cluster and least-squares means
//		• Fibers: discrete c∥s fibers and distance to a fiber
//
// ✨ Conventions
//
//   - Unit quaternions are gonum quat.Number values, scalar part in Real
//   - Canonical quaternions have a non-negative scalar part
//   - Vectors are github.com/golang/geo/r3 values
//   - Angles are radians unless an angles.Units says otherwise
//
// Packages:
//
//	angles/         — MapAngle, AngularDifference, ArccosSafe, units
//	rotmat/         — 3×3 rotation matrices, validation, elementary rotations
//	quaternion/     — Batch/Stack types, algebra, conversions, RotMat kernel
//	euler/          — Euler angle ↔ matrix for every order; Rotation value type
//	symmetry/       — Laue tables, ApplySym, ToFundamentalRegion
//	misorientation/ — Misorientation, AverageCluster, Average
//	fiber/          — DiscreteFiber, DistanceToFiber, NullSpace
//	cmd/orient/     — command-line front-end
//
// Quick example, a 100° turn about z seen through cubic symmetry:
//
//	q, _ := quaternion.FromAngleAxis([]float64{100 * math.Pi / 180}, []r3.Vector{{Z: 1}})
//	oh, _ := symmetry.QuatOfLaueGroup("oh")
//	ang, _, _ := misorientation.Misorientation(quaternion.Identity(), q, oh)
//	// ang[0] ≈ 10°
//
//	go get github.com/katalvlaran/orient
package orient
