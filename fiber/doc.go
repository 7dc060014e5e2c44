// Package fiber generates and measures orientation fibers: the one-parameter
// families of orientations that carry a crystal direction c onto a sample
// direction s.
//
// A fiber member is a half turn about the bisector of c and s composed with
// a rotation about c. DiscreteFiber samples that rotation at ndiv evenly
// spaced angles; DistanceToFiber is the angle between s and the nearest
// symmetry-equivalent copy of c after rotating it by an orientation.
//
// Crystal directions may be given in lattice coordinates together with a
// B matrix (any 3×3 gonum mat.Matrix) that takes them to the crystal frame.
package fiber
