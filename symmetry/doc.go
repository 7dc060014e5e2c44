// Package symmetry provides the proper-rotation groups of the eleven Laue
// classes and the reductions built on them.
//
// Groups are selected by case-insensitive Schoenflies tag:
//
//	Class          Tag          Order
//	------------------------------------
//	Triclinic      ci (s2)      1
//	Monoclinic     c2h          2
//	Orthorhombic   d2h (vh)     4
//	Tetragonal     c4h          4
//	               d4h          8
//	Trigonal       c3i (s6)     3
//	               d3d          6
//	Hexagonal      c6h          6
//	               d6h          12
//	Cubic          th           12
//	               oh           24
//
// The axis conventions follow Nye, "Physical Properties of Crystals",
// Appendix B. Groups are built once, on first use, and shared read-only;
// QuatOfLaueGroup hands out copies.
//
// ToFundamentalRegion maps each orientation to the member of its symmetry
// class with the largest scalar part. Crystal symmetry acts on the right
// (q*gc); optional sample symmetry acts on the left (gs*q*gc).
package symmetry
