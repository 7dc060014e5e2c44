// Package rotmat holds the 3×3 rotation-matrix type shared by the orient
// packages, together with the few operations the conversions need:
// products, transposition, application to vectors, elementary axis
// rotations and the orthogonality check applied to user-supplied matrices.
//
// A Matrix is row-major and value-typed; a Batch is the n×3×3 layout.
// Interop with gonum is provided through Dense and FromDense.
package rotmat
