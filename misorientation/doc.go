// Package misorientation measures the smallest rotation between orientations
// under crystal (and optionally sample) symmetry, and averages clusters of
// orientations.
//
// Misorientation compares one reference against a batch of targets. For
// every target it walks the full class gs*q2*gc, composes each member with
// the inverse of the reference, and keeps the member with the largest scalar
// part. The class is never materialized; memory stays O(n).
//
// AverageCluster is the fast arithmetic mean in a common frame.
// Average minimizes the sum of squared misorientation angles with a
// derivative-free simplex search (gonum optimize.NelderMead).
package misorientation
