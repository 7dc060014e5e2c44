// Package angles provides the small periodic-angle helpers every other
// orient package leans on.
//
// What is here:
//
//   - Units: the angular unit convention (radians by default, or degrees)
//     with its period and conversion factors.
//   - MapAngle: wrap angles into [-P/2, P/2) or into an explicit range of
//     length P, where P is the unit period.
//   - AngularDifference: the acute difference of two angles across the
//     branch cut, bounded by P/2.
//   - ArccosSafe: inverse cosine that absorbs round-off just outside
//     [-1, 1] and refuses anything larger.
//
// All helpers are pure; they allocate fresh output slices and never
// modify their inputs.
package angles
