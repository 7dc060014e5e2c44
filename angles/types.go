package angles

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownUnits is returned for a unit string other than "radians" or "degrees".
	ErrUnknownUnits = errors.New("angles: unknown angular units")

	// ErrUnknownOption is returned when a keyword-style option map carries
	// a name that is not recognized.
	ErrUnknownOption = errors.New("angles: unknown option")

	// ErrBadOption is returned when a recognized option carries a value of the wrong type.
	ErrBadOption = errors.New("angles: invalid option value")

	// ErrIncompleteRange is returned by MapAngle when the requested range
	// does not span exactly one period.
	ErrIncompleteRange = errors.New("angles: range is incomplete")

	// ErrArccosDomain is returned by ArccosSafe when the argument exceeds
	// unit magnitude by more than the round-off slack. It signals corrupted
	// upstream data and must not be retried.
	ErrArccosDomain = errors.New("angles: arccos argument out of domain")

	// ErrLengthMismatch is returned when paired angle lists differ in length.
	ErrLengthMismatch = errors.New("angles: length mismatch")
)

// Units is an angular unit convention.
type Units int

const (
	// Radians is the default convention throughout orient.
	Radians Units = iota

	// Degrees measures angles in degrees (period 360).
	Degrees
)

// Conversion factors.
const (
	RadToDeg = 180.0 / math.Pi
	DegToRad = math.Pi / 180.0
)

// ParseUnits maps "radians" or "degrees" (case-insensitive) to a Units value.
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "radians":
		return Radians, nil
	case "degrees":
		return Degrees, nil
	default:
		return Radians, fmt.Errorf("ParseUnits(%q): %w", s, ErrUnknownUnits)
	}
}

// String returns the canonical unit name.
func (u Units) String() string {
	if u == Degrees {
		return "degrees"
	}

	return "radians"
}

// Period returns the full-turn period: 2π for radians, 360 for degrees.
func (u Units) Period() float64 {
	if u == Degrees {
		return 360.0
	}

	return 2 * math.Pi
}

// ToRadians converts a single angle expressed in u to radians.
func (u Units) ToRadians(a float64) float64 {
	if u == Degrees {
		return a * DegToRad
	}

	return a
}

// FromRadians converts a single angle in radians to u.
func (u Units) FromRadians(a float64) float64 {
	if u == Degrees {
		return a * RadToDeg
	}

	return a
}

// Convert rescales vals from one unit convention to another.
// The input is not modified; a fresh slice is returned.
func Convert(vals []float64, from, to Units) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = to.FromRadians(from.ToRadians(v))
	}

	return out
}
