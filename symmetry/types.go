package symmetry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orient/quaternion"
)

var (
	// ErrUnknownGroup is returned for a tag that names no Laue group.
	ErrUnknownGroup = errors.New("symmetry: unrecognized symmetry group")

	// ErrEmptyGroup is returned when a symmetry source resolves to no
	// quaternions (including the zero Source).
	ErrEmptyGroup = errors.New("symmetry: empty symmetry group")
)

// LatticeType names the crystal family of a Laue group.
type LatticeType string

// Lattice families.
const (
	Triclinic    LatticeType = "triclinic"
	Monoclinic   LatticeType = "monoclinic"
	Orthorhombic LatticeType = "orthorhombic"
	Tetragonal   LatticeType = "tetragonal"
	Trigonal     LatticeType = "trigonal"
	Hexagonal    LatticeType = "hexagonal"
	Cubic        LatticeType = "cubic"
)

type sourceKind int

const (
	kindNone sourceKind = iota
	kindTag
	kindGroup
)

// Source names a symmetry group either by Laue tag or as an explicit
// quaternion batch. Resolve turns it into the concrete group.
type Source struct {
	kind  sourceKind
	tag   string
	group quaternion.Batch
}

// Tag selects a Laue group by Schoenflies tag.
func Tag(name string) Source {
	return Source{kind: kindTag, tag: name}
}

// Group wraps a pre-built group. The batch is used as given and must not be
// modified while the Source is in use.
func Group(q quaternion.Batch) Source {
	return Source{kind: kindGroup, group: q}
}

// IsZero reports whether s names no group at all.
func (s Source) IsZero() bool {
	return s.kind == kindNone
}

// String returns the tag, or a size summary for explicit groups.
func (s Source) String() string {
	switch s.kind {
	case kindTag:
		return s.tag
	case kindGroup:
		return fmt.Sprintf("group(%d)", len(s.group))
	default:
		return "none"
	}
}

// Resolve returns the quaternions of the group. Tag groups come from the
// shared table and must be treated as read-only.
func (s Source) Resolve() (quaternion.Batch, error) {
	switch s.kind {
	case kindTag:
		return lookup(s.tag)
	case kindGroup:
		if len(s.group) == 0 {
			return nil, ErrEmptyGroup
		}

		return s.group, nil
	default:
		return nil, ErrEmptyGroup
	}
}
