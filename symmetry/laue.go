package symmetry

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/quaternion"
)

const (
	piby2  = math.Pi / 2
	piby3  = math.Pi / 3
	sq3by2 = 0.8660254037844386 // √3/2
)

// laueClass is one row of the group table: angle/axis pairs as
// {angle, x, y, z}; axes need not be normalized.
type laueClass struct {
	tag   string
	ltype LatticeType
	ops   [][4]float64
}

var laueClasses = []laueClass{
	{"ci", Triclinic, [][4]float64{
		{0, 1, 0, 0}, // identity
	}},
	{"c2h", Monoclinic, [][4]float64{
		{0, 1, 0, 0},
		{math.Pi, 0, 1, 0}, // twofold about 010 (x2)
	}},
	{"d2h", Orthorhombic, [][4]float64{
		{0, 1, 0, 0},
		{math.Pi, 1, 0, 0},
		{math.Pi, 0, 1, 0},
		{math.Pi, 0, 0, 1},
	}},
	{"c4h", Tetragonal, [][4]float64{
		{0, 1, 0, 0},
		{piby2, 0, 0, 1}, // fourfold about 001 (x3)
		{math.Pi, 0, 0, 1},
		{3 * piby2, 0, 0, 1},
	}},
	{"d4h", Tetragonal, [][4]float64{
		{0, 1, 0, 0},
		{piby2, 0, 0, 1},
		{math.Pi, 0, 0, 1},
		{3 * piby2, 0, 0, 1},
		{math.Pi, 1, 0, 0},  // twofold about 100 (x1)
		{math.Pi, 0, 1, 0},  // twofold about 010 (x2)
		{math.Pi, 1, 1, 0},  // twofold about 110
		{math.Pi, -1, 1, 0}, // twofold about -110
	}},
	{"c3i", Trigonal, [][4]float64{
		{0, 1, 0, 0},
		{2 * piby3, 0, 0, 1}, // threefold about 0001 (x3, c)
		{4 * piby3, 0, 0, 1},
	}},
	{"d3d", Trigonal, [][4]float64{
		{0, 1, 0, 0},
		{2 * piby3, 0, 0, 1},
		{4 * piby3, 0, 0, 1},
		{math.Pi, 1, 0, 0},          // twofold about 2-1-10 (x1, a1)
		{math.Pi, -0.5, sq3by2, 0},  // twofold about -12-10 (a2)
		{math.Pi, -0.5, -sq3by2, 0}, // twofold about -1-120 (a3)
	}},
	{"c6h", Hexagonal, [][4]float64{
		{0, 1, 0, 0},
		{piby3, 0, 0, 1}, // sixfold about 0001 (x3, c)
		{2 * piby3, 0, 0, 1},
		{math.Pi, 0, 0, 1},
		{4 * piby3, 0, 0, 1},
		{5 * piby3, 0, 0, 1},
	}},
	{"d6h", Hexagonal, [][4]float64{
		{0, 1, 0, 0},
		{piby3, 0, 0, 1},
		{2 * piby3, 0, 0, 1},
		{math.Pi, 0, 0, 1},
		{4 * piby3, 0, 0, 1},
		{5 * piby3, 0, 0, 1},
		{math.Pi, 1, 0, 0},          // twofold about 2-10 (x1, a1)
		{math.Pi, -0.5, sq3by2, 0},  // twofold about -120 (a2)
		{math.Pi, -0.5, -sq3by2, 0}, // twofold about -1-10 (a3)
		{math.Pi, sq3by2, 0.5, 0},   // twofold about 100
		{math.Pi, 0, 1, 0},          // twofold about -110 (x2)
		{math.Pi, -sq3by2, 0.5, 0},  // twofold about 0-10
	}},
	{"th", Cubic, [][4]float64{
		{0, 1, 0, 0},
		{math.Pi, 1, 0, 0},
		{math.Pi, 0, 1, 0},
		{math.Pi, 0, 0, 1},
		{2 * piby3, 1, 1, 1}, // threefold about 111
		{4 * piby3, 1, 1, 1},
		{2 * piby3, -1, 1, 1},
		{4 * piby3, -1, 1, 1},
		{2 * piby3, -1, -1, 1},
		{4 * piby3, -1, -1, 1},
		{2 * piby3, 1, -1, 1},
		{4 * piby3, 1, -1, 1},
	}},
	{"oh", Cubic, [][4]float64{
		{0, 1, 0, 0},
		{piby2, 1, 0, 0}, // fourfold about 100 (x1)
		{math.Pi, 1, 0, 0},
		{3 * piby2, 1, 0, 0},
		{piby2, 0, 1, 0}, // fourfold about 010 (x2)
		{math.Pi, 0, 1, 0},
		{3 * piby2, 0, 1, 0},
		{piby2, 0, 0, 1}, // fourfold about 001 (x3)
		{math.Pi, 0, 0, 1},
		{3 * piby2, 0, 0, 1},
		{2 * piby3, 1, 1, 1}, // threefold about 111
		{4 * piby3, 1, 1, 1},
		{2 * piby3, -1, 1, 1},
		{4 * piby3, -1, 1, 1},
		{2 * piby3, -1, -1, 1},
		{4 * piby3, -1, -1, 1},
		{2 * piby3, 1, -1, 1},
		{4 * piby3, 1, -1, 1},
		{math.Pi, 1, 1, 0}, // twofold about 110
		{math.Pi, -1, 1, 0},
		{math.Pi, 1, 0, 1},
		{math.Pi, 0, 1, 1},
		{math.Pi, -1, 0, 1},
		{math.Pi, 0, -1, 1},
	}},
}

// aliases maps alternative Schoenflies symbols to their table tag.
var aliases = map[string]string{
	"s2": "ci",
	"vh": "d2h",
	"s6": "c3i",
}

var (
	buildOnce sync.Once
	groups    map[string]quaternion.Batch
	ltypes    map[string]LatticeType
)

// build converts every table row to quaternions. Called once.
func build() {
	groups = make(map[string]quaternion.Batch, len(laueClasses))
	ltypes = make(map[string]LatticeType, len(laueClasses))
	for _, lc := range laueClasses {
		ang := make([]float64, len(lc.ops))
		axes := make([]r3.Vector, len(lc.ops))
		for i, op := range lc.ops {
			ang[i] = op[0]
			axes[i] = r3.Vector{X: op[1], Y: op[2], Z: op[3]}
		}
		// table rows are well formed; FromAngleAxis cannot fail here
		q, _ := quaternion.FromAngleAxis(ang, axes)
		groups[lc.tag] = q
		ltypes[lc.tag] = lc.ltype
	}
}

// canonicalTag lower-cases tag and resolves aliases.
func canonicalTag(tag string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	if a, ok := aliases[t]; ok {
		t = a
	}
	buildOnce.Do(build)
	if _, ok := groups[t]; !ok {
		return "", fmt.Errorf("%q: %w", tag, ErrUnknownGroup)
	}

	return t, nil
}

// lookup returns the shared, read-only group for tag.
func lookup(tag string) (quaternion.Batch, error) {
	t, err := canonicalTag(tag)
	if err != nil {
		return nil, err
	}

	return groups[t], nil
}

// QuatOfLaueGroup returns the proper rotations of the Laue group named by
// tag as canonical unit quaternions. The result is a fresh copy.
func QuatOfLaueGroup(tag string) (quaternion.Batch, error) {
	g, err := lookup(tag)
	if err != nil {
		return nil, fmt.Errorf("QuatOfLaueGroup: %w", err)
	}

	return g.Clone(), nil
}

// LatticeTypeOfLaueGroup returns the crystal family of tag.
func LatticeTypeOfLaueGroup(tag string) (LatticeType, error) {
	t, err := canonicalTag(tag)
	if err != nil {
		return "", fmt.Errorf("LatticeTypeOfLaueGroup: %w", err)
	}

	return ltypes[t], nil
}

// Order returns the number of rotations in the group named by tag.
func Order(tag string) (int, error) {
	g, err := lookup(tag)
	if err != nil {
		return 0, fmt.Errorf("Order: %w", err)
	}

	return len(g), nil
}

// Tags lists every accepted tag, aliases included, in table order.
func Tags() []string {
	out := make([]string, 0, len(laueClasses)+len(aliases))
	for _, lc := range laueClasses {
		out = append(out, lc.tag)
		for alias, target := range aliases {
			if target == lc.tag {
				out = append(out, alias)
			}
		}
	}

	return out
}
