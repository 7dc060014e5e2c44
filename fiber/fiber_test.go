package fiber_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/orient/fiber"
	"github.com/katalvlaran/orient/quaternion"
	"github.com/katalvlaran/orient/symmetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randomDirs(seed int64, n int) []r3.Vector {
	rng := rand.New(rand.NewSource(seed))
	out := make([]r3.Vector, n)
	for i := range out {
		out[i] = r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
	}

	return out
}

// TestDiscreteFiber_Z: c = s = z with four samples gives the quarter turns
// about z.
func TestDiscreteFiber_Z(t *testing.T) {
	opts := fiber.DefaultOptions()
	opts.NDiv = 4
	z := r3.Vector{Z: 1}
	fib, err := fiber.DiscreteFiber([]r3.Vector{z}, []r3.Vector{z}, opts)
	require.NoError(t, err)
	require.Len(t, fib, 1)
	require.Len(t, fib[0], 1)
	require.Len(t, fib[0][0], 4)

	ang, axes := quaternion.AngleAxisOfRotMat(quaternion.RotMat(fib[0][0]))
	got := append([]float64(nil), ang...)
	sort.Float64s(got)
	assert.InDeltaSlice(t, []float64{0, math.Pi / 2, math.Pi / 2, math.Pi}, got, 1e-12)
	for i := range ang {
		if ang[i] > 1e-9 {
			assert.InDelta(t, 1, math.Abs(axes[i].Z), 1e-12)
		}
	}
}

// TestDiscreteFiber_MapsCToS: every member rotates unit(B·c) onto unit(s).
func TestDiscreteFiber_MapsCToS(t *testing.T) {
	c := randomDirs(1, 3)
	s := append(randomDirs(2, 3), c[0].Mul(-2)) // antiparallel to c[0]
	b := mat.NewDense(3, 3, []float64{
		1, 0.5, 0,
		0, 1.2, 0,
		0, 0, 0.8,
	})
	opts := fiber.DefaultOptions()
	opts.NDiv = 36
	opts.B = b

	fib, err := fiber.DiscreteFiber(c, s, opts)
	require.NoError(t, err)
	require.Len(t, fib, len(c))
	for i := range c {
		var bc mat.VecDense
		bc.MulVec(b, mat.NewVecDense(3, []float64{c[i].X, c[i].Y, c[i].Z}))
		cu := r3.Vector{X: bc.AtVec(0), Y: bc.AtVec(1), Z: bc.AtVec(2)}.Normalize()
		require.Len(t, fib[i], len(s))
		for j := range s {
			su := s[j].Normalize()
			for _, r := range quaternion.RotMat(fib[i][j]) {
				assert.InDelta(t, 0, r.Apply(cu).Sub(su).Norm(), 1e-12)
			}
		}
	}
}

func TestDiscreteFiber_Antiparallel(t *testing.T) {
	opts := fiber.DefaultOptions()
	opts.NDiv = 8
	c := r3.Vector{X: 1, Y: 1}
	fib, err := fiber.DiscreteFiber([]r3.Vector{c}, []r3.Vector{c.Mul(-1)}, opts)
	require.NoError(t, err)
	cu := c.Normalize()
	for _, q := range fib[0][0] {
		assert.GreaterOrEqual(t, q.Real, 0.0)
		r := quaternion.RotMat(quaternion.Batch{q})[0]
		assert.InDelta(t, 0, r.Apply(cu).Add(cu).Norm(), 1e-12)
	}
}

// TestDiscreteFiber_Reduced checks the symmetry-reduced fiber agrees with a
// separate reduction of the raw fiber, and Invert gives inverses.
func TestDiscreteFiber_Reduced(t *testing.T) {
	c := []r3.Vector{{X: 1, Y: 1, Z: 1}}
	s := []r3.Vector{{Z: 1}, {X: 1}}
	raw, err := fiber.DiscreteFiber(c, s, fiber.Options{NDiv: 12})
	require.NoError(t, err)

	red, err := fiber.DiscreteFiber(c, s, fiber.Options{NDiv: 12, CSym: symmetry.Tag("oh")})
	require.NoError(t, err)
	want, err := symmetry.ToFundamentalRegionStack(raw[0], symmetry.Tag("oh"))
	require.NoError(t, err)
	assert.Equal(t, want, red[0])

	both, err := fiber.DiscreteFiber(c, s, fiber.Options{NDiv: 12, CSym: symmetry.Tag("oh"), SSym: symmetry.Tag("d2h")})
	require.NoError(t, err)
	for j := range both[0] {
		for k := range both[0][j] {
			assert.GreaterOrEqual(t, both[0][j][k].Real, red[0][j][k].Real-1e-12)
		}
	}

	inv, err := fiber.DiscreteFiber(c, s, fiber.Options{NDiv: 12, Invert: true})
	require.NoError(t, err)
	for j := range inv[0] {
		for k := range inv[0][j] {
			p, err := quaternion.Product(quaternion.Batch{raw[0][j][k]}, quaternion.Batch{inv[0][j][k]})
			require.NoError(t, err)
			assert.InDelta(t, 1, p[0].Real, 1e-12)
		}
	}
}

func TestDiscreteFiber_Errors(t *testing.T) {
	z := []r3.Vector{{Z: 1}}
	_, err := fiber.DiscreteFiber(nil, z, fiber.DefaultOptions())
	assert.ErrorIs(t, err, fiber.ErrShape)
	_, err = fiber.DiscreteFiber(z, z, fiber.Options{})
	assert.ErrorIs(t, err, fiber.ErrBadOption)
	_, err = fiber.DiscreteFiber(z, z, fiber.Options{NDiv: 4, SSym: symmetry.Tag("d2h")})
	assert.ErrorIs(t, err, fiber.ErrBadOption)
	_, err = fiber.DiscreteFiber([]r3.Vector{{}}, z, fiber.DefaultOptions())
	assert.ErrorIs(t, err, fiber.ErrZeroVector)
	_, err = fiber.DiscreteFiber(z, z, fiber.Options{NDiv: 4, B: mat.NewDense(2, 2, nil)})
	assert.ErrorIs(t, err, fiber.ErrShape)
	_, err = fiber.DiscreteFiber(z, z, fiber.Options{NDiv: 4, CSym: symmetry.Tag("nope")})
	assert.ErrorIs(t, err, symmetry.ErrUnknownGroup)
}

func TestDistanceToFiber(t *testing.T) {
	oh, err := symmetry.QuatOfLaueGroup("oh")
	require.NoError(t, err)
	ci, err := symmetry.QuatOfLaueGroup("ci")
	require.NoError(t, err)
	c := r3.Vector{X: 1, Y: 1, Z: 0}
	s := r3.Vector{X: 0.3, Y: -0.2, Z: 1}

	fib, err := fiber.DiscreteFiber([]r3.Vector{c}, []r3.Vector{s}, fiber.Options{NDiv: 24})
	require.NoError(t, err)
	for _, g := range []quaternion.Batch{ci, oh} {
		d, err := fiber.DistanceToFiber(c, s, fib[0][0], g, fiber.DistanceOptions{})
		require.NoError(t, err)
		require.Len(t, d, 24)
		for _, x := range d {
			assert.InDelta(t, 0, x, 1e-6)
		}
	}

	// symmetry can only shorten the distance
	q := make(quaternion.Batch, 0, 50)
	for _, v := range randomDirs(3, 50) {
		q = append(q, quaternion.FromExpMap([]r3.Vector{v})[0])
	}
	plain, err := fiber.DistanceToFiber(c, s, q, ci, fiber.DistanceOptions{})
	require.NoError(t, err)
	sym, err := fiber.DistanceToFiber(c, s, q, oh, fiber.DistanceOptions{})
	require.NoError(t, err)
	centro, err := fiber.DistanceToFiber(c, s, q, ci, fiber.DistanceOptions{Centrosymmetry: true})
	require.NoError(t, err)
	for n := range q {
		assert.GreaterOrEqual(t, plain[n], 0.0)
		assert.LessOrEqual(t, plain[n], math.Pi+1e-12)
		assert.LessOrEqual(t, sym[n], plain[n]+1e-12)
		assert.LessOrEqual(t, centro[n], math.Pi/2+1e-12)
		assert.InDelta(t, math.Min(plain[n], math.Pi-plain[n]), centro[n], 1e-9)
	}
}

func TestDistanceToFiber_BMatrix(t *testing.T) {
	ci, err := symmetry.QuatOfLaueGroup("ci")
	require.NoError(t, err)
	// B swaps x and z, so c = x behaves as z
	opts, err := fiber.DistanceOptionsFromMap(map[string]any{
		"bmatrix": [3][3]float64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}},
	})
	require.NoError(t, err)
	d, err := fiber.DistanceToFiber(r3.Vector{X: 1}, r3.Vector{Z: 1}, quaternion.Batch{quaternion.Identity()}, ci, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0, d[0], 1e-7)
}

func TestDistanceOptionsFromMap(t *testing.T) {
	o, err := fiber.DistanceOptionsFromMap(map[string]any{"centrosymmetry": true, "bmatrix": mat.NewDense(3, 3, nil)})
	require.NoError(t, err)
	assert.True(t, o.Centrosymmetry)
	assert.NotNil(t, o.BMatrix)

	_, err = fiber.DistanceOptionsFromMap(map[string]any{"bogus": 1})
	assert.ErrorIs(t, err, fiber.ErrUnknownOption)
	_, err = fiber.DistanceOptionsFromMap(map[string]any{"centrosymmetry": "yes"})
	assert.ErrorIs(t, err, fiber.ErrBadOption)
	_, err = fiber.DistanceOptionsFromMap(map[string]any{"bmatrix": 3})
	assert.ErrorIs(t, err, fiber.ErrBadOption)

	o, err = fiber.DistanceOptionsFromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.DistanceOptions{}, o)
}

func TestNullSpace(t *testing.T) {
	for _, v := range append(randomDirs(4, 10), r3.Vector{Z: 1}) {
		ns, err := fiber.NullSpace(v)
		require.NoError(t, err)
		require.Len(t, ns, 2)
		for _, n := range ns {
			assert.InDelta(t, 1, n.Norm(), 1e-12)
			assert.InDelta(t, 0, n.Dot(v), 1e-12)
		}
		assert.InDelta(t, 0, ns[0].Dot(ns[1]), 1e-12)
	}
	ns, err := fiber.NullSpace(r3.Vector{})
	require.NoError(t, err)
	assert.Len(t, ns, 3)
}
