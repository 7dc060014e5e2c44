package angles_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/orient/angles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestParseUnits verifies case-insensitive parsing and rejection of unknown names.
func TestParseUnits(t *testing.T) {
	u, err := angles.ParseUnits("Degrees")
	require.NoError(t, err)
	assert.Equal(t, angles.Degrees, u)

	u, err = angles.ParseUnits("RADIANS")
	require.NoError(t, err)
	assert.Equal(t, angles.Radians, u)

	_, err = angles.ParseUnits("gradians")
	assert.ErrorIs(t, err, angles.ErrUnknownUnits)
}

// TestUnits_Period checks both periods and the conversion helpers.
func TestUnits_Period(t *testing.T) {
	assert.InDelta(t, 2*math.Pi, angles.Radians.Period(), tol)
	assert.InDelta(t, 360.0, angles.Degrees.Period(), tol)

	out := angles.Convert([]float64{180, 90}, angles.Degrees, angles.Radians)
	assert.InDelta(t, math.Pi, out[0], tol)
	assert.InDelta(t, math.Pi/2, out[1], tol)
	assert.Equal(t, "degrees", angles.Degrees.String())
}

// TestMapAngle_Default wraps into [-P/2, P/2).
func TestMapAngle_Default(t *testing.T) {
	out, err := angles.MapAngle([]float64{3 * math.Pi / 2, -3 * math.Pi / 2, 0, 5 * math.Pi / 2})
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/2, out[0], tol)
	assert.InDelta(t, math.Pi/2, out[1], tol)
	assert.InDelta(t, 0, out[2], tol)
	assert.InDelta(t, math.Pi/2, out[3], 1e-9)

	out, err = angles.MapAngle([]float64{270, 725}, angles.WithUnits(angles.Degrees))
	require.NoError(t, err)
	assert.InDelta(t, -90, out[0], tol)
	assert.InDelta(t, 5, out[1], tol)
}

// TestMapAngle_Range maps into an explicit range and rejects incomplete ranges.
func TestMapAngle_Range(t *testing.T) {
	out, err := angles.MapAngle([]float64{-90, 370, 720}, angles.WithUnits(angles.Degrees), angles.WithRange(0, 360))
	require.NoError(t, err)
	assert.InDelta(t, 270, out[0], tol)
	assert.InDelta(t, 10, out[1], tol)
	assert.InDelta(t, 0, out[2], tol)

	_, err = angles.MapAngle([]float64{1}, angles.WithRange(0, math.Pi))
	assert.ErrorIs(t, err, angles.ErrIncompleteRange)
}

// TestMapAngleOptions covers the keyword form, including unknown names.
func TestMapAngleOptions(t *testing.T) {
	opts, err := angles.MapAngleOptions(map[string]any{"units": "degrees", "range": []float64{360, 0}})
	require.NoError(t, err)
	out, err := angles.MapAngle([]float64{-10}, opts...)
	require.NoError(t, err)
	assert.InDelta(t, 350, out[0], tol)

	_, err = angles.MapAngleOptions(map[string]any{"unit": "degrees"})
	assert.ErrorIs(t, err, angles.ErrUnknownOption)

	_, err = angles.MapAngleOptions(map[string]any{"units": 3.0})
	assert.ErrorIs(t, err, angles.ErrBadOption)

	_, err = angles.MapAngleOptions(map[string]any{"units": "turns"})
	assert.ErrorIs(t, err, angles.ErrUnknownUnits)
}

// TestAngularDifference checks zero on equal input, symmetry and the P/2 bound.
func TestAngularDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 200
	a := make([]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = (rng.Float64() - 0.5) * 2 * math.Pi
		b[i] = (rng.Float64() - 0.5) * 2 * math.Pi
	}

	same, err := angles.AngularDifference(a, a, angles.Radians)
	require.NoError(t, err)
	for _, d := range same {
		assert.Equal(t, 0.0, d)
	}

	ab, err := angles.AngularDifference(a, b, angles.Radians)
	require.NoError(t, err)
	ba, err := angles.AngularDifference(b, a, angles.Radians)
	require.NoError(t, err)
	for i := range ab {
		assert.InDelta(t, ab[i], ba[i], tol)
		assert.LessOrEqual(t, ab[i], math.Pi+tol)
		assert.GreaterOrEqual(t, ab[i], 0.0)
	}

	d, err := angles.AngularDifference([]float64{350}, []float64{10}, angles.Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 20, d[0], tol)

	_, err = angles.AngularDifference([]float64{1}, nil, angles.Radians)
	assert.ErrorIs(t, err, angles.ErrLengthMismatch)
}

// TestArccosSafe clamps round-off and rejects real corruption.
func TestArccosSafe(t *testing.T) {
	v, err := angles.ArccosSafe(1.000001)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = angles.ArccosSafe(-1.000009)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v, tol)

	v, err = angles.ArccosSafe(0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/3, v, tol)

	_, err = angles.ArccosSafe(1.0001)
	assert.ErrorIs(t, err, angles.ErrArccosDomain)

	_, err = angles.ArccosSafeSlice([]float64{0, 1, -1.1})
	assert.ErrorIs(t, err, angles.ErrArccosDomain)

	vs, err := angles.ArccosSafeSlice([]float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, vs[0], tol)
	assert.Equal(t, 0.0, vs[1])
}
