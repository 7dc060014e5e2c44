package angles

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"
)

// arccosSlack is the largest |x| ArccosSafe accepts; anything between 1 and
// arccosSlack is treated as round-off and clamped.
const arccosSlack = 1.00001

// rangeTol is the relative tolerance used when checking that a MapAngle
// range spans exactly one period.
const rangeTol = 1e-12

// Option configures MapAngle.
type Option func(*mapOptions)

type mapOptions struct {
	units    Units
	hasRange bool
	lo, hi   float64
}

// WithUnits selects the unit convention of the angles (default Radians).
func WithUnits(u Units) Option {
	return func(o *mapOptions) { o.units = u }
}

// WithRange maps angles into [lo, hi] instead of the default [-P/2, P/2).
// The bounds may be given in either order; |hi-lo| must equal the period.
func WithRange(lo, hi float64) Option {
	return func(o *mapOptions) {
		o.hasRange = true
		o.lo, o.hi = math.Min(lo, hi), math.Max(lo, hi)
	}
}

// MapAngleOptions converts a keyword-style map into MapAngle options.
// Recognized names:
//   - "units": string ("radians"/"degrees") or Units.
//   - "range": [2]float64 or []float64 of length 2.
//
// Any other name fails with ErrUnknownOption.
func MapAngleOptions(kw map[string]any) ([]Option, error) {
	opts := make([]Option, 0, len(kw))
	for name, val := range kw {
		switch name {
		case "units":
			switch v := val.(type) {
			case string:
				u, err := ParseUnits(v)
				if err != nil {
					return nil, err
				}
				opts = append(opts, WithUnits(u))
			case Units:
				opts = append(opts, WithUnits(v))
			default:
				return nil, fmt.Errorf("MapAngleOptions: units=%v: %w", val, ErrBadOption)
			}
		case "range":
			switch v := val.(type) {
			case [2]float64:
				opts = append(opts, WithRange(v[0], v[1]))
			case []float64:
				if len(v) != 2 {
					return nil, fmt.Errorf("MapAngleOptions: range has %d entries: %w", len(v), ErrBadOption)
				}
				opts = append(opts, WithRange(v[0], v[1]))
			default:
				return nil, fmt.Errorf("MapAngleOptions: range=%v: %w", val, ErrBadOption)
			}
		default:
			return nil, fmt.Errorf("MapAngleOptions: %q: %w", name, ErrUnknownOption)
		}
	}

	return opts, nil
}

// MapAngle wraps each angle into one period.
//
// Without WithRange the result lies in [-P/2, P/2). With WithRange(lo, hi)
// whole periods are first stripped (truncating toward zero) and the angle is
// then shifted by ±P until it lies inside [lo, hi].
//
// Returns ErrIncompleteRange when |hi-lo| differs from the period.
// Complexity: O(n).
func MapAngle(ang []float64, opts ...Option) ([]float64, error) {
	cfg := mapOptions{units: Radians}
	for _, opt := range opts {
		opt(&cfg)
	}
	period := cfg.units.Period()
	out := make([]float64, len(ang))

	if !cfg.hasRange {
		for i, a := range ang {
			out[i] = floorMod(a+0.5*period, period) - 0.5*period
		}

		return out, nil
	}

	if math.Abs((cfg.hi-cfg.lo)-period) > rangeTol*period {
		return nil, fmt.Errorf("MapAngle: [%g, %g] with period %g: %w", cfg.lo, cfg.hi, period, ErrIncompleteRange)
	}

	var a float64
	for i := range ang {
		a = ang[i]
		if !math.IsNaN(a) && !math.IsInf(a, 0) {
			a -= math.Trunc(a/period) * period
			for a < cfg.lo {
				a += period
			}
			for a > cfg.hi {
				a -= period
			}
		}
		out[i] = a
	}

	return out, nil
}

// AngularDifference returns the acute difference min(|b-a|, P-|b-a|) for
// each pair. Inputs are expected to lie within one period of each other
// (as produced by MapAngle); the result is then in [0, P/2].
func AngularDifference(a, b []float64, units Units) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("AngularDifference: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	period := units.Period()
	out := make([]float64, len(a))
	var d float64
	for i := range a {
		d = math.Abs(b[i] - a[i])
		out[i] = math.Min(d, period-d)
	}

	return out, nil
}

// ArccosSafe returns acos(x), clamping x into [-1, 1] when it lies within
// the round-off slack (|x| ≤ 1.00001). Larger magnitudes are logged and
// reported as ErrArccosDomain.
func ArccosSafe(x float64) (float64, error) {
	if math.Abs(x) > arccosSlack || math.IsNaN(x) {
		klog.ErrorS(ErrArccosDomain, "attempt to take arccos", "value", x)

		return 0, fmt.Errorf("ArccosSafe(%g): %w", x, ErrArccosDomain)
	}

	return math.Acos(clampUnit(x)), nil
}

// ArccosSafeSlice applies ArccosSafe to every element. The whole call fails
// if any element is out of domain; no partial result is returned.
func ArccosSafeSlice(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if math.Abs(x) > arccosSlack || math.IsNaN(x) {
			klog.ErrorS(ErrArccosDomain, "attempt to take arccos", "index", i, "value", x)

			return nil, fmt.Errorf("ArccosSafeSlice: [%d]=%g: %w", i, x, ErrArccosDomain)
		}
		out[i] = math.Acos(clampUnit(x))
	}

	return out, nil
}

// clampUnit clamps x into [-1, 1].
func clampUnit(x float64) float64 {
	if x >= 1 {
		return 1
	}
	if x <= -1 {
		return -1
	}

	return x
}

// floorMod is the modulo with the sign of the divisor, result in [0, p).
func floorMod(a, p float64) float64 {
	r := math.Mod(a, p)
	if r < 0 {
		r += p
	}
	if r >= p {
		r -= p
	}

	return r
}
