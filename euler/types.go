package euler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAxisOrder is returned for an axis order outside the twelve valid ones.
	ErrAxisOrder = errors.New("euler: invalid axes order")
)

// Order is a validated, lower-case axis order such as "xyz" or "zxz".
type Order string

// The twelve axis orders.
const (
	XYZ Order = "xyz"
	ZYX Order = "zyx"
	ZXY Order = "zxy"
	YXZ Order = "yxz"
	YZX Order = "yzx"
	XZY Order = "xzy"
	XYX Order = "xyx"
	XZX Order = "xzx"
	YXY Order = "yxy"
	YZY Order = "yzy"
	ZXZ Order = "zxz"
	ZYZ Order = "zyz"
)

// Orders lists the valid axis orders.
var Orders = []Order{XYZ, ZYX, ZXY, YXZ, YZX, XZY, XYX, XZX, YXY, YZY, ZXZ, ZYZ}

// ParseOrder validates an axis order, case-insensitively.
func ParseOrder(s string) (Order, error) {
	o := Order(strings.ToLower(s))
	for _, valid := range Orders {
		if o == valid {
			return o, nil
		}
	}

	return "", fmt.Errorf("ParseOrder(%q): %w", s, ErrAxisOrder)
}

// IsProper reports whether the first and last axes coincide (proper Euler
// angles, e.g. zxz) as opposed to Tait–Bryan angles (e.g. xyz).
func (o Order) IsProper() bool {
	return len(o) == 3 && o[0] == o[2]
}

// axes returns the 0/1/2 axis indices of o; o must be valid.
func (o Order) axes() [3]int {
	var out [3]int
	for i := 0; i < 3; i++ {
		out[i] = int(o[i] - 'x')
	}

	return out
}

// Spec returns the scipy-style sequence string: lower case for extrinsic,
// upper case for intrinsic.
func (o Order) Spec(extrinsic bool) string {
	if extrinsic {
		return string(o)
	}

	return strings.ToUpper(string(o))
}
