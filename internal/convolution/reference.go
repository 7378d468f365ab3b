package convolution

import (
	"fmt"
	"math"
)

// Circular computes the whole circular convolution of a and b directly,
// using the same index convention as Engine.Step.
func Circular(a, b []int) ([]int, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	n := len(a)
	out := make([]int, n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			p, ok := mulInt(a[j], b[mod(k-j, n)])
			if ok {
				out[k], ok = addInt(out[k], p)
			}
			if !ok {
				return nil, fmt.Errorf("%w: y[%d]", ErrValueRange, k)
			}
		}
	}

	return out, nil
}

// mulInt multiplies and reports false when the product does not fit in an int.
func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	return p, true
}

// addInt adds and reports false on overflow.
func addInt(a, b int) (int, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}
