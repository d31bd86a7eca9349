package utils

import "math"

// maxSqrt is floor(sqrt(math.MaxUint32)).
const maxSqrt = 1<<16 - 1

// IsEven reports whether v is divisible by two.
func IsEven(v uint32) bool {
	return v&1 == 0
}

// ISqrt returns floor(sqrt(v)).
// The float estimate is corrected so the result is exact for every uint32.
func ISqrt(v uint32) uint32 {
	r := uint32(math.Sqrt(float64(v)))
	if r > maxSqrt {
		r = maxSqrt
	}
	for r*r > v {
		r--
	}
	for r < maxSqrt && (r+1)*(r+1) <= v {
		r++
	}
	return r
}
