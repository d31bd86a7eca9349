package utils

import (
	"math"
	"testing"
)

// =============================================================================
// ISqrt Tests
// =============================================================================

func TestISqrt(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want uint32
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"two", 2, 1},
		{"three", 3, 1},
		{"four", 4, 2},
		{"eight", 8, 2},
		{"nine", 9, 3},
		{"just_below_square", 24, 4},
		{"perfect_square", 25, 5},
		{"millionth_prime", 15485867, 3935},
		{"largest_square", 65535 * 65535, 65535},
		{"below_largest_square", 65535*65535 - 1, 65534},
		{"max_uint32", math.MaxUint32, 65535},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISqrt(tt.v); got != tt.want {
				t.Errorf("ISqrt(%d) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestISqrt_Floor(t *testing.T) {
	for v := uint32(0); v < 1<<20; v++ {
		r := uint64(ISqrt(v))
		if r*r > uint64(v) || (r+1)*(r+1) <= uint64(v) {
			t.Fatalf("ISqrt(%d) = %d is not the floor square root", v, r)
		}
	}
}

// =============================================================================
// IsEven Tests
// =============================================================================

func TestIsEven(t *testing.T) {
	tests := []struct {
		v    uint32
		want bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{3, false},
		{math.MaxUint32, false},
		{math.MaxUint32 - 1, true},
	}
	for _, tt := range tests {
		if got := IsEven(tt.v); got != tt.want {
			t.Errorf("IsEven(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
