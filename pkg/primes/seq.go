package primes

import (
	"iter"
	"math"
)

// Count yields from, from+1, ... and stops after math.MaxUint32.
func Count(from uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for v := from; ; v++ {
			if !yield(v) || v == math.MaxUint32 {
				return
			}
		}
	}
}

// Range yields the half-open interval [lo, hi).
func Range(lo, hi uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for v := lo; v < hi; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// OddNumbers yields 3, 5, 7, ... and stops after math.MaxUint32.
func OddNumbers() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for v := uint32(3); ; v += 2 {
			if !yield(v) || v == math.MaxUint32 {
				return
			}
		}
	}
}

// Filter yields the elements of seq for which keep returns true.
func Filter(seq iter.Seq[uint32], keep func(uint32) bool) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Nth returns the element of seq at 0-based position n.
// It returns false if seq ends first.
func Nth(seq iter.Seq[uint32], n uint32) (uint32, bool) {
	var i uint32
	for v := range seq {
		if i == n {
			return v, true
		}
		i++
	}
	return 0, false
}

// Any reports whether pred holds for some element of seq.
// It stops at the first match.
func Any(seq iter.Seq[uint32], pred func(uint32) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// TryEach calls fn for each element of seq.
// It stops and returns the first non-nil error from fn.
func TryEach(seq iter.Seq[uint32], fn func(uint32) error) error {
	for v := range seq {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}
