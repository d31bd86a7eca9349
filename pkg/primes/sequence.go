package primes

import (
	"iter"
	"math"
)

// PrimalityTest decides whether a value is prime.
type PrimalityTest interface {
	IsPrime(v uint32) bool
}

// PrimalityTestFunc adapts a plain function to PrimalityTest.
type PrimalityTestFunc func(v uint32) bool

// IsPrime calls f(v).
func (f PrimalityTestFunc) IsPrime(v uint32) bool {
	return f(v)
}

// Sequence generates primes in ascending order on demand, starting at 2.
// NOT thread-safe.
type Sequence struct {
	test PrimalityTest
	next uint32 // next candidate
	done bool
}

// NewSequence creates a Sequence that accepts candidates with test.
func NewSequence(test PrimalityTest) *Sequence {
	return &Sequence{test: test, next: 2}
}

// Next advances past non-primes and returns the next prime.
// It returns false once the uint32 range is exhausted.
func (s *Sequence) Next() (uint32, bool) {
	if s.done {
		return 0, false
	}
	for !s.test.IsPrime(s.next) {
		if s.next == math.MaxUint32 {
			s.done = true
			return 0, false
		}
		s.next++
	}

	p := s.next
	if p == math.MaxUint32 {
		s.done = true
	} else {
		s.next++
	}
	return p, true
}

// Nth skips n primes and returns the one after them.
func (s *Sequence) Nth(n uint32) (uint32, bool) {
	for i := uint32(0); i < n; i++ {
		if _, ok := s.Next(); !ok {
			return 0, false
		}
	}
	return s.Next()
}

// All returns the remaining primes as an iterator.
// Elements consumed through the iterator are consumed from s.
func (s *Sequence) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
