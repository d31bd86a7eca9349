package primes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var firstPrimes = []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// =============================================================================
// Method: Next()
// =============================================================================

func TestSequence_Next(t *testing.T) {
	s := NewSequence(PrimalityTestFunc(IsPrime))
	var got []uint32
	for range firstPrimes {
		p, ok := s.Next()
		if !ok {
			t.Fatal("Next() reported exhaustion early")
		}
		got = append(got, p)
	}
	if diff := cmp.Diff(firstPrimes, got); diff != "" {
		t.Errorf("Next() mismatch (-want +got):\n%s", diff)
	}
}

func TestSequence_Next_Exhausted(t *testing.T) {
	t.Run("last_prime", func(t *testing.T) {
		s := NewSequence(PrimalityTestFunc(IsPrime))
		s.next = 4294967280

		p, ok := s.Next()
		if !ok || p != 4294967291 {
			t.Fatalf("Next() = (%d, %v), want (4294967291, true)", p, ok)
		}
		if p, ok = s.Next(); ok {
			t.Errorf("Next() past last prime = (%d, true), want exhaustion", p)
		}
		if _, ok = s.Next(); ok {
			t.Error("Next() after exhaustion reported a value")
		}
	})

	t.Run("accepts_max_uint32", func(t *testing.T) {
		s := NewSequence(PrimalityTestFunc(func(uint32) bool { return true }))
		s.next = math.MaxUint32 - 1

		var got []uint32
		for v := range s.All() {
			got = append(got, v)
		}
		want := []uint32{math.MaxUint32 - 1, math.MaxUint32}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("All() near max mismatch (-want +got):\n%s", diff)
		}
	})
}

// =============================================================================
// Method: Nth()
// =============================================================================

func TestSequence_Nth(t *testing.T) {
	for i, want := range firstPrimes {
		s := NewSequence(PrimalityTestFunc(IsPrime))
		got, ok := s.Nth(uint32(i))
		if !ok || got != want {
			t.Errorf("Nth(%d) = (%d, %v), want (%d, true)", i, got, ok, want)
		}
	}
}

func TestSequence_Nth_ConsumesElements(t *testing.T) {
	s := NewSequence(PrimalityTestFunc(IsPrime))
	if p, _ := s.Nth(2); p != 5 {
		t.Fatalf("Nth(2) = %d, want 5", p)
	}
	if p, _ := s.Next(); p != 7 {
		t.Errorf("Next() after Nth(2) = %d, want 7", p)
	}
}

// =============================================================================
// Method: All()
// =============================================================================

func TestSequence_All(t *testing.T) {
	s := NewSequence(PrimalityTestFunc(IsPrime))
	got := collectN(s.All(), 5)
	if diff := cmp.Diff(firstPrimes[:5], got); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	// Breaking out of the loop leaves the sequence after the pulled elements.
	if p, _ := s.Next(); p != 13 {
		t.Errorf("Next() after partial All() = %d, want 13", p)
	}
}
