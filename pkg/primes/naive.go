package primes

import "github.com/fpiantini/go-primes/pkg/utils"

// IsPrimeNaive checks every integer in [2, floor(sqrt(v))+1) for a divisor.
// There is no even shortcut; it is the slow reference implementation.
func IsPrimeNaive(v uint32) bool {
	if v < 2 {
		return false
	}
	return !Any(Range(2, utils.ISqrt(v)+1), func(d uint32) bool {
		return v%d == 0
	})
}

// NthPrimeNaive filters the integers from 2 through IsPrimeNaive and returns
// the element at index n.
// It panics if n > MaxIndex.
func NthPrimeNaive(n uint32) uint32 {
	mustIndex(n)
	p, _ := Nth(Filter(Count(2), IsPrimeNaive), n)
	return p
}
