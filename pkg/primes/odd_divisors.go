package primes

import "github.com/fpiantini/go-primes/pkg/utils"

// IsPrimeOddDivisors behaves like IsPrimeConventional but pulls candidate
// divisors from the lazy OddNumbers sequence.
func IsPrimeOddDivisors(v uint32) bool {
	if prime, ok := classifySmall(v); ok {
		return prime
	}

	limit := utils.ISqrt(v)
	for d := range OddNumbers() {
		if v%d == 0 {
			return false
		}
		if d >= limit {
			break
		}
	}
	return true
}

// NthPrimeOddDivisors returns the prime at index n using IsPrimeOddDivisors.
// It panics if n > MaxIndex.
func NthPrimeOddDivisors(n uint32) uint32 {
	return nthFromSequence(IsPrimeOddDivisors, n)
}
