package primes

import "github.com/fpiantini/go-primes/pkg/utils"

// IsPrimeShortCircuit traverses [2, floor(sqrt(v))+1) and aborts the
// traversal at the first exact divisor.
func IsPrimeShortCircuit(v uint32) bool {
	if prime, ok := classifySmall(v); ok {
		return prime
	}

	err := TryEach(Range(2, utils.ISqrt(v)+1), func(d uint32) error {
		if v%d == 0 {
			return errDivisible
		}
		return nil
	})
	return err == nil
}

// NthPrimeShortCircuit returns the prime at index n using IsPrimeShortCircuit.
// It panics if n > MaxIndex.
func NthPrimeShortCircuit(n uint32) uint32 {
	return nthFromSequence(IsPrimeShortCircuit, n)
}
