package primes

import "github.com/fpiantini/go-primes/pkg/utils"

// classifySmall settles every v that needs no divisor scan: 0, 1, even
// values and everything up to 8. decided is false for odd v > 8.
func classifySmall(v uint32) (prime, decided bool) {
	switch {
	case v < 2:
		return false, true
	case v == 2:
		return true, true
	case utils.IsEven(v):
		return false, true
	case v <= 8:
		return true, true
	}
	return false, false
}

// IsPrimeConventional tests odd divisors from 3 to floor(sqrt(v)) with a
// counter loop.
func IsPrimeConventional(v uint32) bool {
	if prime, ok := classifySmall(v); ok {
		return prime
	}

	limit := utils.ISqrt(v)
	for d := uint32(3); d <= limit; d += 2 {
		if v%d == 0 {
			return false
		}
	}
	return true
}

// NthPrimeConventional returns the prime at index n using IsPrimeConventional.
// It panics if n > MaxIndex.
func NthPrimeConventional(n uint32) uint32 {
	return nthFromSequence(IsPrimeConventional, n)
}

func nthFromSequence(test PrimalityTestFunc, n uint32) uint32 {
	mustIndex(n)
	p, _ := NewSequence(test).Nth(n)
	return p
}
