// Package primes implements primality testing and nth-prime lookup over
// uint32 values.
//
// Four interchangeable strategies implement the same contract (see Strategy).
// IsPrime and NthPrime are the canonical entry points and use the
// conventional strategy.
package primes

// MaxIndex is the 0-based index of 4294967291, the largest prime below 2^32.
const MaxIndex uint32 = 203280220

// IsPrime reports whether v is prime.
func IsPrime(v uint32) bool {
	return IsPrimeConventional(v)
}

// NthPrime returns the prime at 0-based index n, so NthPrime(0) == 2.
// It panics if n > MaxIndex.
func NthPrime(n uint32) uint32 {
	return NthPrimeConventional(n)
}

// NthPrimeChecked is NthPrime returning ErrIndexOutOfRange instead of
// panicking when n > MaxIndex.
func NthPrimeChecked(n uint32) (uint32, error) {
	if err := checkIndex(n); err != nil {
		return 0, err
	}
	return NthPrimeConventional(n), nil
}
