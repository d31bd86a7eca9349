package primes

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects one of the primality implementations.
type Strategy int

const (
	// Conventional scans odd divisors with a counter loop.
	Conventional Strategy = iota
	// OddDivisors scans odd divisors pulled from a lazy sequence.
	OddDivisors
	// Naive scans every integer up to the bound. Slow baseline.
	Naive
	// ShortCircuit scans with an early-exit traversal.
	ShortCircuit
)

type strategyImpl struct {
	name     string
	isPrime  func(uint32) bool
	nthPrime func(uint32) uint32
}

var strategyImpls = [...]strategyImpl{
	Conventional: {"conventional", IsPrimeConventional, NthPrimeConventional},
	OddDivisors:  {"odd-divisors", IsPrimeOddDivisors, NthPrimeOddDivisors},
	Naive:        {"naive", IsPrimeNaive, NthPrimeNaive},
	ShortCircuit: {"short-circuit", IsPrimeShortCircuit, NthPrimeShortCircuit},
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, len(strategyImpls))
	for i := range strategyImpls {
		out[i] = Strategy(i)
	}
	return out
}

// ParseStrategy returns the strategy with the given name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	for i, impl := range strategyImpls {
		if strings.EqualFold(impl.name, name) {
			return Strategy(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

func (s Strategy) valid() bool {
	return s >= 0 && int(s) < len(strategyImpls)
}

func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyImpls[s].name
}

// IsPrime reports whether v is prime using s.
func (s Strategy) IsPrime(v uint32) bool {
	return strategyImpls[s].isPrime(v)
}

// NthPrime returns the prime at 0-based index n using s.
// It panics if n > MaxIndex.
func (s Strategy) NthPrime(n uint32) uint32 {
	return strategyImpls[s].nthPrime(n)
}

// Primes returns the ascending primes produced by s.
// Every range over the result starts again from 2.
func (s Strategy) Primes() iter.Seq[uint32] {
	if s == Naive {
		return Filter(Count(2), IsPrimeNaive)
	}
	test := PrimalityTestFunc(strategyImpls[s].isPrime)
	return func(yield func(uint32) bool) {
		NewSequence(test).All()(yield)
	}
}
