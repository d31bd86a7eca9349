package primes

import "testing"

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// primeBenchConfig holds benchmark test configuration.
type primeBenchConfig struct {
	name  string
	value uint32 // candidate for IsPrime
	index uint32 // index for NthPrime
}

var benchConfigs = []primeBenchConfig{
	{"Small", 13, 5},
	{"Medium", 104743, 10000},
	{"Large", 15485867, 100000},
}

// ===========================================================================
// Benchmarks
// ===========================================================================

// BenchmarkIsPrime measures a single primality test per strategy.
func BenchmarkIsPrime(b *testing.B) {
	for _, s := range Strategies() {
		for _, cfg := range benchConfigs {
			b.Run(s.String()+"/"+cfg.name, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if !s.IsPrime(cfg.value) {
						b.Fatalf("IsPrime(%d) = false", cfg.value)
					}
				}
			})
		}
	}
}

// BenchmarkNthPrime measures a full scan from 2 per strategy.
func BenchmarkNthPrime(b *testing.B) {
	for _, s := range Strategies() {
		for _, cfg := range benchConfigs {
			b.Run(s.String()+"/"+cfg.name, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					s.NthPrime(cfg.index)
				}
			})
		}
	}
}
