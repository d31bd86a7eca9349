// Package verify cross-checks the primality strategies against each other.
package verify

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fpiantini/go-primes/pkg/primes"
	"github.com/fpiantini/go-primes/pkg/settings"
)

// maxMismatches bounds the number of errors a single check collects.
const maxMismatches = 32

const (
	opIsPrime  = "IsPrime"
	opNthPrime = "NthPrime"
)

type candidate struct {
	name     string
	isPrime  func(uint32) bool
	nthPrime func(uint32) uint32
}

// Verifier compares strategies on the same inputs. The first configured
// strategy is the reference the others are compared with.
type Verifier struct {
	cfg        settings.Verify
	log        *zap.Logger
	candidates []candidate
}

// New creates a Verifier. A nil log discards output.
func New(cfg settings.Verify, log *zap.Logger) (*Verifier, error) {
	if log == nil {
		log = zap.NewNop()
	}

	strategies := primes.Strategies()
	if len(cfg.Strategies) > 0 {
		strategies = strategies[:0]
		for _, name := range cfg.Strategies {
			s, err := primes.ParseStrategy(name)
			if err != nil {
				return nil, errors.Wrap(err, "verify config")
			}
			strategies = append(strategies, s)
		}
	}

	v := &Verifier{cfg: cfg, log: log}
	for _, s := range strategies {
		v.candidates = append(v.candidates, candidate{
			name:     s.String(),
			isPrime:  s.IsPrime,
			nthPrime: s.NthPrime,
		})
	}
	return v, nil
}

// Run checks [0, RangeLimit], the configured indices and Samples random
// values above RangeLimit.
func (v *Verifier) Run() error {
	seed := v.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return multierr.Combine(
		v.CheckRange(0, v.cfg.RangeLimit),
		v.CheckIndices(v.cfg.Indices...),
		v.CheckSample(v.cfg.Samples, v.cfg.RangeLimit, seed),
	)
}

// CheckRange reports every value in [from, to] on which a strategy's IsPrime
// disagrees with the reference.
func (v *Verifier) CheckRange(from, to uint32) error {
	if from > to {
		return nil
	}
	v.log.Info("checking primality range",
		zap.Uint32("from", from),
		zap.Uint32("to", to),
		zap.Strings("strategies", v.names()))

	var errs error
	count := 0
	ref := v.candidates[0]
	for n := from; ; n++ {
		want := ref.isPrime(n)
		for _, c := range v.candidates[1:] {
			if got := c.isPrime(n); got != want {
				errs = multierr.Append(errs, v.mismatch(opIsPrime, c, n, got, want))
				count++
			}
		}
		if count >= maxMismatches {
			return multierr.Append(errs, ErrTooManyMismatches)
		}
		if n == to {
			break
		}
	}
	return errs
}

// CheckSample compares IsPrime on n values drawn uniformly from
// (above, math.MaxUint32]. The same seed draws the same values.
func (v *Verifier) CheckSample(n int, above uint32, seed uint64) error {
	if n <= 0 || above == math.MaxUint32 {
		return nil
	}
	v.log.Info("checking random sample",
		zap.Int("samples", n),
		zap.Uint32("above", above),
		zap.Uint64("seed", seed))

	source := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	span := uint64(math.MaxUint32 - above)

	var errs error
	count := 0
	ref := v.candidates[0]
	for i := 0; i < n && count < maxMismatches; i++ {
		x := above + 1 + uint32(source.Uint64N(span))
		want := ref.isPrime(x)
		for _, c := range v.candidates[1:] {
			if got := c.isPrime(x); got != want {
				errs = multierr.Append(errs, v.mismatch(opIsPrime, c, x, got, want))
				count++
			}
		}
	}
	if count >= maxMismatches {
		errs = multierr.Append(errs, ErrTooManyMismatches)
	}
	return errs
}

// CheckIndices compares NthPrime across strategies for each index. It also
// checks that results grow with the index and are accepted by every
// strategy's IsPrime.
func (v *Verifier) CheckIndices(indices ...uint32) error {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	v.log.Info("checking nth prime indices",
		zap.Uint32s("indices", sorted),
		zap.Strings("strategies", v.names()))

	var errs error
	var prev uint32
	ref := v.candidates[0]
	for i, idx := range sorted {
		if idx > primes.MaxIndex {
			// Sorted, so every remaining index is out of range too.
			_, err := primes.NthPrimeChecked(idx)
			return multierr.Append(errs, err)
		}

		want := ref.nthPrime(idx)
		for _, c := range v.candidates[1:] {
			if got := c.nthPrime(idx); got != want {
				errs = multierr.Append(errs, v.mismatch(opNthPrime, c, idx, got, want))
			}
		}
		for _, c := range v.candidates {
			if !c.isPrime(want) {
				errs = multierr.Append(errs,
					errors.Wrapf(ErrNotPrime, "%s rejects NthPrime(%d) = %d", c.name, idx, want))
			}
		}
		if i > 0 && want <= prev {
			errs = multierr.Append(errs,
				errors.Wrapf(ErrNotMonotonic, "NthPrime(%d) = %d after %d", idx, want, prev))
		}
		prev = want

		v.log.Debug("index checked", zap.Uint32("index", idx), zap.Uint32("prime", want))
	}
	return errs
}

func (v *Verifier) mismatch(op string, c candidate, input uint32, got, want any) error {
	err := &MismatchError{
		Op:        op,
		Strategy:  c.name,
		Reference: v.candidates[0].name,
		Input:     input,
		Got:       got,
		Want:      want,
	}
	v.log.Warn("strategies disagree",
		zap.String("op", op),
		zap.String("strategy", c.name),
		zap.Uint32("input", input),
		zap.Any("got", got),
		zap.Any("want", want))
	return err
}

func (v *Verifier) names() []string {
	out := make([]string, len(v.candidates))
	for i, c := range v.candidates {
		out[i] = c.name
	}
	return out
}
