package pkghagel

import (
	"math"
	"math/big"
)

// SecondsPerYear is the length of a 365-day year. Leap days are ignored.
const SecondsPerYear = 31_536_000

// Common resolutions, in seconds.
const (
	Microsecond = 1e-6
	Millisecond = 1e-3
	Second      = 1.0
	Minute      = 60.0
	Hour        = 3600.0
	Day         = 86400.0
)

// Params are the values derived from a lifetime, a resolution and a base.
type Params struct {
	// Digits is the fixed ID width until the overflow horizon.
	Digits int
	// Combinations is Base^Digits, the number of intervals until the horizon.
	Combinations uint64
	// Resolution is the realized interval length in seconds. It is never
	// coarser than the requested one.
	Resolution float64
	// TotalSeconds is the lifetime until the horizon.
	TotalSeconds float64
}

// DeriveParameters finds the smallest digit count whose combinations cover
// overflowYears at the requested resolution (in seconds) for the given base.
func DeriveParameters(overflowYears, resolution float64, base int) (Params, error) {
	if !positiveFinite(overflowYears) {
		return Params{}, ErrInvalidOverflow
	}
	if !positiveFinite(resolution) {
		return Params{}, ErrInvalidResolution
	}
	if base < 2 {
		return Params{}, ErrBaseTooSmall
	}

	totalSeconds := overflowYears * SecondsPerYear
	if math.IsInf(totalSeconds, 1) {
		return Params{}, ErrInvalidOverflow
	}

	// The comparison must be exact: big.Float holds both the uint64 and the
	// float64 without rounding.
	minCombinations := new(big.Float).SetFloat64(totalSeconds / resolution)

	b := uint64(base)
	digits := 1
	combinations := b
	k := new(big.Float)
	for k.SetUint64(combinations).Cmp(minCombinations) < 0 {
		if combinations > math.MaxUint64/b {
			return Params{}, ErrCombinationsOverflow
		}
		combinations *= b
		digits++
	}

	return Params{
		Digits:       digits,
		Combinations: combinations,
		Resolution:   totalSeconds / float64(combinations),
		TotalSeconds: totalSeconds,
	}, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
