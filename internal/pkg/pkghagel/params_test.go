package pkghagel

import (
	"errors"
	"math"
	"testing"
)

func TestDeriveParametersOneYearOfDays(t *testing.T) {
	t.Parallel()

	p, err := DeriveParameters(1, Day, 10)
	if err != nil {
		t.Fatalf("DeriveParameters: %v", err)
	}
	if p.Digits != 3 {
		t.Fatalf("expected 3 digits, got %d", p.Digits)
	}
	if p.Combinations != 1000 {
		t.Fatalf("expected 1000 combinations, got %d", p.Combinations)
	}
	if p.Resolution != 31536 {
		t.Fatalf("expected resolution 31536, got %v", p.Resolution)
	}
	if p.TotalSeconds != SecondsPerYear {
		t.Fatalf("expected total %d, got %v", SecondsPerYear, p.TotalSeconds)
	}
}

func TestDeriveParametersDefaults(t *testing.T) {
	t.Parallel()

	p, err := DeriveParameters(10, Second, len(DefaultAlphabet))
	if err != nil {
		t.Fatalf("DeriveParameters: %v", err)
	}
	if p.Digits != 6 || p.Combinations != 387420489 {
		t.Fatalf("unexpected params: %+v", p)
	}
	if p.Resolution >= Second {
		t.Fatalf("expected resolution finer than a second, got %v", p.Resolution)
	}
}

func TestDeriveParametersExactPowerIsNotRoundedUp(t *testing.T) {
	t.Parallel()

	// 31536000 / 31536 is exactly 1000 = 10^3.
	p, err := DeriveParameters(1, 31536, 10)
	if err != nil {
		t.Fatalf("DeriveParameters: %v", err)
	}
	if p.Digits != 3 || p.Combinations != 1000 {
		t.Fatalf("unexpected params: %+v", p)
	}
	if p.Resolution != 31536 {
		t.Fatalf("expected resolution 31536, got %v", p.Resolution)
	}
}

func TestDeriveParametersDegenerateResolution(t *testing.T) {
	t.Parallel()

	p, err := DeriveParameters(1, 2*SecondsPerYear, 10)
	if err != nil {
		t.Fatalf("DeriveParameters: %v", err)
	}
	if p.Digits != 1 || p.Combinations != 10 {
		t.Fatalf("expected a single digit, got %+v", p)
	}
}

func TestDeriveParametersMinimalDigits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		years      float64
		resolution float64
		base       int
	}{
		{1, Day, 10},
		{30, Day, 27},
		{10, Second, 27},
		{10, Millisecond, 16},
		{100, Microsecond, 62},
		{0.5, Hour, 2},
		{2.75, Minute, 36},
		{1e-3, 7, 3},
	}

	for _, tc := range cases {
		p, err := DeriveParameters(tc.years, tc.resolution, tc.base)
		if err != nil {
			t.Fatalf("DeriveParameters(%v, %v, %d): %v", tc.years, tc.resolution, tc.base, err)
		}

		want := uint64(1)
		for i := 0; i < p.Digits; i++ {
			want *= uint64(tc.base)
		}
		if p.Combinations != want {
			t.Fatalf("combinations %d != %d^%d", p.Combinations, tc.base, p.Digits)
		}

		minCombinations := tc.years * SecondsPerYear / tc.resolution
		if float64(p.Combinations) < minCombinations {
			t.Fatalf("combinations %d below required %v", p.Combinations, minCombinations)
		}
		if p.Digits > 1 && float64(p.Combinations/uint64(tc.base)) >= minCombinations {
			t.Fatalf("digit count %d is not minimal for %+v", p.Digits, tc)
		}
		if p.Resolution > tc.resolution {
			t.Fatalf("realized resolution %v coarser than requested %v", p.Resolution, tc.resolution)
		}
	}
}

func TestDeriveParametersInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		years      float64
		resolution float64
		base       int
		want       error
	}{
		{"zero years", 0, Second, 10, ErrInvalidOverflow},
		{"negative years", -1, Second, 10, ErrInvalidOverflow},
		{"nan years", math.NaN(), Second, 10, ErrInvalidOverflow},
		{"infinite years", math.Inf(1), Second, 10, ErrInvalidOverflow},
		{"huge years", math.MaxFloat64, Second, 10, ErrInvalidOverflow},
		{"zero resolution", 1, 0, 10, ErrInvalidResolution},
		{"negative resolution", 1, -Second, 10, ErrInvalidResolution},
		{"nan resolution", 1, math.NaN(), 10, ErrInvalidResolution},
		{"unary base", 1, Second, 1, ErrBaseTooSmall},
		{"too many combinations", 1e6, 1e-9, 2, ErrCombinationsOverflow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DeriveParameters(tc.years, tc.resolution, tc.base)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
