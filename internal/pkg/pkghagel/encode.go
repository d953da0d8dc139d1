package pkghagel

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// Encode writes value in the positional notation whose digits are the
// symbols of alphabet, most significant first, left-padded with the first
// symbol to at least minDigits symbols. Wider results are never truncated.
//
// Encode panics if alphabet has fewer than two symbols.
func Encode(value uint64, alphabet string, minDigits int) string {
	symbols := []rune(alphabet)
	if len(symbols) < 2 {
		panic("pkghagel: Encode needs an alphabet of at least two symbols")
	}
	return encode(value, symbols, minDigits)
}

func encode(value uint64, symbols []rune, minDigits int) string {
	base := uint64(len(symbols))

	var buf [64]rune
	i := len(buf)
	for value > 0 {
		i--
		buf[i] = symbols[value%base]
		value /= base
	}

	return pad(buf[i:], symbols[0], minDigits)
}

// encodeBig handles interval counts past the uint64 range.
func encodeBig(value *big.Int, symbols []rune, minDigits int) string {
	if value.IsUint64() {
		return encode(value.Uint64(), symbols, minDigits)
	}

	base := big.NewInt(int64(len(symbols)))
	n := new(big.Int).Set(value)
	rem := new(big.Int)

	var digits []rune
	for n.Sign() > 0 {
		n.QuoRem(n, base, rem)
		digits = append(digits, symbols[rem.Int64()])
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	return pad(digits, symbols[0], minDigits)
}

func pad(digits []rune, zero rune, minDigits int) string {
	var sb strings.Builder
	for n := len(digits); n < minDigits; n++ {
		sb.WriteRune(zero)
	}
	for _, d := range digits {
		sb.WriteRune(d)
	}
	return sb.String()
}

// Decode is the inverse of Encode. Leading padding symbols are harmless.
func Decode(id, alphabet string) (uint64, error) {
	symbols, err := parseAlphabet(alphabet, false)
	if err != nil {
		return 0, err
	}
	return decode(id, symbolValues(symbols))
}

func decode(id string, values map[rune]uint64) (uint64, error) {
	base := uint64(len(values))

	var n uint64
	for _, r := range id {
		v, ok := values[r]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
		}

		hi, lo := bits.Mul64(n, base)
		if hi != 0 {
			return 0, ErrValueOverflow
		}
		sum, carry := bits.Add64(lo, v, 0)
		if carry != 0 {
			return 0, ErrValueOverflow
		}
		n = sum
	}

	return n, nil
}
