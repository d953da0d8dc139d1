package pkghagel

import "unicode/utf8"

// DefaultAlphabet has 27 upper-case symbols in ascending order. Symbols that
// are easily confused with each other (0 2 G I J O S U V) are left out.
const DefaultAlphabet = "13456789ABCDEFHKLMNPQRTWXYZ"

// parseAlphabet splits an alphabet into its symbols. Monotonic alphabets must
// be strictly ascending so that IDs of equal width sort like the numbers they
// encode; UTF-8 keeps code point order under byte-wise comparison.
func parseAlphabet(alphabet string, ascending bool) ([]rune, error) {
	if !utf8.ValidString(alphabet) {
		return nil, ErrAlphabetEncoding
	}

	symbols := []rune(alphabet)
	if len(symbols) < 2 {
		return nil, ErrAlphabetTooShort
	}

	if ascending {
		for i := 1; i < len(symbols); i++ {
			switch {
			case symbols[i] == symbols[i-1]:
				return nil, ErrAlphabetDuplicate
			case symbols[i] < symbols[i-1]:
				return nil, ErrAlphabetUnsorted
			}
		}
		return symbols, nil
	}

	seen := make(map[rune]struct{}, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			return nil, ErrAlphabetDuplicate
		}
		seen[s] = struct{}{}
	}

	return symbols, nil
}

func symbolValues(symbols []rune) map[rune]uint64 {
	values := make(map[rune]uint64, len(symbols))
	for i, s := range symbols {
		values[s] = uint64(i)
	}
	return values
}
