package pkguid

import (
	"fmt"
	"unicode/utf8"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DefaultNanoIDSize     = 21
	DefaultNanoIDAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoID generates random IDs of a fixed size over a custom alphabet.
type NanoID struct {
	size     int
	alphabet string
}

// NewNanoID validates size (1..256) and alphabet (2..255 symbols) up front so
// Generate cannot fail.
func NewNanoID(size int, alphabet string) (*NanoID, error) {
	if size < 1 || size > 256 {
		return nil, fmt.Errorf("nanoid size must be between 1 and 256, got %d", size)
	}
	if n := utf8.RuneCountInString(alphabet); n < 2 || n > 255 {
		return nil, fmt.Errorf("nanoid alphabet must have between 2 and 255 characters, got %d", n)
	}

	return &NanoID{size: size, alphabet: alphabet}, nil
}

func (n *NanoID) Generate() string {
	return gonanoid.MustGenerate(n.alphabet, n.size)
}
