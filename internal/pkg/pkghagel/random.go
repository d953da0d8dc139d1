package pkghagel

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"sync"
)

// DefaultRandomDigits is the length of random IDs when none is configured.
const DefaultRandomDigits = 5

// Source draws uniform integers in [0, n). Implementations must be safe for
// concurrent use; one Source is normally shared by the whole process.
type Source interface {
	IntN(n int) int
}

// CryptoSource reads from crypto/rand.
var CryptoSource Source = cryptoSource{}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("pkghagel: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}

// NewSource returns a seeded PCG source guarded by a mutex. Equal seeds give
// equal sequences.
func NewSource(seed1, seed2 uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.r.IntN(n)
}

// RandomGenerator builds fixed-length IDs from independent uniform draws.
// It is as safe for concurrent use as its Source.
type RandomGenerator struct {
	src     Source
	digits  int
	symbols []rune
}

// NewRandom returns a generator of digits-long IDs over alphabet. The
// alphabet needs distinct symbols but no particular order. A nil src means
// CryptoSource.
func NewRandom(src Source, digits int, alphabet string) (*RandomGenerator, error) {
	if digits < 1 {
		return nil, ErrInvalidDigits
	}

	symbols, err := parseAlphabet(alphabet, false)
	if err != nil {
		return nil, err
	}

	if src == nil {
		src = CryptoSource
	}

	return &RandomGenerator{src: src, digits: digits, symbols: symbols}, nil
}

// Random is the stateless form of RandomGenerator.Generate.
func Random(src Source, digits int, alphabet string) (string, error) {
	g, err := NewRandom(src, digits, alphabet)
	if err != nil {
		return "", err
	}
	return g.Generate(), nil
}

// Generate draws a new ID. Callers that need uniqueness must pick digits so
// that len(alphabet)^digits is large against the number of IDs they issue.
func (g *RandomGenerator) Generate() string {
	out := make([]rune, g.digits)
	for i := range out {
		out[i] = g.symbols[g.src.IntN(len(g.symbols))]
	}
	return string(out)
}

func (g *RandomGenerator) Digits() int { return g.digits }

func (g *RandomGenerator) Alphabet() string { return string(g.symbols) }
