package pkghagel

import (
	"fmt"
	"math/big"
	"time"
	"unicode/utf8"
)

// DefaultStart is the beginning of the default timeline.
var DefaultStart = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config describes a monotonic ID timeline. Generators built from equal
// configs produce equal IDs.
type Config struct {
	// Resolution is the longest acceptable interval, in seconds.
	Resolution float64
	// Alphabet holds the digit symbols in ascending order.
	Alphabet string
	// Start is the instant encoded as the all-first-symbol ID.
	Start time.Time
	// OverflowYears is the lifetime after which IDs grow by one symbol.
	OverflowYears float64
}

// DefaultConfig returns one-second resolution over ten years from 2018 with
// DefaultAlphabet, which gives 6-symbol IDs.
func DefaultConfig() Config {
	return Config{
		Resolution:    Second,
		Alphabet:      DefaultAlphabet,
		Start:         DefaultStart,
		OverflowYears: 10,
	}
}

// Interval is the span of time that maps to a single monotonic ID.
type Interval struct {
	Index uint64
	Start time.Time // inclusive
	End   time.Time // exclusive
}

// Generator turns instants into monotonic IDs. All of its state is fixed at
// construction, so a Generator is safe for concurrent use.
type Generator struct {
	cfg     Config
	symbols []rune
	values  map[rune]uint64
	params  Params
	end     time.Time

	// intervals = elapsed nanoseconds * num / den, i.e. elapsed / (total / K)
	// without the rounding of the float resolution.
	num *big.Int
	den *big.Int

	now func() time.Time
}

// New validates cfg and derives its parameters once.
func New(cfg Config) (*Generator, error) {
	if cfg.Start.IsZero() {
		return nil, ErrInvalidStart
	}

	symbols, err := parseAlphabet(cfg.Alphabet, true)
	if err != nil {
		return nil, err
	}

	params, err := DeriveParameters(cfg.OverflowYears, cfg.Resolution, len(symbols))
	if err != nil {
		return nil, err
	}

	cfg.Start = cfg.Start.UTC()

	total := new(big.Rat).SetFloat64(params.TotalSeconds)
	num := new(big.Int).Mul(new(big.Int).SetUint64(params.Combinations), total.Denom())
	den := new(big.Int).Mul(total.Num(), big.NewInt(int64(time.Second)))

	g := &Generator{
		cfg:     cfg,
		symbols: symbols,
		values:  symbolValues(symbols),
		params:  params,
		num:     num,
		den:     den,
		now:     time.Now,
	}

	totalNanos := new(big.Int).Quo(new(big.Int).Mul(total.Num(), big.NewInt(int64(time.Second))), total.Denom())
	if g.end, err = g.offset(totalNanos); err != nil {
		return nil, fmt.Errorf("%w: end of timeline is not representable", ErrInvalidOverflow)
	}

	return g, nil
}

// Monotonic is the stateless form of Generator.Monotonic. It derives the
// parameters on every call; keep a Generator around when issuing many IDs.
func Monotonic(cfg Config, now time.Time) (string, error) {
	g, err := New(cfg)
	if err != nil {
		return "", err
	}
	return g.Monotonic(now), nil
}

// Monotonic returns the ID of the interval that contains now. Instants
// before the start map to the first ID. From the overflow horizon on, IDs
// are longer than Digits.
func (g *Generator) Monotonic(now time.Time) string {
	return encodeBig(g.intervals(now), g.symbols, g.params.Digits)
}

// Now returns the ID for the current instant.
func (g *Generator) Now() string {
	return g.Monotonic(g.now())
}

// Generate is Now under the name shared by the other ID generators.
func (g *Generator) Generate() string {
	return g.Now()
}

// Parse returns the interval an ID stands for. Monotonic(Parse(id).Start)
// gives back id for every ID the generator can produce.
func (g *Generator) Parse(id string) (Interval, error) {
	if utf8.RuneCountInString(id) < g.params.Digits {
		return Interval{}, fmt.Errorf("%w: expected at least %d symbols", ErrInvalidID, g.params.Digits)
	}

	index, err := decode(id, g.values)
	if err != nil {
		return Interval{}, err
	}

	n := new(big.Int).SetUint64(index)
	start, err := g.offset(ceilDiv(new(big.Int).Mul(n, g.den), g.num))
	if err != nil {
		return Interval{}, err
	}
	n.Add(n, big.NewInt(1))
	end, err := g.offset(ceilDiv(new(big.Int).Mul(n, g.den), g.num))
	if err != nil {
		return Interval{}, err
	}

	return Interval{Index: index, Start: start, End: end}, nil
}

func (g *Generator) intervals(now time.Time) *big.Int {
	now = now.UTC()

	elapsed := big.NewInt(now.Unix() - g.cfg.Start.Unix())
	elapsed.Mul(elapsed, big.NewInt(int64(time.Second)))
	elapsed.Add(elapsed, big.NewInt(int64(now.Nanosecond()-g.cfg.Start.Nanosecond())))
	if elapsed.Sign() <= 0 {
		return elapsed.SetInt64(0)
	}

	elapsed.Mul(elapsed, g.num)
	return elapsed.Quo(elapsed, g.den)
}

// offset returns start plus the given number of nanoseconds.
func (g *Generator) offset(nanos *big.Int) (time.Time, error) {
	sec, nsec := new(big.Int).QuoRem(nanos, big.NewInt(int64(time.Second)), new(big.Int))
	sec.Add(sec, big.NewInt(g.cfg.Start.Unix()))
	if !sec.IsInt64() {
		return time.Time{}, ErrValueOverflow
	}
	return time.Unix(sec.Int64(), int64(g.cfg.Start.Nanosecond())+nsec.Int64()).UTC(), nil
}

func ceilDiv(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// Config returns the configuration with Start normalized to UTC.
func (g *Generator) Config() Config { return g.cfg }

// Params returns the derived parameters.
func (g *Generator) Params() Params { return g.params }

// Digits is the nominal ID width.
func (g *Generator) Digits() int { return g.params.Digits }

// Combinations is the number of distinct IDs of nominal width.
func (g *Generator) Combinations() uint64 { return g.params.Combinations }

// Resolution is the realized interval length in seconds.
func (g *Generator) Resolution() float64 { return g.params.Resolution }

// RequestedResolution is the configured upper bound for Resolution.
func (g *Generator) RequestedResolution() float64 { return g.cfg.Resolution }

// TotalSeconds is the lifetime from Start to End.
func (g *Generator) TotalSeconds() float64 { return g.params.TotalSeconds }

func (g *Generator) OverflowYears() float64 { return g.cfg.OverflowYears }

func (g *Generator) Alphabet() string { return g.cfg.Alphabet }

// Base is the number of symbols in the alphabet.
func (g *Generator) Base() int { return len(g.symbols) }

func (g *Generator) Start() time.Time { return g.cfg.Start }

// End is the overflow horizon, the first instant with a wider ID.
func (g *Generator) End() time.Time { return g.end }
