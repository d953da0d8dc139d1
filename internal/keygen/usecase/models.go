package usecase

import (
	"time"

	"github.com/michaelosthege/hagelkorn/internal/keygen/entity"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkghagel"
)

const (
	DefaultCount = 1
	MaxCount     = 1000
)

type GenerateInput struct {
	Strategy string
	Count    int
	// At replaces the clock for the monotonic strategy.
	At *time.Time
}

type GenerateResult struct {
	Strategy entity.Strategy
	IDs      []string
	IssuedAt time.Time
}

type ParseResult struct {
	Strategy entity.Strategy
	ID       string
	Time     time.Time
	// Interval is set for monotonic IDs only.
	Interval *pkghagel.Interval
}

type InfoResult struct {
	Alphabet            string
	Base                int
	Digits              int
	Combinations        uint64
	Resolution          float64
	RequestedResolution float64
	TotalSeconds        float64
	OverflowYears       float64
	Start               time.Time
	End                 time.Time
}

func infoOf(g *pkghagel.Generator) InfoResult {
	return InfoResult{
		Alphabet:            g.Alphabet(),
		Base:                g.Base(),
		Digits:              g.Digits(),
		Combinations:        g.Combinations(),
		Resolution:          g.Resolution(),
		RequestedResolution: g.RequestedResolution(),
		TotalSeconds:        g.TotalSeconds(),
		OverflowYears:       g.OverflowYears(),
		Start:               g.Start(),
		End:                 g.End(),
	}
}

type DeriveInput struct {
	OverflowYears float64
	Resolution    float64
	Base          int
}

// PreviewInput overrides fields of pkghagel.DefaultConfig; nil keeps the default.
type PreviewInput struct {
	At            *time.Time
	Resolution    *float64
	Alphabet      *string
	Start         *time.Time
	OverflowYears *float64
}

type PreviewResult struct {
	ID   string
	At   time.Time
	Info InfoResult
}
