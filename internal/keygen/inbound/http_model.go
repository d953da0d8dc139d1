package inbound

import (
	"time"

	"github.com/michaelosthege/hagelkorn/internal/keygen/entity"
	"github.com/michaelosthege/hagelkorn/internal/keygen/usecase"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkghagel"
)

type GenerateResponse struct {
	Strategy entity.Strategy `json:"strategy"`
	IDs      []string        `json:"ids"`
	IssuedAt time.Time       `json:"issued_at"`
}

func (GenerateResponse) Message() string {
	return "ids generated"
}

func (r GenerateResponse) Meta() map[string]any {
	return map[string]any{"count": len(r.IDs)}
}

type Interval struct {
	Index uint64    `json:"index"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ParseResponse struct {
	Strategy entity.Strategy `json:"strategy"`
	ID       string          `json:"id"`
	Time     time.Time       `json:"time"`
	Interval *Interval       `json:"interval,omitempty"`
}

type Parameters struct {
	Digits       int     `json:"digits"`
	Combinations uint64  `json:"combinations"`
	Resolution   float64 `json:"resolution"`
	TotalSeconds float64 `json:"total_seconds"`
}

type GeneratorResponse struct {
	Alphabet            string    `json:"alphabet"`
	Base                int       `json:"base"`
	Digits              int       `json:"digits"`
	Combinations        uint64    `json:"combinations"`
	Resolution          float64   `json:"resolution"`
	RequestedResolution float64   `json:"requested_resolution"`
	TotalSeconds        float64   `json:"total_seconds"`
	OverflowYears       float64   `json:"overflow_years"`
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
}

type PreviewResponse struct {
	ID        string            `json:"id"`
	At        time.Time         `json:"at"`
	Generator GeneratorResponse `json:"generator"`
}

type StrategyStats struct {
	Strategy     entity.Strategy `json:"strategy"`
	Issued       int64           `json:"issued"`
	Batches      int64           `json:"batches"`
	LastID       string          `json:"last_id"`
	LastIssuedAt time.Time       `json:"last_issued_at"`
}

type StatsResponse struct {
	Strategies []StrategyStats `json:"strategies"`
	total      int64
}

func (r StatsResponse) Meta() map[string]any {
	return map[string]any{"issued": r.total}
}

func toParameters(p pkghagel.Params) Parameters {
	return Parameters{
		Digits:       p.Digits,
		Combinations: p.Combinations,
		Resolution:   p.Resolution,
		TotalSeconds: p.TotalSeconds,
	}
}

func toGeneratorResponse(info usecase.InfoResult) GeneratorResponse {
	return GeneratorResponse{
		Alphabet:            info.Alphabet,
		Base:                info.Base,
		Digits:              info.Digits,
		Combinations:        info.Combinations,
		Resolution:          info.Resolution,
		RequestedResolution: info.RequestedResolution,
		TotalSeconds:        info.TotalSeconds,
		OverflowYears:       info.OverflowYears,
		Start:               info.Start,
		End:                 info.End,
	}
}

func toStrategyStats(st entity.StrategyStats) StrategyStats {
	return StrategyStats{
		Strategy:     st.Strategy,
		Issued:       st.Issued,
		Batches:      st.Batches,
		LastID:       st.LastID,
		LastIssuedAt: st.LastIssuedAt.UTC(),
	}
}
