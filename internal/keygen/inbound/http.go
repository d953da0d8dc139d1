package inbound

import (
	"context"

	"github.com/michaelosthege/hagelkorn/internal/keygen/entity"
	"github.com/michaelosthege/hagelkorn/internal/keygen/usecase"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkghagel"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgrouter"
)

type uc interface {
	Generate(ctx context.Context, in usecase.GenerateInput) (usecase.GenerateResult, error)
	Parse(ctx context.Context, strategy, id string) (usecase.ParseResult, error)
	Info(ctx context.Context) (usecase.InfoResult, error)
	Derive(ctx context.Context, in usecase.DeriveInput) (pkghagel.Params, error)
	Preview(ctx context.Context, in usecase.PreviewInput) (usecase.PreviewResult, error)
	Stats(ctx context.Context) ([]entity.StrategyStats, error)
	StatsFor(ctx context.Context, strategy string) (entity.StrategyStats, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/ids/:strategy", end.Generate)    // ?count=&at=
	r.GET("/ids/:strategy/parse", end.Parse) // ?id=

	r.GET("/hagel", end.Info)
	r.GET("/hagel/parameters", end.Parameters) // ?overflow_years=&resolution=&base=
	r.GET("/hagel/preview", end.Preview)       // ?at=&resolution=&alphabet=&start=&overflow_years=

	r.GET("/stats", end.Stats)
	r.GET("/stats/:strategy", end.StatsFor)
}
