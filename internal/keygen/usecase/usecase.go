package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/michaelosthege/hagelkorn/internal/keygen/entity"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgerror"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkghagel"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkguid"
)

type Store interface {
	Record(ctx context.Context, batch entity.Batch) error
	Stats(ctx context.Context) ([]entity.StrategyStats, error)
	StatsFor(ctx context.Context, strategy entity.Strategy) (entity.StrategyStats, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.OverflowEvent) error
}

type Runner interface {
	Go(ctx context.Context, name string, f func(ctx context.Context) error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	// Hagel serves the monotonic strategy and the /hagel endpoints.
	Hagel *pkghagel.Generator
	// Generators serves every other enabled strategy.
	Generators map[entity.Strategy]pkguid.StringID
	Parsers    map[entity.Strategy]pkguid.TimeParser

	Store   Store
	Events  EventPublisher
	Runner  Runner
	Clock   Clock
	ID      pkguid.StringID
	RootCtx context.Context
}

type Usecase struct {
	hagel      *pkghagel.Generator
	generators map[entity.Strategy]pkguid.StringID
	parsers    map[entity.Strategy]pkguid.TimeParser

	store   Store
	events  EventPublisher
	runner  Runner
	clock   Clock
	id      pkguid.StringID
	rootCtx context.Context

	// widest monotonic ID width already reported as overflow
	reportedWidth atomic.Int64
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	uc := &Usecase{
		hagel:      dep.Hagel,
		generators: dep.Generators,
		parsers:    dep.Parsers,
		store:      dep.Store,
		events:     dep.Events,
		runner:     dep.Runner,
		clock:      clock,
		id:         dep.ID,
		rootCtx:    root,
	}
	if uc.hagel != nil {
		uc.reportedWidth.Store(int64(uc.hagel.Digits()))
	}

	return uc
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (u *Usecase) Generate(ctx context.Context, in GenerateInput) (GenerateResult, error) {
	strategy, err := parseStrategy(in.Strategy)
	if err != nil {
		return GenerateResult{}, err
	}

	count := in.Count
	if count == 0 {
		count = DefaultCount
	}
	if count < 1 || count > MaxCount {
		return GenerateResult{}, pkgerror.NewInvalidInput(fmt.Errorf("count must be between 1 and %d", MaxCount))
	}

	if in.At != nil && strategy != entity.StrategyMonotonic {
		return GenerateResult{}, pkgerror.NewInvalidInput(errors.New("at is only supported by the monotonic strategy"))
	}

	issuedAt := u.clock.Now()

	var ids []string
	if strategy == entity.StrategyMonotonic {
		ids, err = u.monotonic(count, in.At, issuedAt)
	} else {
		ids, err = u.batch(strategy, count)
	}
	if err != nil {
		return GenerateResult{}, err
	}

	batch := entity.Batch{Strategy: strategy, IDs: ids, IssuedAt: issuedAt}
	if u.store != nil {
		if err := u.store.Record(ctx, batch); err != nil {
			return GenerateResult{}, normalizeErr(err)
		}
	}

	slog.DebugContext(ctx, "ids issued", "strategy", strategy, "count", len(ids))

	return GenerateResult{Strategy: strategy, IDs: ids, IssuedAt: issuedAt}, nil
}

func (u *Usecase) monotonic(count int, at *time.Time, now time.Time) ([]string, error) {
	if u.hagel == nil {
		return nil, pkgerror.NewBusiness("strategy is not enabled", pkgerror.CodeNotFound)
	}
	if count != 1 {
		return nil, pkgerror.NewInvalidInput(errors.New("monotonic ids are unique per interval only, count must be 1"))
	}

	if at != nil {
		now = *at
	}

	id := u.hagel.Monotonic(now)
	u.checkOverflow(id, now)

	return []string{id}, nil
}

func (u *Usecase) batch(strategy entity.Strategy, count int) ([]string, error) {
	gen, ok := u.generators[strategy]
	if !ok || gen == nil {
		return nil, pkgerror.NewBusiness("strategy is not enabled", pkgerror.CodeNotFound)
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, gen.Generate())
	}

	return ids, nil
}

// checkOverflow publishes one event per newly seen ID width beyond the
// configured digit count.
func (u *Usecase) checkOverflow(id string, at time.Time) {
	width := int64(utf8.RuneCountInString(id))
	for {
		reported := u.reportedWidth.Load()
		if width <= reported {
			return
		}
		if u.reportedWidth.CompareAndSwap(reported, width) {
			break
		}
	}

	if u.events == nil {
		return
	}

	event := entity.OverflowEvent{
		ID:       id,
		Digits:   u.hagel.Digits(),
		Width:    int(width),
		IssuedAt: at,
	}
	if u.id != nil {
		event.EventID = u.id.Generate()
	}

	publish := func(ctx context.Context) error {
		if err := u.events.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish overflow event", "event_id", event.EventID, "error", err)
			return err
		}
		return nil
	}

	if u.runner == nil {
		_ = publish(u.rootCtx)
		return
	}
	u.runner.Go(u.rootCtx, "publish overflow event", publish)
}

func (u *Usecase) Parse(ctx context.Context, strategyRaw, id string) (ParseResult, error) {
	strategy, err := parseStrategy(strategyRaw)
	if err != nil {
		return ParseResult{}, err
	}
	if id == "" {
		return ParseResult{}, pkgerror.NewInvalidInput(errors.New("id is required"))
	}

	if strategy == entity.StrategyMonotonic {
		if u.hagel == nil {
			return ParseResult{}, pkgerror.NewBusiness("strategy is not enabled", pkgerror.CodeNotFound)
		}

		iv, err := u.hagel.Parse(id)
		if err != nil {
			return ParseResult{}, pkgerror.NewInvalidInput(err)
		}

		return ParseResult{Strategy: strategy, ID: id, Time: iv.Start, Interval: &iv}, nil
	}

	parser, ok := u.parsers[strategy]
	if !ok || parser == nil {
		return ParseResult{}, pkgerror.NewUnsupported("strategy does not support parsing")
	}

	ts, err := parser.ParseTime(id)
	if err != nil {
		return ParseResult{}, pkgerror.NewInvalidInput(err)
	}

	return ParseResult{Strategy: strategy, ID: id, Time: ts}, nil
}

func (u *Usecase) Info(ctx context.Context) (InfoResult, error) {
	if u.hagel == nil {
		return InfoResult{}, pkgerror.NewBusiness("strategy is not enabled", pkgerror.CodeNotFound)
	}

	return infoOf(u.hagel), nil
}

func (u *Usecase) Derive(ctx context.Context, in DeriveInput) (pkghagel.Params, error) {
	p, err := pkghagel.DeriveParameters(in.OverflowYears, in.Resolution, in.Base)
	if err != nil {
		return pkghagel.Params{}, pkgerror.NewInvalidInput(err)
	}

	return p, nil
}

func (u *Usecase) Preview(ctx context.Context, in PreviewInput) (PreviewResult, error) {
	cfg := pkghagel.DefaultConfig()
	if in.Resolution != nil {
		cfg.Resolution = *in.Resolution
	}
	if in.Alphabet != nil {
		cfg.Alphabet = *in.Alphabet
	}
	if in.Start != nil {
		cfg.Start = *in.Start
	}
	if in.OverflowYears != nil {
		cfg.OverflowYears = *in.OverflowYears
	}

	g, err := pkghagel.New(cfg)
	if err != nil {
		return PreviewResult{}, pkgerror.NewInvalidInput(err)
	}

	at := u.clock.Now()
	if in.At != nil {
		at = *in.At
	}

	return PreviewResult{ID: g.Monotonic(at), At: at.UTC(), Info: infoOf(g)}, nil
}

func (u *Usecase) Stats(ctx context.Context) ([]entity.StrategyStats, error) {
	if u.store == nil {
		return nil, pkgerror.NewServer(errors.New("missing dependency"))
	}

	stats, err := u.store.Stats(ctx)
	if err != nil {
		return nil, normalizeErr(err)
	}

	return stats, nil
}

func (u *Usecase) StatsFor(ctx context.Context, strategyRaw string) (entity.StrategyStats, error) {
	strategy, err := parseStrategy(strategyRaw)
	if err != nil {
		return entity.StrategyStats{}, err
	}
	if u.store == nil {
		return entity.StrategyStats{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	stats, err := u.store.StatsFor(ctx, strategy)
	if err != nil {
		return entity.StrategyStats{}, mapStoreErr(err)
	}

	return stats, nil
}

func parseStrategy(value string) (entity.Strategy, error) {
	strategy, ok := entity.ParseStrategy(value)
	if !ok {
		return "", pkgerror.NewBusiness("strategy not found", pkgerror.CodeNotFound)
	}
	return strategy, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("no ids issued for strategy", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
