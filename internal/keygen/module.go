package keygen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/michaelosthege/hagelkorn/internal/keygen/entity"
	"github.com/michaelosthege/hagelkorn/internal/keygen/event"
	"github.com/michaelosthege/hagelkorn/internal/keygen/inbound"
	"github.com/michaelosthege/hagelkorn/internal/keygen/store"
	"github.com/michaelosthege/hagelkorn/internal/keygen/usecase"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgconfig"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkghagel"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgrouter"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgroutine"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.StringID
}

func New(dep Dependency) (func(context.Context) error, error) {
	hagel, err := pkghagel.New(hagelConfig(dep.Config))
	if err != nil {
		return nil, fmt.Errorf("hagel generator: %w", err)
	}

	generators, parsers, err := strategies(dep.Config, hagel)
	if err != nil {
		return nil, err
	}

	storage := store.NewInMemoryStore()
	bus := event.NewBus(intOr(dep.Config.GetInt("keygen.events.buffer"), 512))
	consumer := event.NewOverflowConsumer(bus, event.LogAlerter{}, event.ConsumerConfig{
		Workers:     intOr(dep.Config.GetInt("keygen.events.workers"), 2),
		MaxRetries:  3,
		BaseBackoff: 200 * time.Millisecond,
	})
	consumer.Start()

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	var monotonic *pkghagel.Generator
	if _, ok := generators[entity.StrategyMonotonic]; ok {
		monotonic = hagel
	}

	uc := usecase.New(usecase.Dependency{
		Hagel:      monotonic,
		Generators: generators,
		Parsers:    parsers,
		Store:      storage,
		Events:     bus,
		Runner:     dep.Goroutine,
		Clock:      nil,
		ID:         dep.ID,
		RootCtx:    dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return consumer.Stop, nil
}

// hagelConfig reads hagel.* keys; missing keys keep pkghagel.DefaultConfig.
func hagelConfig(cfg pkgconfig.Config) pkghagel.Config {
	c := pkghagel.DefaultConfig()
	if v := cfg.GetFloat("hagel.resolution"); v != 0 {
		c.Resolution = v
	}
	if v := cfg.GetString("hagel.alphabet"); v != "" {
		c.Alphabet = v
	}
	if v := cfg.GetTime("hagel.start"); !v.IsZero() {
		c.Start = v
	}
	if v := cfg.GetFloat("hagel.overflow_years"); v != 0 {
		c.OverflowYears = v
	}
	return c
}

// strategies builds the generator and parser of every strategy enabled by
// keygen.strategies. An empty list enables all of them.
func strategies(cfg pkgconfig.Config, hagel *pkghagel.Generator) (
	map[entity.Strategy]pkguid.StringID,
	map[entity.Strategy]pkguid.TimeParser,
	error,
) {
	enabled, err := enabledStrategies(cfg)
	if err != nil {
		return nil, nil, err
	}

	generators := make(map[entity.Strategy]pkguid.StringID, len(enabled))
	parsers := make(map[entity.Strategy]pkguid.TimeParser)

	for _, s := range enabled {
		switch s {
		case entity.StrategyMonotonic:
			generators[s] = hagel
		case entity.StrategyRandom:
			alphabet := cfg.GetString("hagel.random.alphabet")
			if alphabet == "" {
				alphabet = hagel.Alphabet()
			}
			g, err := pkghagel.NewRandom(pkghagel.CryptoSource,
				intOr(cfg.GetInt("hagel.random.digits"), pkghagel.DefaultRandomDigits), alphabet)
			if err != nil {
				return nil, nil, fmt.Errorf("random generator: %w", err)
			}
			generators[s] = g
		case entity.StrategyUUID:
			g := pkguid.NewUUID()
			generators[s], parsers[s] = g, g
		case entity.StrategyULID:
			g := pkguid.NewULID()
			generators[s], parsers[s] = g, g
		case entity.StrategyKSUID:
			g := pkguid.NewKSUID()
			generators[s], parsers[s] = g, g
		case entity.StrategyNanoID:
			alphabet := cfg.GetString("nanoid.alphabet")
			if alphabet == "" {
				alphabet = pkguid.DefaultNanoIDAlphabet
			}
			g, err := pkguid.NewNanoID(intOr(cfg.GetInt("nanoid.size"), pkguid.DefaultNanoIDSize), alphabet)
			if err != nil {
				return nil, nil, fmt.Errorf("nanoid generator: %w", err)
			}
			generators[s] = g
		case entity.StrategyCUID2:
			g, err := pkguid.NewCUID2(intOr(cfg.GetInt("cuid2.length"), pkguid.DefaultCUID2Length))
			if err != nil {
				return nil, nil, fmt.Errorf("cuid2 generator: %w", err)
			}
			generators[s] = g
		case entity.StrategySnowflake:
			g, err := pkguid.NewSnowflake(cfg.GetInt("snowflake.epoch"))
			if err != nil {
				return nil, nil, fmt.Errorf("snowflake generator: %w", err)
			}
			generators[s], parsers[s] = pkguid.AsString(g), g
		}
	}

	return generators, parsers, nil
}

func enabledStrategies(cfg pkgconfig.Config) ([]entity.Strategy, error) {
	var out []entity.Strategy
	for _, raw := range cfg.GetArray("keygen.strategies") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		s, ok := entity.ParseStrategy(raw)
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q in keygen.strategies", raw)
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return entity.Strategies(), nil
	}
	return out, nil
}

func intOr(v int64, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return int(v)
}
