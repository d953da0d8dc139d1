package store

import (
	"context"
	"sync"

	"github.com/michaelosthege/hagelkorn/internal/keygen/entity"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgerror"
)

// InMemoryStore keeps issuance counters per strategy for the process lifetime.
type InMemoryStore struct {
	mu    sync.RWMutex
	stats map[entity.Strategy]*statsRecord
}

type statsRecord struct {
	mu    sync.Mutex
	stats entity.StrategyStats
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		stats: make(map[entity.Strategy]*statsRecord),
	}
}

func (s *InMemoryStore) Record(ctx context.Context, batch entity.Batch) error {
	if len(batch.IDs) == 0 {
		return nil
	}

	rec := s.getOrCreate(batch.Strategy)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.stats.Issued += int64(len(batch.IDs))
	rec.stats.Batches++
	if !batch.IssuedAt.Before(rec.stats.LastIssuedAt) {
		rec.stats.LastID = batch.Last()
		rec.stats.LastIssuedAt = batch.IssuedAt
	}

	return nil
}

// Stats returns a snapshot for every strategy that has issued IDs, in the
// order of entity.Strategies.
func (s *InMemoryStore) Stats(ctx context.Context) ([]entity.StrategyStats, error) {
	out := make([]entity.StrategyStats, 0, len(entity.Strategies()))
	for _, strategy := range entity.Strategies() {
		st, err := s.StatsFor(ctx, strategy)
		if err != nil {
			continue
		}
		out = append(out, st)
	}

	return out, nil
}

func (s *InMemoryStore) StatsFor(ctx context.Context, strategy entity.Strategy) (entity.StrategyStats, error) {
	s.mu.RLock()
	rec, ok := s.stats[strategy]
	s.mu.RUnlock()
	if !ok {
		return entity.StrategyStats{}, pkgerror.ErrNotFound
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	return rec.stats, nil
}

func (s *InMemoryStore) getOrCreate(strategy entity.Strategy) *statsRecord {
	s.mu.RLock()
	rec, ok := s.stats[strategy]
	s.mu.RUnlock()
	if ok {
		return rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.stats[strategy]; ok {
		return rec
	}

	rec = &statsRecord{stats: entity.StrategyStats{Strategy: strategy}}
	s.stats[strategy] = rec

	return rec
}
