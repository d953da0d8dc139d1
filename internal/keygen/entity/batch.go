package entity

import "time"

type Batch struct {
	Strategy Strategy
	IDs      []string
	IssuedAt time.Time
}

// Last returns the final ID of the batch or "" when it is empty.
func (b Batch) Last() string {
	if len(b.IDs) == 0 {
		return ""
	}
	return b.IDs[len(b.IDs)-1]
}

type StrategyStats struct {
	Strategy     Strategy
	Issued       int64
	Batches      int64
	LastID       string
	LastIssuedAt time.Time
}
