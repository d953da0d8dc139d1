package entity

import "strings"

type Strategy string

const (
	StrategyMonotonic Strategy = "MONOTONIC"
	StrategyRandom    Strategy = "RANDOM"
	StrategyUUID      Strategy = "UUID"
	StrategyULID      Strategy = "ULID"
	StrategyKSUID     Strategy = "KSUID"
	StrategyNanoID    Strategy = "NANOID"
	StrategyCUID2     Strategy = "CUID2"
	StrategySnowflake Strategy = "SNOWFLAKE"
)

// Strategies lists every strategy in display order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyMonotonic,
		StrategyRandom,
		StrategyUUID,
		StrategyULID,
		StrategyKSUID,
		StrategyNanoID,
		StrategyCUID2,
		StrategySnowflake,
	}
}

// ParseStrategy is case-insensitive.
func ParseStrategy(value string) (Strategy, bool) {
	s := Strategy(strings.ToUpper(strings.TrimSpace(value)))
	for _, known := range Strategies() {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// TimeOrdered reports whether IDs of s sort by creation time.
func (s Strategy) TimeOrdered() bool {
	switch s {
	case StrategyMonotonic, StrategyUUID, StrategyULID, StrategyKSUID, StrategySnowflake:
		return true
	default:
		return false
	}
}
