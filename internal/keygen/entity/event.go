package entity

import "time"

// OverflowEvent is raised when a monotonic ID is wider than the configured
// digit count, meaning the generator has outlived its overflow horizon.
type OverflowEvent struct {
	EventID  string
	ID       string
	Digits   int
	Width    int
	IssuedAt time.Time
}
