package pkguid

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUID generates RFC 9562 version 7 UUID strings.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string.
func (u *UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ParseTime returns the millisecond timestamp of a version 7 UUID.
func (u *UUID) ParseTime(id string) (time.Time, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	if parsed.Version() != 7 {
		return time.Time{}, fmt.Errorf("%w: expected uuid v7, got v%d", ErrInvalidID, parsed.Version())
	}

	ms := int64(binary.BigEndian.Uint64(parsed[:8]) >> 16)
	return time.UnixMilli(ms).UTC(), nil
}
