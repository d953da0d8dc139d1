package pkguid

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULID generates lexicographically sortable ULID strings.
type ULID struct{}

func NewULID() *ULID {
	return &ULID{}
}

// Generate returns a new ULID. Entropy is monotonic within a millisecond.
func (u *ULID) Generate() string {
	return ulid.Make().String()
}

func (u *ULID) ParseTime(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return ulid.Time(parsed.Time()).UTC(), nil
}
