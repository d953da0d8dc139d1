package pkguid

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
)

// KSUID generates 27 character K-sortable IDs with second precision.
type KSUID struct{}

func NewKSUID() *KSUID {
	return &KSUID{}
}

func (k *KSUID) Generate() string {
	return ksuid.New().String()
}

func (k *KSUID) ParseTime(id string) (time.Time, error) {
	parsed, err := ksuid.Parse(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return parsed.Time().UTC(), nil
}
