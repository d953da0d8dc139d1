package pkguid

import (
	"errors"
	"strconv"
	"time"

	"github.com/michaelosthege/hagelkorn/internal/pkg/pkghagel"
)

// ErrInvalidID is returned by TimeParser implementations for malformed IDs.
var ErrInvalidID = errors.New("invalid id")

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}

// TimeParser reads the creation time embedded in an ID.
type TimeParser interface {
	ParseTime(id string) (time.Time, error)
}

var (
	_ StringID = (*pkghagel.Generator)(nil)
	_ StringID = (*pkghagel.RandomGenerator)(nil)
)

// AsString exposes a NumberID as a StringID using base-10 formatting.
func AsString(id NumberID) StringID {
	return numberString{id: id}
}

type numberString struct {
	id NumberID
}

func (n numberString) Generate() string {
	return strconv.FormatInt(n.id.Generate(), 10)
}
