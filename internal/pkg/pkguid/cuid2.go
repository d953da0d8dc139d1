package pkguid

import (
	"fmt"

	"github.com/nrednav/cuid2"
)

const DefaultCUID2Length = 24

// CUID2 generates collision-resistant IDs that do not leak creation time.
type CUID2 struct {
	generate func() string
}

// NewCUID2 returns a generator of length-character IDs; length must be
// between 2 and 32.
func NewCUID2(length int) (*CUID2, error) {
	if length < 2 || length > 32 {
		return nil, fmt.Errorf("cuid2 length must be between 2 and 32, got %d", length)
	}

	gen, err := cuid2.Init(cuid2.WithLength(length))
	if err != nil {
		return nil, fmt.Errorf("failed to init cuid2 generator: %w", err)
	}

	return &CUID2{generate: gen}, nil
}

func (c *CUID2) Generate() string {
	return c.generate()
}
