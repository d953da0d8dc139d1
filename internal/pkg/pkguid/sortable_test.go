package pkguid

import (
	"errors"
	"testing"
	"time"
)

type sortableID interface {
	StringID
	TimeParser
}

func TestULIDAndKSUIDParseTime(t *testing.T) {
	cases := []struct {
		name      string
		gen       sortableID
		length    int
		precision time.Duration
	}{
		{"ulid", NewULID(), 26, time.Millisecond},
		{"ksuid", NewKSUID(), 27, time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := time.Now().Truncate(tc.precision)
			id := tc.gen.Generate()
			after := time.Now()

			if len(id) != tc.length {
				t.Fatalf("expected length %d, got %q", tc.length, id)
			}

			got, err := tc.gen.ParseTime(id)
			if err != nil {
				t.Fatalf("ParseTime: %v", err)
			}
			if got.Before(before) || got.After(after) {
				t.Fatalf("timestamp %s outside [%s, %s]", got, before, after)
			}

			if _, err := tc.gen.ParseTime("definitely not an id"); !errors.Is(err, ErrInvalidID) {
				t.Fatalf("expected ErrInvalidID, got %v", err)
			}
		})
	}
}

func TestULIDIsSortable(t *testing.T) {
	gen := NewULID()
	prev := gen.Generate()
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		if id <= prev {
			t.Fatalf("expected %q > %q", id, prev)
		}
		prev = id
	}
}
