package pkguid

import "testing"

type counter struct {
	n int64
}

func (c *counter) Generate() int64 {
	c.n++
	return c.n * 1000
}

func TestAsString(t *testing.T) {
	id := AsString(&counter{})
	if got := id.Generate(); got != "1000" {
		t.Fatalf("expected 1000, got %q", got)
	}
	if got := id.Generate(); got != "2000" {
		t.Fatalf("expected 2000, got %q", got)
	}
}
