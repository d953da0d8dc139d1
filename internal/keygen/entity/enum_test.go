package entity

import "testing"

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
		ok   bool
	}{
		{"monotonic", StrategyMonotonic, true},
		{" Random ", StrategyRandom, true},
		{"uuid", StrategyUUID, true},
		{"ULID", StrategyULID, true},
		{"ksuid", StrategyKSUID, true},
		{"nanoid", StrategyNanoID, true},
		{"cuid2", StrategyCUID2, true},
		{"snowflake", StrategySnowflake, true},
		{"guid", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseStrategy(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseStrategy(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTimeOrdered(t *testing.T) {
	ordered := map[Strategy]bool{
		StrategyMonotonic: true,
		StrategyRandom:    false,
		StrategyUUID:      true,
		StrategyULID:      true,
		StrategyKSUID:     true,
		StrategyNanoID:    false,
		StrategyCUID2:     false,
		StrategySnowflake: true,
	}

	if len(ordered) != len(Strategies()) {
		t.Fatalf("expected every strategy to be covered")
	}
	for s, want := range ordered {
		if got := s.TimeOrdered(); got != want {
			t.Fatalf("%s.TimeOrdered() = %v, want %v", s, got, want)
		}
	}
}

func TestBatchLast(t *testing.T) {
	if got := (Batch{}).Last(); got != "" {
		t.Fatalf("expected empty last id, got %q", got)
	}
	if got := (Batch{IDs: []string{"a", "b"}}).Last(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}
