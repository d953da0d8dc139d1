package event

import (
	"context"
	"errors"
	"log/slog"

	"github.com/michaelosthege/hagelkorn/internal/keygen/entity"
)

// LogAlerter reports overflow events as warnings. Once the horizon is passed
// new IDs are one symbol wider and no longer sort against older ones.
type LogAlerter struct{}

func (LogAlerter) Handle(ctx context.Context, event entity.OverflowEvent) error {
	if event.EventID == "" {
		return errors.New("missing event id")
	}

	slog.WarnContext(ctx, "monotonic ids exceeded the configured digit count",
		"event_id", event.EventID,
		"id", event.ID,
		"digits", event.Digits,
		"width", event.Width,
		"issued_at", event.IssuedAt,
	)
	return nil
}
