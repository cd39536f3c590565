package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful during bring-up when you want to see register traffic in a console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote", event.RemoteAddr))
	}

	switch {
	case event.Access != nil:
		acc := event.Access
		attrs = append(attrs,
			slog.String("op", acc.Op.String()),
			slog.String("addr", hex32(acc.Address)),
			slog.String("value", hex32(acc.Value)),
		)
		if acc.Mask != nil {
			attrs = append(attrs, slog.String("mask", hex32(*acc.Mask)))
		}
		if acc.Previous != nil {
			attrs = append(attrs, slog.String("prev", hex32(*acc.Previous)))
		}
		if acc.Name != "" {
			attrs = append(attrs, slog.String("name", acc.Name))
		}
		if acc.Index != nil {
			attrs = append(attrs, slog.Uint64("index", uint64(*acc.Index)))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Frame != nil:
		attrs = append(attrs,
			slog.String("direction", event.Direction.String()),
			slog.Int("size", event.Frame.Size),
		)
		if event.Frame.Truncated {
			attrs = append(attrs, slog.Bool("truncated", true))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "regtrace", attrs...)
}

func hex32(v uint32) string { return fmt.Sprintf("0x%08x", v) }

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
