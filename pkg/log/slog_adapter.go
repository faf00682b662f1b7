package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes pairing events to an slog.Logger.
// Useful for development when you want to see events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Errors are logged at Error
// level, everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	// Add optional identifiers
	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", event.SessionID))
	}
	if event.DeviceID != "" {
		attrs = append(attrs, slog.String("device_id", event.DeviceID))
	}
	if event.DeviceName != "" {
		attrs = append(attrs, slog.String("device_name", event.DeviceName))
	}

	// Add type-specific attributes
	switch {
	case event.Candidate != nil:
		attrs = append(attrs,
			slog.Bool("matched", event.Candidate.Matched),
			slog.Bool("known", event.Candidate.Known),
		)
		if event.Candidate.Path != "" {
			attrs = append(attrs, slog.String("path", event.Candidate.Path))
		}
	case event.Report != nil:
		attrs = append(attrs,
			slog.String("report_id", fmt.Sprintf("0x%02X", event.Report.ReportID)),
			slog.Int("size", event.Report.Size),
		)
	case event.StateChange != nil:
		if event.StateChange.OldState != "" {
			attrs = append(attrs, slog.String("old_state", event.StateChange.OldState))
		}
		attrs = append(attrs, slog.String("new_state", event.StateChange.NewState))
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if event.Error.Operation != "" {
			attrs = append(attrs, slog.String("operation", event.Error.Operation))
		}
	}

	level := slog.LevelDebug
	if event.Category == CategoryError {
		level = slog.LevelError
	}
	a.logger.LogAttrs(context.Background(), level, "pairing event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
