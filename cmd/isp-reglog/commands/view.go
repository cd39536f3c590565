package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/acamera-isp/ispreg-go/pkg/log"
	"github.com/acamera-isp/ispreg-go/pkg/wire"
)

const timeFormat = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timeFormat)
	session := shortenSessionID(event.SessionID)

	var typeLabel string
	switch {
	case event.Access != nil:
		typeLabel = event.Access.Op.String()
	case event.Frame != nil:
		typeLabel = "Frame"
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [sess:%s] %-3s %s %s\n", ts, session, event.Direction, event.Layer, typeLabel)

	switch {
	case event.Access != nil:
		formatAccessDetails(w, event.Access)
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}
	if event.RemoteAddr != "" {
		fmt.Fprintf(w, "  Remote: %s\n", event.RemoteAddr)
	}

	fmt.Fprintln(w)
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatAccessDetails(w io.Writer, a *log.AccessEvent) {
	if a.Name != "" {
		fmt.Fprintf(w, "  Name: %s", a.Name)
		if a.Index != nil {
			fmt.Fprintf(w, "[%d]", *a.Index)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  Address: 0x%08x\n", a.Address)
	fmt.Fprintf(w, "  Value: 0x%08x (%d)\n", a.Value, a.Value)
	if a.Mask != nil {
		fmt.Fprintf(w, "  Mask: 0x%08x\n", *a.Mask)
	}
	if a.Previous != nil {
		fmt.Fprintf(w, "  Previous: 0x%08x\n", *a.Previous)
	}
}

// formatFrameDetails writes the frame size, its bytes and, for complete
// frames, the decoded CBOR map.
func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if len(frame.Data) == 0 {
		return
	}
	fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
	if frame.Truncated {
		fmt.Fprint(w, " (truncated)")
	}
	fmt.Fprintln(w)

	if frame.Truncated {
		return
	}
	var m map[uint64]any
	if err := wire.Unmarshal(frame.Data, &m); err == nil {
		fmt.Fprintf(w, "  Decoded: %v\n", m)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity)
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer)
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// RunView prints every event matching filter. In compact mode each event
// is one line.
func RunView(path string, filter log.Filter, compact bool, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if compact {
			formatCompact(output, event)
		} else {
			formatEvent(output, event)
		}
	}

	return nil
}

// formatCompact writes one line per event.
func formatCompact(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timeFormat)
	session := shortenSessionID(event.SessionID)
	switch {
	case event.Access != nil:
		fmt.Fprintf(w, "%s %s %-5s %s\n", ts, session, event.Layer, event.Access)
	case event.Frame != nil:
		fmt.Fprintf(w, "%s %s %-5s %s %d bytes\n", ts, session, event.Layer, event.Direction, event.Frame.Size)
	case event.StateChange != nil:
		fmt.Fprintf(w, "%s %s STATE %s %s\n", ts, session, event.StateChange.Entity, event.StateChange.NewState)
	case event.Error != nil:
		fmt.Fprintf(w, "%s %s ERROR %s\n", ts, session, event.Error.Message)
	}
}
