package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func newJSONAdapter(buf *bytes.Buffer) *SlogAdapter {
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogAdapter(slog.New(h))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	return m
}

func TestSlogAdapterAccessEvent(t *testing.T) {
	var buf bytes.Buffer
	adapter := newJSONAdapter(&buf)

	mask := uint32(0xffff)
	idx := uint32(3)
	adapter.Log(Event{
		Timestamp:  time.Now(),
		SessionID:  "sess",
		Layer:      LayerLUT,
		Category:   CategoryAccess,
		RemoteAddr: "10.0.0.1:7878",
		Access: &AccessEvent{
			Op:      OpModify,
			Address: 0x200,
			Value:   0x7f,
			Mask:    &mask,
			Name:    "shading_lut",
			Index:   &idx,
		},
	})

	m := decodeLine(t, &buf)
	want := map[string]any{
		"msg":      "regtrace",
		"level":    "DEBUG",
		"session":  "sess",
		"layer":    "LUT",
		"category": "ACCESS",
		"remote":   "10.0.0.1:7878",
		"op":       "MODIFY",
		"addr":     "0x00000200",
		"value":    "0x0000007f",
		"mask":     "0x0000ffff",
		"name":     "shading_lut",
		"index":    float64(3),
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %v, want %v", k, m[k], v)
		}
	}
	if _, ok := m["prev"]; ok {
		t.Error("prev present without Previous")
	}
}

func TestSlogAdapterStateAndError(t *testing.T) {
	var buf bytes.Buffer
	adapter := newJSONAdapter(&buf)

	adapter.Log(Event{
		Category: CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   StateEntityHardware,
			OldState: "RUNNING",
			NewState: "RESET",
			Reason:   "restore",
		},
	})
	m := decodeLine(t, &buf)
	if m["entity"] != "HARDWARE" || m["new_state"] != "RESET" || m["reason"] != "restore" {
		t.Errorf("unexpected state attrs: %v", m)
	}

	buf.Reset()
	code := 4
	adapter.Log(Event{
		Category: CategoryError,
		Error: &ErrorEventData{
			Layer:   LayerTransport,
			Message: "frame too large",
			Code:    &code,
		},
	})
	m = decodeLine(t, &buf)
	if m["error_layer"] != "TRANSPORT" || m["error_msg"] != "frame too large" {
		t.Errorf("unexpected error attrs: %v", m)
	}
	if m["error_code"] != float64(4) {
		t.Errorf("error_code = %v, want 4", m["error_code"])
	}
}

func TestSlogAdapterSuppressedAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(h)).Log(Event{Access: &AccessEvent{}})
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
