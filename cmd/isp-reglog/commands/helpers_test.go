package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/log"
)

var testTime = time.Date(2026, 3, 4, 9, 30, 0, 250000000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.rlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}
	return path
}

func ptr[T any](v T) *T {
	return &v
}

// sampleEvents is a short trace of one local session and one remote
// session.
func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: testTime,
			SessionID: "11111111-aaaa-bbbb-cccc-000000000001",
			Layer:     log.LayerField,
			Category:  log.CategoryAccess,
			Access:    &log.AccessEvent{Op: log.OpWrite, Address: 0x18e88, Value: 1280, Name: "isp_top/active_width"},
		},
		{
			Timestamp: testTime.Add(time.Millisecond),
			SessionID: "11111111-aaaa-bbbb-cccc-000000000001",
			Layer:     log.LayerWord,
			Category:  log.CategoryAccess,
			Access:    &log.AccessEvent{Op: log.OpRead, Address: 0x18e8c, Value: 2},
		},
		{
			Timestamp:  testTime.Add(2 * time.Millisecond),
			SessionID:  "22222222-aaaa-bbbb-cccc-000000000002",
			Layer:      log.LayerTransport,
			Category:   log.CategoryMessage,
			RemoteAddr: "192.168.1.20:50312",
			Direction:  log.DirectionIn,
			Frame:      &log.FrameEvent{Size: 16, Data: []byte{0xa2, 0x01, 0x07, 0x02, 0x06}},
		},
		{
			Timestamp: testTime.Add(3 * time.Millisecond),
			SessionID: "22222222-aaaa-bbbb-cccc-000000000002",
			Layer:     log.LayerLUT,
			Category:  log.CategoryAccess,
			Access:    &log.AccessEvent{Op: log.OpModify, Address: 0x1b004, Value: 0x7f, Mask: ptr(uint32(0xff00)), Previous: ptr(uint32(0)), Name: "noise_profile/weight_lut", Index: ptr(uint32(5))},
		},
		{
			Timestamp: testTime.Add(4 * time.Millisecond),
			SessionID: "22222222-aaaa-bbbb-cccc-000000000002",
			Layer:     log.LayerTransport,
			Category:  log.CategoryError,
			Error:     &log.ErrorEventData{Layer: log.LayerTransport, Message: "connection reset", Context: "read frame"},
		},
		{
			Timestamp: testTime.Add(5 * time.Millisecond),
			SessionID: "22222222-aaaa-bbbb-cccc-000000000002",
			Layer:     log.LayerTransport,
			Category:  log.CategoryState,
			StateChange: &log.StateChangeEvent{
				Entity:   log.StateEntityConnection,
				OldState: "open",
				NewState: "closed",
				Reason:   "peer closed",
			},
		},
	}
}
