package log

import (
	"sync"
	"testing"
	"time"
)

// recordingLogger keeps every event it receives.
type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestMultiLoggerFansOut(t *testing.T) {
	l1 := &recordingLogger{}
	l2 := &recordingLogger{}

	multi := NewMultiLogger(l1, l2)
	multi.Log(Event{
		Timestamp: time.Now(),
		SessionID: "s",
		Access:    &AccessEvent{Op: OpRead, Address: 0x4c},
	})

	for i, l := range []*recordingLogger{l1, l2} {
		if len(l.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(l.events))
			continue
		}
		if l.events[0].Access.Address != 0x4c {
			t.Errorf("logger %d: address = 0x%x, want 0x4c", i, l.events[0].Access.Address)
		}
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	rec := &recordingLogger{}
	multi := NewMultiLogger(nil, rec, nil)

	multi.Log(Event{Timestamp: time.Now()})

	if len(multi.loggers) != 1 {
		t.Errorf("got %d loggers, want 1", len(multi.loggers))
	}
	if len(rec.events) != 1 {
		t.Errorf("got %d events, want 1", len(rec.events))
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{Timestamp: time.Now()})
}
