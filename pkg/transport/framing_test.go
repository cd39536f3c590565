package transport

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/acamera-isp/ispreg-go/pkg/log"
)

func TestFrameWriterReader(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"small message", []byte("hello")},
		{"burst sized", bytes.Repeat([]byte{0x1a}, 5*1024)},
		{"max size message", bytes.Repeat([]byte("y"), DefaultMaxMessageSize)},
		{"single byte", []byte{0x42}},
		{"binary data", []byte{0x00, 0xFF, 0x7F, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)

			if err := NewFrameWriter(buf, 0).WriteFrame(tt.payload); err != nil {
				t.Fatalf("WriteFrame failed: %v", err)
			}
			if buf.Len() != FrameSize(len(tt.payload)) {
				t.Errorf("frame size = %d, want %d", buf.Len(), FrameSize(len(tt.payload)))
			}

			got, err := NewFrameReader(buf, 0).ReadFrame()
			if err != nil {
				t.Fatalf("ReadFrame failed: %v", err)
			}
			if !bytes.Equal(got, tt.payload) {
				t.Errorf("payload mismatch: got %d bytes, want %d bytes", len(got), len(tt.payload))
			}
		})
	}
}

func TestFramePrefixIsBigEndian(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := NewFrameWriter(buf, 0).WriteFrame(bytes.Repeat([]byte{1}, 0x0102)); err != nil {
		t.Fatal(err)
	}
	if got := buf.Bytes()[:4]; !bytes.Equal(got, []byte{0, 0, 0x01, 0x02}) {
		t.Errorf("prefix = % x, want 00 00 01 02", got)
	}
}

func TestFrameWriterErrors(t *testing.T) {
	w := NewFrameWriter(new(bytes.Buffer), 8)
	if err := w.WriteFrame(nil); !errors.Is(err, ErrMessageEmpty) {
		t.Errorf("empty: err = %v, want ErrMessageEmpty", err)
	}
	if err := w.WriteFrame(make([]byte, 9)); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("large: err = %v, want ErrMessageTooLarge", err)
	}
}

func TestFrameReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"eof", nil, io.EOF},
		{"empty length", []byte{0, 0, 0, 0}, ErrMessageEmpty},
		{"too large", []byte{0, 0, 0, 9, 1, 2, 3, 4, 5, 6, 7, 8, 9}, ErrMessageTooLarge},
		{"truncated length", []byte{0, 0}, ErrFrameTruncated},
		{"truncated payload", []byte{0, 0, 0, 5, 1, 2}, ErrFrameTruncated},
		{"missing payload", []byte{0, 0, 0, 5}, ErrFrameTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrameReader(bytes.NewReader(tt.input), 8).ReadFrame()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMultipleFrames(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewFrameWriter(buf, 0)
	msgs := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	for _, m := range msgs {
		if err := w.WriteFrame(m); err != nil {
			t.Fatal(err)
		}
	}

	r := NewFrameReader(buf, 0)
	for i, want := range msgs {
		got, err := r.ReadFrame()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("frame %d = %q, want %q", i, got, want)
		}
	}
	if _, err := r.ReadFrame(); err != io.EOF {
		t.Errorf("after last frame err = %v, want io.EOF", err)
	}
}

type readWriter struct {
	r io.Reader
	w io.Writer
}

func (rw *readWriter) Read(p []byte) (int, error)  { return rw.r.Read(p) }
func (rw *readWriter) Write(p []byte) (int, error) { return rw.w.Write(p) }

func TestFramerBidirectional(t *testing.T) {
	r, w := io.Pipe()
	defer r.Close()
	defer w.Close()

	logger := &capturingLogger{}
	done := make(chan error, 1)
	go func() {
		f := NewFramer(&readWriter{r: r, w: w}, 0)
		f.SetLogger(logger, "session-789")
		done <- f.WriteFrame([]byte("test"))
	}()

	f := NewFramer(&readWriter{r: r, w: w}, 0)
	f.SetLogger(logger, "session-789")
	got, err := f.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if string(got) != "test" {
		t.Errorf("got %q", got)
	}

	events := logger.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, e := range events {
		if e.SessionID != "session-789" {
			t.Errorf("SessionID = %q, want session-789", e.SessionID)
		}
	}
}

// capturingLogger captures log events for testing.
type capturingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *capturingLogger) Log(event log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *capturingLogger) Events() []log.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]log.Event(nil), l.events...)
}

func TestFrameLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := &capturingLogger{}

	w := NewFrameWriter(buf, 0)
	w.SetLogger(logger, "session-1")
	if err := w.WriteFrame([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	r := NewFrameReader(buf, 0)
	r.SetLogger(logger, "session-2")
	if _, err := r.ReadFrame(); err != nil {
		t.Fatal(err)
	}

	events := logger.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	out, in := events[0], events[1]
	if out.Direction != log.DirectionOut || in.Direction != log.DirectionIn {
		t.Errorf("directions = %v, %v", out.Direction, in.Direction)
	}
	if out.SessionID != "session-1" || in.SessionID != "session-2" {
		t.Errorf("sessions = %q, %q", out.SessionID, in.SessionID)
	}
	for _, e := range events {
		if e.Layer != log.LayerTransport || e.Category != log.CategoryMessage {
			t.Errorf("layer/category = %v/%v", e.Layer, e.Category)
		}
		if e.Frame == nil || e.Frame.Size != FrameSize(5) || string(e.Frame.Data) != "hello" {
			t.Errorf("frame = %+v", e.Frame)
		}
	}
}

func TestFrameLoggingTruncatesData(t *testing.T) {
	logger := &capturingLogger{}
	w := NewFrameWriter(new(bytes.Buffer), 0)
	w.SetLogger(logger, "session-trunc")

	large := bytes.Repeat([]byte("x"), 5000)
	if err := w.WriteFrame(large); err != nil {
		t.Fatal(err)
	}

	e := logger.Events()[0]
	if e.Frame.Size != FrameSize(len(large)) {
		t.Errorf("Frame.Size = %d, want %d", e.Frame.Size, FrameSize(len(large)))
	}
	if len(e.Frame.Data) != MaxLogFrameDataSize || !e.Frame.Truncated {
		t.Errorf("Frame data = %d bytes truncated=%v", len(e.Frame.Data), e.Frame.Truncated)
	}
}

func TestFramerNoLoggerNoPanic(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewFrameWriter(buf, 0)
	w.SetLogger(nil, "session")
	if err := w.WriteFrame([]byte("hello")); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	if _, err := NewFrameReader(buf, 0).ReadFrame(); err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
}
