package remote

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/regspace"
	"github.com/acamera-isp/ispreg-go/pkg/transport"
	"github.com/acamera-isp/ispreg-go/pkg/wire"
)

// DefaultTimeout bounds each word access made through the Space methods.
const DefaultTimeout = 5 * time.Second

// Conn is the frame connection a Space talks over.
// Implemented by *transport.ClientConn.
type Conn interface {
	Send(data []byte) error
	Receive(timeout time.Duration) ([]byte, error)
	Close() error
}

// Space is a register space on a remote server.
type Space struct {
	conn    Conn
	timeout atomic.Int64 // time.Duration

	nextMsgID atomic.Uint32

	pendingMu sync.Mutex
	pending   map[uint32]chan *wire.Response
	closed    bool
	closeErr  error

	errMu sync.Mutex
	err   error

	done chan struct{}
}

// Dial connects to a register server and returns a Space for it.
func Dial(ctx context.Context, address string, config transport.ClientConfig) (*Space, error) {
	conn, err := transport.NewClient(config).Connect(ctx, address)
	if err != nil {
		return nil, err
	}
	return NewSpace(conn), nil
}

// NewSpace starts a Space on an established connection. The Space owns conn
// and closes it on Close.
func NewSpace(conn Conn) *Space {
	s := &Space{
		conn:    conn,
		pending: make(map[uint32]chan *wire.Response),
		done:    make(chan struct{}),
	}
	s.timeout.Store(int64(DefaultTimeout))
	go s.receiveLoop()
	return s
}

// SetTimeout sets the per-access timeout of the word methods.
func (s *Space) SetTimeout(d time.Duration) {
	s.timeout.Store(int64(d))
}

// Err returns the first error seen by a word access, or nil.
func (s *Space) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *Space) fail(err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// ReadWord implements regspace.Space.
func (s *Space) ReadWord(addr uint32) uint32 {
	resp := s.do(&wire.Request{Operation: wire.OpReadWord, Address: addr})
	if resp == nil {
		return 0
	}
	return resp.Value
}

// WriteWord implements regspace.Space.
func (s *Space) WriteWord(addr uint32, v uint32) {
	s.do(&wire.Request{Operation: wire.OpWriteWord, Address: addr, Value: v})
}

// ModifyWord implements regspace.Modifier. The update runs on the server as
// one read and one write, atomic with respect to its other clients.
func (s *Space) ModifyWord(addr uint32, mask uint32, bits uint32) uint32 {
	resp := s.do(&wire.Request{Operation: wire.OpModifyWord, Address: addr, Mask: mask, Value: bits})
	if resp == nil {
		return 0
	}
	return resp.Value
}

// do runs a word access with the sticky error discipline.
func (s *Space) do(req *wire.Request) *wire.Response {
	if s.Err() != nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.timeout.Load()))
	defer cancel()
	resp, err := s.Call(ctx, req)
	if err != nil {
		s.fail(err)
		return nil
	}
	return resp
}

// ReadWords reads n consecutive words starting at addr.
func (s *Space) ReadWords(ctx context.Context, addr uint32, n int) ([]uint32, error) {
	out := make([]uint32, 0, n)
	for len(out) < n {
		count := n - len(out)
		if count > wire.MaxBurst {
			count = wire.MaxBurst
		}
		resp, err := s.Call(ctx, &wire.Request{
			Operation: wire.OpReadWords,
			Address:   addr + uint32(len(out))*regspace.WordSize,
			Count:     uint16(count),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, resp.Values...)
	}
	return out, nil
}

// WriteWords writes values to consecutive words starting at addr, in
// ascending address order.
func (s *Space) WriteWords(ctx context.Context, addr uint32, values []uint32) error {
	for start := 0; start < len(values); start += wire.MaxBurst {
		end := start + wire.MaxBurst
		if end > len(values) {
			end = len(values)
		}
		_, err := s.Call(ctx, &wire.Request{
			Operation: wire.OpWriteWords,
			Address:   addr + uint32(start)*regspace.WordSize,
			Values:    values[start:end],
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Ping checks that the server answers.
func (s *Space) Ping(ctx context.Context) error {
	_, err := s.Call(ctx, &wire.Request{Operation: wire.OpPing})
	return err
}

// Call sends a request and waits for its response. The MessageID is
// assigned here. A response with a failure status is returned as a
// *StatusError.
func (s *Space) Call(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	req.MessageID = s.nextMessageID()

	data, err := wire.EncodeRequest(req)
	if err != nil {
		return nil, err
	}

	respCh := make(chan *wire.Response, 1)
	s.pendingMu.Lock()
	if s.closed {
		err := s.closeErr
		s.pendingMu.Unlock()
		return nil, err
	}
	s.pending[req.MessageID] = respCh
	s.pendingMu.Unlock()

	defer func() {
		s.pendingMu.Lock()
		delete(s.pending, req.MessageID)
		s.pendingMu.Unlock()
	}()

	if err := s.conn.Send(data); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrRequestTimeout
		}
		return nil, ctx.Err()
	case resp, ok := <-respCh:
		if !ok {
			return nil, s.closedErr()
		}
		if !resp.IsSuccess() {
			return nil, &StatusError{Status: resp.Status, Message: resp.Message}
		}
		return resp, nil
	}
}

func (s *Space) nextMessageID() uint32 {
	for {
		if id := s.nextMsgID.Add(1); id != 0 {
			return id
		}
	}
}

// receiveLoop routes responses to waiting calls until the connection fails.
func (s *Space) receiveLoop() {
	defer close(s.done)
	for {
		data, err := s.conn.Receive(0)
		if err != nil {
			s.shutdown(err)
			return
		}
		resp, err := wire.DecodeResponse(data)
		if err != nil {
			continue
		}

		s.pendingMu.Lock()
		if ch, ok := s.pending[resp.MessageID]; ok {
			select {
			case ch <- resp:
			default:
				// Duplicate response; the first one wins.
			}
		}
		s.pendingMu.Unlock()
	}
}

// shutdown fails every pending call.
func (s *Space) shutdown(cause error) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.closeErr = ErrClosed
	if cause != nil && cause != transport.ErrConnectionClosed {
		s.closeErr = &closedError{cause: cause}
	}
	for id, ch := range s.pending {
		close(ch)
		delete(s.pending, id)
	}
}

func (s *Space) closedErr() error {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	return s.closeErr
}

// Close closes the connection and fails pending calls.
func (s *Space) Close() error {
	s.shutdown(nil)
	err := s.conn.Close()
	<-s.done
	return err
}

// closedError reports the connection failure that closed the space.
type closedError struct {
	cause error
}

func (e *closedError) Error() string { return ErrClosed.Error() + ": " + e.cause.Error() }

func (e *closedError) Unwrap() []error { return []error{ErrClosed, e.cause} }

// Compile-time interface satisfaction checks.
var (
	_ regspace.Space    = (*Space)(nil)
	_ regspace.Modifier = (*Space)(nil)
	_ Conn              = (*transport.ClientConn)(nil)
)
