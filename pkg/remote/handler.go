package remote

import (
	"fmt"
	"sync"

	"github.com/acamera-isp/ispreg-go/pkg/log"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
	"github.com/acamera-isp/ispreg-go/pkg/transport"
	"github.com/acamera-isp/ispreg-go/pkg/wire"
)

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// Space is the register space to serve.
	Space regspace.Space

	// Base and Size bound the served window. A zero Size serves the whole
	// 32-bit address space.
	Base uint32
	Size uint32

	// ReadOnly rejects every write.
	ReadOnly bool

	// Logger receives a word-layer event for every access (optional).
	Logger log.Logger
}

// Handler answers wire requests against a register space. Requests from
// all connections are serialized, so ModifyWord is atomic across clients.
type Handler struct {
	config HandlerConfig
	space  *regspace.Locked

	statsMu sync.Mutex
	stats   map[wire.Operation]uint64
}

// NewHandler creates a Handler.
func NewHandler(config HandlerConfig) *Handler {
	return &Handler{
		config: config,
		space:  regspace.NewLocked(config.Space),
		stats:  make(map[wire.Operation]uint64),
	}
}

// Stats returns the number of requests served per operation.
func (h *Handler) Stats() map[wire.Operation]uint64 {
	h.statsMu.Lock()
	defer h.statsMu.Unlock()
	out := make(map[wire.Operation]uint64, len(h.stats))
	for op, n := range h.stats {
		out[op] = n
	}
	return out
}

// ServeFrame decodes one request frame, executes it and sends the response.
// It has the signature of transport.ServerConfig.OnMessage.
func (h *Handler) ServeFrame(conn *transport.ServerConn, data []byte) {
	req, err := wire.DecodeRequest(data)
	var resp *wire.Response
	switch {
	case req == nil:
		// Undecodable; there is no message ID to answer.
		return
	case err != nil:
		resp = wire.ErrorResponse(req.MessageID, statusFor(err), err.Error())
	default:
		resp = h.HandleRequest(req, conn.SessionID())
	}

	out, err := wire.EncodeResponse(resp)
	if err != nil {
		return
	}
	_ = conn.Send(out)
}

// HandleRequest executes a validated request. sessionID tags the trace
// events of the accesses it performs.
func (h *Handler) HandleRequest(req *wire.Request, sessionID string) *wire.Response {
	h.statsMu.Lock()
	h.stats[req.Operation]++
	h.statsMu.Unlock()

	if req.Operation == wire.OpPing {
		return &wire.Response{MessageID: req.MessageID}
	}
	if h.config.ReadOnly && req.Operation.IsWrite() {
		return wire.ErrorResponse(req.MessageID, wire.StatusReadOnly, "server is read-only")
	}
	if err := h.checkWindow(req); err != nil {
		return wire.ErrorResponse(req.MessageID, wire.StatusOutOfRange, err.Error())
	}

	space := regspace.NewTraced(h.space, h.config.Logger, sessionID)
	resp := &wire.Response{MessageID: req.MessageID}

	switch req.Operation {
	case wire.OpReadWord:
		resp.Value = space.ReadWord(req.Address)
	case wire.OpWriteWord:
		space.WriteWord(req.Address, req.Value)
	case wire.OpModifyWord:
		resp.Value = space.ModifyWord(req.Address, req.Mask, req.Value)
	case wire.OpReadWords:
		resp.Values = make([]uint32, req.Count)
		for i := range resp.Values {
			resp.Values[i] = space.ReadWord(req.Address + uint32(i)*regspace.WordSize)
		}
	case wire.OpWriteWords:
		for i, v := range req.Values {
			space.WriteWord(req.Address+uint32(i)*regspace.WordSize, v)
		}
	default:
		return wire.ErrorResponse(req.MessageID, wire.StatusUnsupported, req.Operation.String())
	}

	if e, ok := h.config.Space.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return wire.ErrorResponse(req.MessageID, wire.StatusInternal, err.Error())
		}
	}
	return resp
}

func (h *Handler) checkWindow(req *wire.Request) error {
	if h.config.Size == 0 {
		return nil
	}
	words := uint64(1)
	switch req.Operation {
	case wire.OpReadWords:
		words = uint64(req.Count)
	case wire.OpWriteWords:
		words = uint64(len(req.Values))
	}
	lo := uint64(h.config.Base)
	hi := lo + uint64(h.config.Size)
	if uint64(req.Address) < lo || uint64(req.Address)+words*regspace.WordSize > hi {
		return fmt.Errorf("0x%x outside [0x%x..0x%x)", req.Address, lo, hi)
	}
	return nil
}
