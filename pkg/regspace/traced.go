package regspace

import (
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/log"
)

// Traced forwards every access to an underlying Space and reports it to a
// trace logger as a word-layer event. Accesses are forwarded unchanged: a
// repeated write is logged and performed again.
type Traced struct {
	space     Space
	logger    log.Logger
	sessionID string
	now       func() time.Time
}

// NewTraced wraps s. A nil logger disables tracing.
func NewTraced(s Space, logger log.Logger, sessionID string) *Traced {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Traced{
		space:     s,
		logger:    logger,
		sessionID: sessionID,
		now:       time.Now,
	}
}

// ReadWord implements Space.
func (t *Traced) ReadWord(addr uint32) uint32 {
	v := t.space.ReadWord(addr)
	t.emit(&log.AccessEvent{Op: log.OpRead, Address: addr, Value: v})
	return v
}

// WriteWord implements Space.
func (t *Traced) WriteWord(addr uint32, v uint32) {
	t.space.WriteWord(addr, v)
	t.emit(&log.AccessEvent{Op: log.OpWrite, Address: addr, Value: v})
}

// ModifyWord implements Modifier. The update is delegated to the underlying
// space, so it is atomic exactly when that space is.
func (t *Traced) ModifyWord(addr uint32, mask uint32, bits uint32) uint32 {
	prev := Modify(t.space, addr, mask, bits)
	t.emit(&log.AccessEvent{
		Op:       log.OpModify,
		Address:  addr,
		Value:    Merge(prev, mask, bits),
		Mask:     &mask,
		Previous: &prev,
	})
	return prev
}

// Unwrap returns the underlying space.
func (t *Traced) Unwrap() Space { return t.space }

func (t *Traced) emit(a *log.AccessEvent) {
	t.logger.Log(log.Event{
		Timestamp: t.now(),
		SessionID: t.sessionID,
		Layer:     log.LayerWord,
		Category:  log.CategoryAccess,
		Access:    a,
	})
}

var (
	_ Space    = (*Traced)(nil)
	_ Modifier = (*Traced)(nil)
)
