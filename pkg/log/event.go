package log

import (
	"fmt"
	"time"
)

// Event represents a trace event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the tracing session or remote connection (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// RemoteAddr is the peer address (IP:port) for remote sessions.
	RemoteAddr string `cbor:"5,keyasint,omitempty"`

	// Direction of a transport frame.
	Direction Direction `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Access      *AccessEvent      `cbor:"10,keyasint,omitempty"` // Word, field and LUT accesses
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"` // Session state
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"` // Errors at any layer
	Frame       *FrameEvent       `cbor:"13,keyasint,omitempty"` // Remote protocol frames
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerWord is the raw register space (ReadWord/WriteWord).
	LayerWord Layer = 0
	// LayerField is a named bitfield access.
	LayerField Layer = 1
	// LayerLUT is an indexed look-up-table access.
	LayerLUT Layer = 2
	// LayerTransport is the remote register protocol.
	LayerTransport Layer = 3
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerWord:
		return "WORD"
	case LayerField:
		return "FIELD"
	case LayerLUT:
		return "LUT"
	case LayerTransport:
		return "TRANSPORT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryAccess indicates a register access.
	CategoryAccess Category = 0
	// CategoryState indicates a state change.
	CategoryState Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
	// CategoryMessage indicates a transport frame.
	CategoryMessage Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAccess:
		return "ACCESS"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	case CategoryMessage:
		return "MESSAGE"
	default:
		return "UNKNOWN"
	}
}

// Direction indicates whether a frame was received or sent.
type Direction uint8

const (
	// DirectionNone is used for events that are not frames.
	DirectionNone Direction = 0
	// DirectionIn is a frame read from the peer.
	DirectionIn Direction = 1
	// DirectionOut is a frame written to the peer.
	DirectionOut Direction = 2
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "-"
	}
}

// Op is the kind of register access.
type Op uint8

const (
	// OpRead is a read.
	OpRead Op = 0
	// OpWrite is a full write.
	OpWrite Op = 1
	// OpModify is a masked read-modify-write.
	OpModify Op = 2
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpRead:
		return "READ"
	case OpWrite:
		return "WRITE"
	case OpModify:
		return "MODIFY"
	default:
		return "UNKNOWN"
	}
}

// AccessEvent captures one register access.
type AccessEvent struct {
	// Op is the access kind.
	Op Op `cbor:"1,keyasint"`

	// Address is the absolute byte address of the word.
	Address uint32 `cbor:"2,keyasint"`

	// Value is the word read or written. For field and LUT events it is the
	// field value rather than the word.
	Value uint32 `cbor:"3,keyasint"`

	// Mask selects the bits updated by a modify.
	Mask *uint32 `cbor:"4,keyasint,omitempty"`

	// Previous is the word observed before a modify.
	Previous *uint32 `cbor:"5,keyasint,omitempty"`

	// Name is the block-qualified field or LUT name, e.g. isp_top/active_width
	// (field and LUT layers).
	Name string `cbor:"6,keyasint,omitempty"`

	// Index is the LUT entry index (LUT layer).
	Index *uint32 `cbor:"7,keyasint,omitempty"`
}

// String returns a compact single-line description.
func (a *AccessEvent) String() string {
	s := fmt.Sprintf("%s 0x%08x = 0x%08x", a.Op, a.Address, a.Value)
	if a.Mask != nil {
		s += fmt.Sprintf(" mask=0x%08x", *a.Mask)
	}
	if a.Previous != nil {
		s += fmt.Sprintf(" prev=0x%08x", *a.Previous)
	}
	if a.Name != "" {
		s += " " + a.Name
		if a.Index != nil {
			s += fmt.Sprintf("[%d]", *a.Index)
		}
	}
	return s
}

// StateChangeEvent captures session lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityConnection indicates a connection state change.
	StateEntityConnection StateEntity = 0
	// StateEntitySession indicates a trace session state change.
	StateEntitySession StateEntity = 1
	// StateEntityHardware indicates a reset or snapshot restore.
	StateEntityHardware StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntitySession:
		return "SESSION"
	case StateEntityHardware:
		return "HARDWARE"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the error code (if applicable).
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}

// FrameEvent captures one length-prefixed transport frame.
type FrameEvent struct {
	// Size is the frame size including the length prefix.
	Size int `cbor:"1,keyasint"`

	// Data is the frame payload, possibly truncated.
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated is set when Data holds only a prefix of the payload.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}
