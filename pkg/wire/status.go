package wire

// Status represents a response status code.
type Status uint8

const (
	// StatusSuccess indicates the operation completed successfully.
	StatusSuccess Status = 0

	// StatusInvalidRequest indicates a malformed request.
	StatusInvalidRequest Status = 1

	// StatusUnaligned indicates an address that is not word aligned.
	StatusUnaligned Status = 2

	// StatusOutOfRange indicates an address outside the served window.
	StatusOutOfRange Status = 3

	// StatusReadOnly indicates a write to a server started read-only.
	StatusReadOnly Status = 4

	// StatusUnsupported indicates the operation is not supported.
	StatusUnsupported Status = 5

	// StatusBusy indicates the server is busy; try again later.
	StatusBusy Status = 6

	// StatusInternal indicates a backend failure.
	StatusInternal Status = 7
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusInvalidRequest:
		return "INVALID_REQUEST"
	case StatusUnaligned:
		return "UNALIGNED"
	case StatusOutOfRange:
		return "OUT_OF_RANGE"
	case StatusReadOnly:
		return "READ_ONLY"
	case StatusUnsupported:
		return "UNSUPPORTED"
	case StatusBusy:
		return "BUSY"
	case StatusInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}
