package regspace

import "errors"

// Region and backend errors.
var (
	// ErrOutOfRegion indicates an offset or sub-range beyond the region size.
	ErrOutOfRegion = errors.New("offset outside register region")

	// ErrUnaligned indicates a byte address that is not word aligned.
	ErrUnaligned = errors.New("address not word aligned")

	// ErrClosed indicates use of a backend after Close.
	ErrClosed = errors.New("register space closed")
)
