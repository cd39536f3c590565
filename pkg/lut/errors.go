package lut

import "errors"

var (
	// ErrIndexOutOfRange indicates an index at or beyond the table's entry count.
	ErrIndexOutOfRange = errors.New("LUT index out of range")

	// ErrValueTruncated indicates an entry value wider than the entry width.
	ErrValueTruncated = errors.New("value does not fit LUT entry")

	// ErrInvalidDescriptor indicates an inconsistent LUT descriptor.
	ErrInvalidDescriptor = errors.New("invalid LUT descriptor")

	// ErrLength indicates a value slice longer than the table.
	ErrLength = errors.New("too many LUT values")
)
