package field

import "errors"

var (
	// ErrValueTruncated indicates a value with bits set above the field width.
	ErrValueTruncated = errors.New("value does not fit field")

	// ErrInvalidDescriptor indicates a shift/width pair outside one word.
	ErrInvalidDescriptor = errors.New("invalid field descriptor")

	// ErrUnknownEnum indicates a name not present in the field's enumeration.
	ErrUnknownEnum = errors.New("unknown enumeration name")

	// ErrReadOnly indicates a write to a read-only field.
	ErrReadOnly = errors.New("field is read-only")
)
