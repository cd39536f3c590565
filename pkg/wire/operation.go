package wire

// Operation represents a remote register operation.
type Operation uint8

const (
	// OpReadWord reads one word.
	OpReadWord Operation = 1

	// OpWriteWord writes one word.
	OpWriteWord Operation = 2

	// OpModifyWord replaces the bits selected by Mask with Value, atomically
	// with respect to other clients of the same server. The response carries
	// the word observed before the update.
	OpModifyWord Operation = 3

	// OpReadWords reads Count consecutive words.
	OpReadWords Operation = 4

	// OpWriteWords writes Values to consecutive words in ascending order.
	OpWriteWords Operation = 5

	// OpPing checks that the server is alive.
	OpPing Operation = 6
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpReadWord:
		return "ReadWord"
	case OpWriteWord:
		return "WriteWord"
	case OpModifyWord:
		return "ModifyWord"
	case OpReadWords:
		return "ReadWords"
	case OpWriteWords:
		return "WriteWords"
	case OpPing:
		return "Ping"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the operation is known.
func (o Operation) IsValid() bool {
	return o >= OpReadWord && o <= OpPing
}

// IsWrite returns true if the operation changes register contents.
func (o Operation) IsWrite() bool {
	return o == OpWriteWord || o == OpModifyWord || o == OpWriteWords
}
