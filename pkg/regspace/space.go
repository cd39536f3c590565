package regspace

// WordSize is the width of one hardware word in bytes.
const WordSize = 4

// Space is a flat byte-addressed register space accessed in 32-bit words.
// ReadWord and WriteWord are the only hardware side effects of this module;
// implementations must perform exactly one bus transaction per call.
type Space interface {
	// ReadWord returns the 32-bit word at the byte address addr.
	ReadWord(addr uint32) uint32

	// WriteWord stores v at the byte address addr.
	WriteWord(addr uint32, v uint32)
}

// Modifier is implemented by spaces that can perform a masked
// read-modify-write as one unit with respect to other callers of the same
// space. The update still costs one underlying read and one write.
type Modifier interface {
	// ModifyWord replaces the bits selected by mask with the corresponding
	// bits of bits and returns the word that was read before the update.
	ModifyWord(addr uint32, mask uint32, bits uint32) uint32
}

// Modify applies a masked update to addr. If s implements Modifier the
// update is delegated; otherwise it is a plain read followed by a write.
func Modify(s Space, addr uint32, mask uint32, bits uint32) (previous uint32) {
	if m, ok := s.(Modifier); ok {
		return m.ModifyWord(addr, mask, bits)
	}
	previous = s.ReadWord(addr)
	s.WriteWord(addr, Merge(previous, mask, bits))
	return previous
}

// Merge returns word with the bits selected by mask replaced by bits.
// Bits of bits outside mask are ignored.
func Merge(word uint32, mask uint32, bits uint32) uint32 {
	return word&^mask | bits&mask
}
