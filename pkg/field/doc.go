// Package field reads and writes named bitfields inside 32-bit registers.
//
// A Descriptor places a field at a byte offset from a region base, a bit
// shift and a bit width. Write performs exactly one word read and one word
// write, replacing only the field's bits:
//
//	mask = ((1 << width) - 1) << shift
//	word = (word &^ mask) | ((v & ((1 << width) - 1)) << shift)
//
// Values wider than the field are truncated silently, matching the
// hardware's own behavior. Check reports truncation for callers that want
// it; building with the regdebug tag turns truncation into a panic.
package field
