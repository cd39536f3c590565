// Package lut accesses indexed look-up tables laid out across consecutive
// register words.
//
// Two layouts exist. Packed tables hold four 8-bit entries per word: entry i
// lives in the word at Offset + (i &^ 3), bits (i&3)*8 to (i&3)*8+7, and is
// written with a masked read-modify-write. WordPerEntry tables give each
// entry its own word at Offset + i*4 and are written whole, without a read.
//
// Read and Write do not compare the index with Entries: an index past the
// table addresses whatever words follow it, exactly as the hardware
// address decoder does. ReadChecked and WriteChecked reject such indices.
package lut
