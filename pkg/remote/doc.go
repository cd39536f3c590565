// Package remote exposes a register space over the network.
//
// A Handler serves a regspace.Space to transport connections, one wire
// request per frame. Space is the client side: it implements regspace.Space
// and regspace.Modifier by sending requests, so field and LUT accessors work
// unchanged against a board on the other end of a TCP connection.
//
// Space has no error returns on its word methods. The first failure is kept
// and reported by Err; once set, further word accesses are skipped and reads
// return zero. Check Err after a sequence of accesses, as with bufio.Writer.
package remote
