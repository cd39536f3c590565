// Package transport carries remote register protocol messages over TCP.
//
// Every message is a frame: a 4-byte big-endian length followed by that
// many bytes of CBOR payload. The Server accepts connections, assigns each
// one a UUID session ID and hands received frames to a callback; the Client
// dials a server and exchanges frames on a ClientConn.
//
// Frames, connects and disconnects are reported to an optional log.Logger
// so register traffic can be inspected with isp-reglog.
//
// There is no encryption or authentication. Register servers are meant for
// lab networks and bring-up boards; bind them to a trusted interface.
package transport
