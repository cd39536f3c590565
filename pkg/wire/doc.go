// Package wire defines the CBOR wire format of the remote register protocol.
//
// Messages use CBOR (RFC 8949) with integer keys and are carried as
// length-prefixed frames by the transport package.
//
// # Message Types
//
//   - Request: client to register server (ReadWord, WriteWord, ModifyWord,
//     ReadWords, WriteWords, Ping)
//   - Response: register server to client, matched by MessageID
//
// # Addresses
//
// Addresses are absolute byte addresses of 32-bit words and must be word
// aligned. Burst operations cover consecutive words in ascending order.
package wire
