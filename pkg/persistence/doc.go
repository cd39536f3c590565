// Package persistence saves and restores register snapshots.
//
// A Snapshot is a set of word values keyed by byte offset within a register
// window, serialized as JSON. Snapshots let a tuning session be captured
// from a running pipeline and replayed onto another one.
package persistence
