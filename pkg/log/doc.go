// Package log provides structured register-access tracing.
//
// This package defines the Logger interface and Event type used to capture
// every word transaction that reaches a register space, together with the
// field and LUT accesses that produced them and the state of remote register
// sessions. It is separate from operational logging (slog) - a trace is a
// complete machine-readable record of what was written to the hardware and
// in which order, which matters because some registers are strobes.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For bring-up sessions: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/isp/session.rlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(a, b)
//
//	space := regspace.NewTraced(hw, logger, sessionID)
//
// # File Format
//
// Trace files use CBOR encoding with the .rlog extension. The isp-reglog CLI
// tool provides viewing, filtering, and export capabilities.
package log
