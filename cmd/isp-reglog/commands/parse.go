// Package commands implements the isp-reglog CLI commands.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/inspect"
	"github.com/acamera-isp/ispreg-go/pkg/log"
)

// FilterOptions holds the textual filter flags shared by view, export,
// filter and stats.
type FilterOptions struct {
	SessionID string
	TimeStart string
	TimeEnd   string
	Layer     string
	Direction string
	Category  string
	Op        string
	Name      string
	AddrLow   string
	AddrHigh  string
}

// BuildFilter converts the options to a log.Filter.
func BuildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		SessionID: opts.SessionID,
		Name:      opts.Name,
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if opts.Layer != "" {
		l, err := parseLayer(opts.Layer)
		if err != nil {
			return filter, err
		}
		filter.Layer = &l
	}
	if opts.Direction != "" {
		d, err := parseDirection(opts.Direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}
	if opts.Category != "" {
		c, err := parseCategory(opts.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	if opts.Op != "" {
		o, err := parseOp(opts.Op)
		if err != nil {
			return filter, err
		}
		filter.Op = &o
	}

	if opts.AddrLow != "" {
		v, err := inspect.ParseValue(opts.AddrLow)
		if err != nil {
			return filter, fmt.Errorf("addr-low: %w", err)
		}
		filter.AddrLow = &v
	}
	if opts.AddrHigh != "" {
		v, err := inspect.ParseValue(opts.AddrHigh)
		if err != nil {
			return filter, fmt.Errorf("addr-high: %w", err)
		}
		filter.AddrHigh = &v
	}
	if filter.AddrLow != nil && filter.AddrHigh != nil && *filter.AddrLow > *filter.AddrHigh {
		return filter, fmt.Errorf("addr-low 0x%x is above addr-high 0x%x", *filter.AddrLow, *filter.AddrHigh)
	}

	return filter, nil
}

// parseLayer parses a layer string (case-insensitive).
func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "word":
		return log.LayerWord, nil
	case "field":
		return log.LayerField, nil
	case "lut":
		return log.LayerLUT, nil
	case "transport":
		return log.LayerTransport, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be word, field, lut, or transport)", s)
	}
}

// parseDirection parses a direction string (case-insensitive).
func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "access":
		return log.CategoryAccess, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	case "message":
		return log.CategoryMessage, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be access, state, error, or message)", s)
	}
}

// parseOp parses an access operation (case-insensitive).
func parseOp(s string) (log.Op, error) {
	switch strings.ToLower(s) {
	case "read", "r":
		return log.OpRead, nil
	case "write", "w":
		return log.OpWrite, nil
	case "modify", "m":
		return log.OpModify, nil
	default:
		return 0, fmt.Errorf("invalid op: %s (must be read, write, or modify)", s)
	}
}
