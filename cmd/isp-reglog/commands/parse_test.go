package commands

import (
	"testing"

	"github.com/acamera-isp/ispreg-go/pkg/log"
)

func TestBuildFilter(t *testing.T) {
	filter, err := BuildFilter(FilterOptions{
		SessionID: "abc",
		Layer:     "FIELD",
		Direction: "in",
		Category:  "access",
		Op:        "m",
		Name:      "isp_top/active_width",
		AddrLow:   "0x18e00",
		AddrHigh:  "0x18eff",
		TimeStart: "2026-03-04T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}

	if filter.SessionID != "abc" || filter.Name != "isp_top/active_width" {
		t.Errorf("unexpected string criteria: %+v", filter)
	}
	if filter.Layer == nil || *filter.Layer != log.LayerField {
		t.Errorf("expected field layer")
	}
	if filter.Direction == nil || *filter.Direction != log.DirectionIn {
		t.Errorf("expected in direction")
	}
	if filter.Category == nil || *filter.Category != log.CategoryAccess {
		t.Errorf("expected access category")
	}
	if filter.Op == nil || *filter.Op != log.OpModify {
		t.Errorf("expected modify op")
	}
	if filter.AddrLow == nil || *filter.AddrLow != 0x18e00 {
		t.Errorf("expected addr-low 0x18e00")
	}
	if filter.AddrHigh == nil || *filter.AddrHigh != 0x18eff {
		t.Errorf("expected addr-high 0x18eff")
	}
	if filter.TimeStart == nil || filter.TimeEnd != nil {
		t.Errorf("expected only a start time")
	}
}

func TestBuildFilterErrors(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
	}{
		{"layer", FilterOptions{Layer: "wire"}},
		{"direction", FilterOptions{Direction: "sideways"}},
		{"category", FilterOptions{Category: "control"}},
		{"op", FilterOptions{Op: "erase"}},
		{"addr", FilterOptions{AddrLow: "zzz"}},
		{"addr range", FilterOptions{AddrLow: "0x100", AddrHigh: "0x10"}},
		{"time", FilterOptions{TimeEnd: "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildFilter(tt.opts); err == nil {
				t.Errorf("expected error for %+v", tt.opts)
			}
		})
	}
}
