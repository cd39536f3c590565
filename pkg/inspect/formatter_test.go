package inspect

import (
	"strings"
	"testing"

	"github.com/acamera-isp/ispreg-go/pkg/isp"
)

func TestFormatterIndent(t *testing.T) {
	f := NewFormatter()
	if got := f.Indent(2, "x"); got != "    x" {
		t.Errorf("Indent = %q", got)
	}
	f.IndentWidth = 0
	if got := f.Indent(1, "x"); got != "  x" {
		t.Errorf("Indent with zero width = %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	f := NewFormatter()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"enum", f.FormatValue(isp.ISPTopRGGBStart, 2), "GB_B_R_GR (2)"},
		{"bit", f.FormatValue(isp.ISPTopBypassFrameStitch, 1), "1"},
		{"wide", f.FormatValue(isp.ISPTopActiveWidth, 1440), "0x5a0 (1440)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestFormatBits(t *testing.T) {
	if got := FormatBits(16, 16); got != "[31:16]" {
		t.Errorf("FormatBits(16,16) = %q", got)
	}
	if got := FormatBits(3, 1); got != "[3]" {
		t.Errorf("FormatBits(3,1) = %q", got)
	}
}

func TestFormatWord(t *testing.T) {
	if got := FormatWord(0x18e88, 0x04380780); got != "0x00018e88: 0x04380780" {
		t.Errorf("FormatWord = %q", got)
	}
}

func TestFormatBlock(t *testing.T) {
	insp := newTestInspector(t)
	_ = insp.Write(mustPath(t, "isp_top/active_width"), "1440")
	info, err := insp.InspectBlock("isp_top")
	if err != nil {
		t.Fatal(err)
	}

	out := NewFormatter().FormatBlock(info)
	for _, want := range []string{
		"isp_top @ 0x18e80",
		"0x18e88 = 0x043805a0",
		"active_width",
		"= 0x5a0 [15:0] (reset 0x780)",
		"rggb_start",
		"R_GR_GB_B (0)",
		"isp_busy",
		" ro",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	lutOut := NewFormatter().FormatBlock(mustInspect(t, insp, "noise_profile"))
	if !strings.Contains(lutOut, "weight_lut: 128 x 8-bit (packed)") {
		t.Errorf("lut summary missing:\n%s", lutOut)
	}
}

func mustInspect(t *testing.T, insp *Inspector, name string) *BlockInfo {
	t.Helper()
	info, err := insp.InspectBlock(name)
	if err != nil {
		t.Fatal(err)
	}
	return info
}

func TestFormatFieldTableEmpty(t *testing.T) {
	if got := NewFormatter().FormatFieldTable(nil, 1); got != "  (no fields)\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatLUT(t *testing.T) {
	f := NewFormatter()
	f.LUTColumns = 4
	values := []uint32{0, 1, 0xff, 0x10, 0x20}

	out := f.FormatLUT(isp.NoiseProfileWeightLUT, values)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out)
	}
	if lines[1] != "  [  0] 00 01 ff 10" {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[2] != "  [  4] 20" {
		t.Errorf("row 1 = %q", lines[2])
	}
}
