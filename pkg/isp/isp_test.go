package isp

import (
	"testing"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRegion returns a region over simulated hardware holding the
// documented reset words.
func resetRegion(t *testing.T) (*regspace.Region, *regspace.Memory) {
	t.Helper()
	mem := regspace.NewMemoryWithImage(Default().ResetImage())
	return regspace.NewRegion(mem, 0, WindowSize), mem
}

func TestDefaultValueFidelity(t *testing.T) {
	r, _ := resetRegion(t)

	for _, b := range Default().Blocks() {
		for _, d := range b.Fields {
			if got := field.Read(r, d); got != d.Default {
				t.Errorf("%s/%s after reset = 0x%x, want 0x%x", b.Name, d.Name, got, d.Default)
			}
		}
	}
	assert.Equal(t, uint32(0x780), ISPTopActiveWidthDefault)
	assert.Equal(t, uint32(0x780), field.Read(r, ISPTopActiveWidth))
}

func TestActiveSizeScenario(t *testing.T) {
	r, mem := resetRegion(t)

	require.Equal(t, uint32(0x18e88), ISPTopActiveWidth.Offset)
	require.Equal(t, ISPTopActiveWidth.Offset, ISPTopActiveHeight.Offset)

	field.Write(r, ISPTopActiveWidth, 0x5a0)
	field.Write(r, ISPTopActiveHeight, 0x3c0)

	assert.Equal(t, uint32(0x5a0), field.Read(r, ISPTopActiveWidth))
	assert.Equal(t, uint32(0x3c0), field.Read(r, ISPTopActiveHeight))
	assert.Equal(t, uint32(0x03c005a0), mem.ReadWord(0x18e88))
}

func TestCrossbarBitPreservation(t *testing.T) {
	r, mem := resetRegion(t)

	field.Write(r, CrossbarChannel1Select, 1)
	field.Write(r, CrossbarChannel0Select, 3)

	assert.Equal(t, uint32(3), field.Read(r, CrossbarChannel0Select))
	assert.Equal(t, uint32(1), field.Read(r, CrossbarChannel1Select))
	assert.Equal(t, uint32(2), field.Read(r, CrossbarChannel2Select))
	assert.Equal(t, uint32(3), field.Read(r, CrossbarChannel3Select))
	assert.Equal(t, uint32(0x03020103), mem.ReadWord(0x4c))
}

func TestCoLocatedFieldsPreserveEachOther(t *testing.T) {
	for _, b := range Default().Blocks() {
		for _, off := range b.Offsets() {
			fields := b.FieldsAt(off)
			for _, a := range fields {
				r, _ := resetRegion(t)
				// Give every neighbour a non-default value first.
				want := make(map[string]uint32)
				for _, o := range fields {
					v := ^o.Default & o.FieldMask()
					field.Write(r, o, v)
					want[o.Name] = v
				}
				field.Write(r, a, a.Default)
				want[a.Name] = a.Default
				for _, o := range fields {
					if got := field.Read(r, o); got != want[o.Name] {
						t.Errorf("%s/%s: writing %s changed it to 0x%x, want 0x%x",
							b.Name, o.Name, a.Name, got, want[o.Name])
					}
				}
			}
		}
	}
}

func TestRGGBStartEnum(t *testing.T) {
	tests := []struct {
		v    ISPTopRGGBStartValue
		want string
	}{
		{ISPTopRGGBStartRGrGbB, "R_GR_GB_B"},
		{ISPTopRGGBStartGrRBGb, "GR_R_B_GB"},
		{ISPTopRGGBStartGbBRGr, "GB_B_R_GR"},
		{ISPTopRGGBStartBGbGrR, "B_GB_GR_R"},
		{ISPTopRGGBStartValue(7), "ISPTopRGGBStartValue(7)"},
	}
	for i, tt := range tests {
		if i < 4 && uint32(tt.v) != uint32(i) {
			t.Errorf("%s = %d, want %d", tt.want, tt.v, i)
		}
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	v, err := ISPTopRGGBStart.Lookup("B_GB_GR_R")
	require.NoError(t, err)
	assert.Equal(t, uint32(ISPTopRGGBStartBGbGrR), v)
}

func TestLUTTables(t *testing.T) {
	r, _ := resetRegion(t)

	assert.Equal(t, lut.Packed, NoiseProfileWeightLUT.Layout)
	assert.Equal(t, uint32(128), NoiseProfileWeightLUT.Entries)
	assert.Equal(t, lut.WordPerEntry, RadialShadingRGainLUT.Layout)

	for i := uint32(0); i < NoiseProfileWeightLUT.Entries; i++ {
		lut.Write(r, NoiseProfileWeightLUT, i, 255-i)
	}
	for i := uint32(0); i < NoiseProfileWeightLUT.Entries; i++ {
		if got := lut.Read(r, NoiseProfileWeightLUT, i); got != 255-i {
			t.Fatalf("weight_lut[%d] = %d, want %d", i, got, 255-i)
		}
	}
	// The table ends just before the control register.
	assert.Equal(t, uint32(0x10), field.Read(r, NoiseProfileGlobalOffset))
	assert.Equal(t, uint32(1), field.Read(r, NoiseProfileUseLUT))
}

func TestDescriptorsValid(t *testing.T) {
	for _, b := range Default().Blocks() {
		for _, d := range b.Fields {
			assert.NoError(t, d.Validate(), "%s/%s", b.Name, d.Name)
			assert.True(t, b.Contains(d.Offset), "%s/%s outside block", b.Name, d.Name)
		}
		for _, d := range b.LUTs {
			assert.NoError(t, d.Validate(), "%s/%s", b.Name, d.Name)
			assert.True(t, b.Contains(d.Offset) && b.Contains(d.Offset+d.Size()-1),
				"%s/%s outside block", b.Name, d.Name)
		}
		assert.LessOrEqual(t, uint64(b.Base)+uint64(b.Size), uint64(WindowSize), b.Name)
	}
}
