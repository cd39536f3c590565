package inspect

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/isp"
)

func TestResolveValue(t *testing.T) {
	d := isp.ISPTopRGGBStart

	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"GB_B_R_GR", 2, false},
		{"gb_b_r_gr", 2, false},
		{"3", 3, false},
		{"0x1", 1, false},
		{"NOPE", 0, true},
	}
	for _, tt := range tests {
		got, err := ResolveValue(d, tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ResolveValue(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ResolveValue(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestResolveValueUnknownEnum(t *testing.T) {
	_, err := ResolveValue(isp.ISPTopRGGBStart, "PURPLE")
	if !errors.Is(err, field.ErrUnknownEnum) {
		t.Errorf("err = %v, want ErrUnknownEnum", err)
	}
}

func TestResolveValuePlainField(t *testing.T) {
	_, err := ResolveValue(isp.ISPTopActiveWidth, "wide")
	if !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("err = %v, want ErrInvalidNumber", err)
	}
}

func TestEnumNames(t *testing.T) {
	got := EnumNames(isp.ISPTopRGGBStart)
	want := []string{"R_GR_GB_B", "GR_R_B_GB", "GB_B_R_GR", "B_GB_GR_R"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnumNames = %v, want %v", got, want)
	}
	if n := EnumNames(isp.ISPTopActiveWidth); len(n) != 0 {
		t.Errorf("EnumNames(active_width) = %v, want empty", n)
	}
}

func TestCompleteNames(t *testing.T) {
	insp := newTestInspector(t)

	got := insp.CompleteNames("crossbar", "channel")
	sort.Strings(got)
	want := []string{"channel0_select", "channel1_select", "channel2_select", "channel3_select"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CompleteNames = %v, want %v", got, want)
	}

	if got := insp.CompleteNames("noise_profile", "weight"); !reflect.DeepEqual(got, []string{"weight_lut"}) {
		t.Errorf("CompleteNames(weight) = %v", got)
	}
	if got := insp.CompleteNames("missing", ""); got != nil {
		t.Errorf("CompleteNames(missing) = %v, want nil", got)
	}
}
