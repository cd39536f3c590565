package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/inspect"
	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
	"github.com/acamera-isp/ispreg-go/pkg/remote"
	"github.com/acamera-isp/ispreg-go/pkg/transport"
)

func newLocalSession(t *testing.T) (*Session, *bytes.Buffer, *regspace.Region) {
	t.Helper()
	mem := regspace.NewMemoryWithImage(isp.Default().ResetImage())
	r := regspace.NewRegion(mem, 0, isp.WindowSize)
	var out bytes.Buffer
	return NewSession(inspect.NewInspector(r, isp.Default()), nil, "local simulator", &out), &out, r
}

func exec(t *testing.T, s *Session, line string) {
	t.Helper()
	require.NoError(t, s.Exec(strings.Fields(line)), line)
}

func TestSessionReadWrite(t *testing.T) {
	s, out, r := newLocalSession(t)

	exec(t, s, "read isp_top/active_width")
	assert.Equal(t, "isp_top/active_width = 0x780 (1920)\n", out.String())

	out.Reset()
	exec(t, s, "write isp_top/rggb_start GB_B_R_GR")
	assert.Equal(t, "isp_top/rggb_start = GB_B_R_GR (2)\n", out.String())
	assert.Equal(t, uint32(2), field.Read(r, isp.ISPTopRGGBStart))

	out.Reset()
	exec(t, s, "r 0x18e88")
	assert.Equal(t, "0x00018e88: 0x04380780\n", out.String())

	out.Reset()
	exec(t, s, "w noise_profile/weight_lut[5] 0x7f")
	assert.Equal(t, "noise_profile/weight_lut[5] = 0x7f (127)\n", out.String())
}

func TestSessionRejections(t *testing.T) {
	s, _, r := newLocalSession(t)

	assert.ErrorIs(t, s.Exec([]string{"read"}), ErrUsage)
	assert.ErrorIs(t, s.Exec([]string{"write", "isp_top/active_width", "0x10000"}), field.ErrValueTruncated)
	assert.ErrorIs(t, s.Exec([]string{"write", "isp_top/isp_busy", "1"}), inspect.ErrNotWritable)
	assert.Error(t, s.Exec([]string{"frobnicate"}))
	assert.ErrorIs(t, s.Exec([]string{"quit"}), errQuit)

	// Rejected writes leave the word untouched.
	assert.Equal(t, isp.ISPTopActiveWidthDefault, field.Read(r, isp.ISPTopActiveWidth))
}

func TestSessionDumpAndChanged(t *testing.T) {
	s, out, _ := newLocalSession(t)

	exec(t, s, "changed")
	assert.Contains(t, out.String(), "All fields hold their reset values")

	exec(t, s, "write isp_top/active_width 1280")
	out.Reset()
	exec(t, s, "changed isp_top")
	assert.Contains(t, out.String(), "isp_top:")
	assert.Contains(t, out.String(), "active_width")
	assert.NotContains(t, out.String(), "active_height")

	out.Reset()
	exec(t, s, "dump crossbar")
	assert.Contains(t, out.String(), "crossbar @ 0x")

	out.Reset()
	exec(t, s, "blocks")
	for _, b := range isp.Default().Blocks() {
		assert.Contains(t, out.String(), b.Name)
	}
}

func TestSessionLUT(t *testing.T) {
	s, out, r := newLocalSession(t)

	file := filepath.Join(t.TempDir(), "weights.txt")
	require.NoError(t, os.WriteFile(file, []byte("# ramp\n1, 2, 3\n0x10 0x20\n"), 0o644))

	exec(t, s, "lut load noise_profile/weight_lut "+file)
	assert.Contains(t, out.String(), "Loaded 5 entries")
	// Entries 0..3 share word 0; entry 4 starts word 1.
	assert.Equal(t, uint32(0x10030201), r.ReadWord(isp.NoiseProfileWeightLUT.Offset))
	assert.Equal(t, uint32(0x00000020), r.ReadWord(isp.NoiseProfileWeightLUT.Offset+4))

	out.Reset()
	exec(t, s, "lut noise_profile/weight_lut")
	assert.Contains(t, out.String(), "weight_lut")

	assert.ErrorIs(t, s.Exec([]string{"lut", "isp_top/active_width"}), inspect.ErrNotLUT)
}

func TestParseTable(t *testing.T) {
	got, err := parseTable("# header\n1,2\t3\n\n0x10\n")
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3, 0x10}, got)

	_, err = parseTable("1 2\nnope\n")
	assert.ErrorIs(t, err, inspect.ErrInvalidNumber)
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	s, out, r := newLocalSession(t)
	file := filepath.Join(t.TempDir(), "state", "cam0.json")

	exec(t, s, "write isp_top/active_width 1280")
	exec(t, s, "save "+file)
	assert.Contains(t, out.String(), "Saved")

	exec(t, s, "write isp_top/active_width 640")
	exec(t, s, "write crossbar/channel0_select 3")

	out.Reset()
	exec(t, s, "diff "+file)
	assert.Contains(t, out.String(), "2 words differ")

	exec(t, s, "restore "+file)
	assert.Equal(t, uint32(1280), field.Read(r, isp.ISPTopActiveWidth))
	assert.Equal(t, isp.CrossbarChannel0Select.Default, field.Read(r, isp.CrossbarChannel0Select))

	out.Reset()
	exec(t, s, "diff "+file)
	assert.Contains(t, out.String(), "No differences")

	assert.ErrorIs(t, s.Exec([]string{"restore", filepath.Join(t.TempDir(), "none.json")}), os.ErrNotExist)
}

func TestSessionSaveSelectedBlocks(t *testing.T) {
	s, _, _ := newLocalSession(t)
	_, offsets, err := s.snapshotOffsets([]string{"noise_profile"})
	require.NoError(t, err)

	// Registers plus 32 packed table words.
	assert.Contains(t, offsets, isp.NoiseProfileWeightLUT.Offset)
	assert.Contains(t, offsets, isp.NoiseProfileWeightLUT.Offset+31*4)
	assert.NotContains(t, offsets, isp.ISPTopActiveWidth.Offset)

	_, _, err = s.snapshotOffsets([]string{"nope"})
	assert.ErrorIs(t, err, isp.ErrUnknownBlock)
}

func TestRunScript(t *testing.T) {
	s, out, r := newLocalSession(t)

	script := "# setup\nwrite isp_top/active_width 1280\n\nread isp_top/active_width\n"
	require.NoError(t, runScript(s, strings.NewReader(script)))
	assert.Contains(t, out.String(), "0x500 (1280)")
	assert.Equal(t, uint32(1280), field.Read(r, isp.ISPTopActiveWidth))

	err := runScript(s, strings.NewReader("read isp_top/active_width\nread isp_top/nope\nwrite isp_top/active_width 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, uint32(1280), field.Read(r, isp.ISPTopActiveWidth))

	assert.NoError(t, runScript(s, strings.NewReader("quit\nwrite isp_top/active_width 1\n")))
	assert.Equal(t, uint32(1280), field.Read(r, isp.ISPTopActiveWidth))
}

func TestCompletePaths(t *testing.T) {
	s, _, _ := newLocalSession(t)

	blocks := s.completePaths("read ")
	assert.Contains(t, blocks, "isp_top/")

	got := s.completePaths("read isp_top/active")
	assert.ElementsMatch(t, []string{"isp_top/active_width", "isp_top/active_height"}, got)

	assert.Contains(t, s.completePaths("lut load noise_profile/w"), "noise_profile/weight_lut")
}

func TestSessionRemote(t *testing.T) {
	mem := regspace.NewMemoryWithImage(isp.Default().ResetImage())
	h := remote.NewHandler(remote.HandlerConfig{Space: mem, Size: isp.WindowSize})
	server := transport.NewServer(transport.ServerConfig{Address: "127.0.0.1:0", OnMessage: h.ServeFrame})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, server.Start(ctx))
	defer server.Stop()

	rs, err := remote.Dial(ctx, server.Addr().String(), transport.ClientConfig{})
	require.NoError(t, err)
	defer rs.Close()

	r := regspace.NewRegion(rs, 0, isp.WindowSize)
	var out bytes.Buffer
	s := NewSession(inspect.NewInspector(r, isp.Default()), rs, server.Addr().String(), &out)

	exec(t, s, "ping")
	assert.Contains(t, out.String(), "pong from")

	exec(t, s, "write isp_top/active_height 720")
	assert.Equal(t, uint32(0x02d00780), mem.ReadWord(isp.ISPTopActiveHeight.Offset))

	// A failure of the connection surfaces through the session.
	rs.Close()
	assert.Error(t, s.Exec([]string{"read", "isp_top/active_width"}))
}
