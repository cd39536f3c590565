package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

func validConfig() Config {
	return Config{
		Name:     "cam0",
		Backend:  BackendMemory,
		LogLevel: "info",
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isp-regd.yaml")
	data := `
name: cam0-sim
board: imx8-evk
backend: devmem
base: 0x30000000
size: 0x20000
read_only: true
trace: /tmp/isp.rlog
advertise: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := Config{LogLevel: "info", Listen: ":9000"}
	require.NoError(t, loadConfigFile(path, &cfg))

	assert.Equal(t, "cam0-sim", cfg.Name)
	assert.Equal(t, "imx8-evk", cfg.Board)
	assert.Equal(t, BackendDevMem, cfg.Backend)
	assert.Equal(t, uint32(0x30000000), cfg.Base)
	assert.Equal(t, uint32(0x20000), cfg.Size)
	assert.True(t, cfg.ReadOnly)
	assert.False(t, cfg.Advertise)
	assert.Equal(t, "/tmp/isp.rlog", cfg.Trace)
	// Fields absent from the file are untouched.
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":9000", cfg.Listen)
}

func TestLoadConfigFileErrors(t *testing.T) {
	var cfg Config
	assert.Error(t, loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: [1, 2"), 0o644))
	assert.Error(t, loadConfigFile(path, &cfg))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown backend", func(c *Config) { c.Backend = "i2c" }, true},
		{"unaligned size", func(c *Config) { c.Size = 0x1002 }, true},
		{"unaligned base", func(c *Config) { c.Base = 0x10 + 2 }, true},
		{"window wraps", func(c *Config) { c.Base = 0xfffff000; c.Size = 0x2000 }, true},
		{"advertise without name", func(c *Config) { c.Name = ""; c.Advertise = true }, true},
		{"no name without advertise", func(c *Config) { c.Name = "" }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := validateConfig(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Name: "cam0"}
	applyDefaults(&cfg)

	assert.Equal(t, isp.WindowSize, cfg.Size)
	assert.Equal(t, ":7810", cfg.Listen)
	assert.Equal(t, "/dev/mem", cfg.DevMem)
	assert.Equal(t, "cam0", cfg.Board)

	cfg = Config{}
	applyDefaults(&cfg)
	assert.NotEmpty(t, cfg.Name)
}

func TestOverlayFlags(t *testing.T) {
	file := Config{Name: "from-file", Backend: BackendDevMem, Base: 0x30000000, Advertise: true}
	flags := Config{Name: "from-flag", Backend: BackendMemory, Advertise: false}

	overlayFlags(&file, &flags, map[string]bool{"name": true, "advertise": true})

	assert.Equal(t, "from-flag", file.Name)
	assert.False(t, file.Advertise)
	assert.Equal(t, BackendDevMem, file.Backend)
	assert.Equal(t, uint32(0x30000000), file.Base)
}

func TestMemoryBackendRelocatesResetImage(t *testing.T) {
	cfg := validConfig()
	cfg.Base = 0x30000000
	applyDefaults(&cfg)

	be, err := openBackend(&cfg)
	require.NoError(t, err)
	defer be.Close()
	require.NotNil(t, be.memory)

	r := regspace.NewRegion(be.space, cfg.Base, cfg.Size)
	assert.Equal(t, isp.ISPTopActiveWidthDefault, field.Read(r, isp.ISPTopActiveWidth))
	assert.Zero(t, be.space.ReadWord(isp.ISPTopActiveWidth.Offset))
}

func TestResetWindow(t *testing.T) {
	cfg := validConfig()
	applyDefaults(&cfg)

	be, err := openBackend(&cfg)
	require.NoError(t, err)
	r := regionFor(&cfg, be)
	field.Write(r, isp.ISPTopActiveWidth, 640)

	resetWindow(&cfg, be, isp.Default(), nil)
	assert.Equal(t, isp.ISPTopActiveWidthDefault, field.Read(r, isp.ISPTopActiveWidth))
}
