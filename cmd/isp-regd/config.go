package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/acamera-isp/ispreg-go/pkg/discovery"
	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// Backend kinds.
const (
	BackendMemory = "memory"
	BackendDevMem = "devmem"
)

// Config holds the daemon configuration. Every field can come from the
// YAML file; flags given on the command line win.
type Config struct {
	Name         string `yaml:"name"`
	Board        string `yaml:"board"`
	Listen       string `yaml:"listen"`
	Backend      string `yaml:"backend"`
	DevMem       string `yaml:"devmem"`
	Base         uint32 `yaml:"base"`
	Size         uint32 `yaml:"size"`
	ReadOnly     bool   `yaml:"read_only"`
	ResetOnStart bool   `yaml:"reset_on_start"`
	Trace        string `yaml:"trace"`
	Advertise    bool   `yaml:"advertise"`
	Interface    string `yaml:"interface"`
	LogLevel     string `yaml:"log_level"`
}

// loadConfigFile reads a YAML config. Fields absent from the file keep the
// values already in cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Backend {
	case BackendMemory, BackendDevMem:
	default:
		return fmt.Errorf("backend must be %s or %s, got %q", BackendMemory, BackendDevMem, cfg.Backend)
	}
	if cfg.Size != 0 && cfg.Size%regspace.WordSize != 0 {
		return fmt.Errorf("size 0x%x is not a multiple of %d", cfg.Size, regspace.WordSize)
	}
	if cfg.Base%regspace.WordSize != 0 {
		return fmt.Errorf("base 0x%08x is not word aligned", cfg.Base)
	}
	if uint64(cfg.Base)+uint64(cfg.Size) > 1<<32 {
		return fmt.Errorf("window 0x%08x+0x%x wraps the address space", cfg.Base, cfg.Size)
	}
	if cfg.Advertise {
		if err := discovery.ValidateInstanceName(cfg.Name); err != nil {
			return fmt.Errorf("name: %w", err)
		}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error, got %q", cfg.LogLevel)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Size == 0 {
		cfg.Size = isp.WindowSize
	}
	if cfg.Listen == "" {
		cfg.Listen = fmt.Sprintf(":%d", discovery.DefaultPort)
	}
	if cfg.DevMem == "" {
		cfg.DevMem = "/dev/mem"
	}
	if cfg.Name == "" {
		if host, err := os.Hostname(); err == nil {
			cfg.Name = "ispreg-" + host
		} else {
			cfg.Name = "ispreg"
		}
	}
	if cfg.Board == "" {
		cfg.Board = cfg.Name
	}
}
