// Command isp-regd serves an ISP register window over the remote register
// protocol.
//
// The window is backed either by an in-memory simulator holding the
// documented reset values or by a /dev/mem mapping of the real hardware.
// Servers advertise themselves via mDNS (_ispreg._tcp) so isp-reg -browse
// can find them.
//
// Usage:
//
//	isp-regd [flags]
//
// Flags:
//
//	-config string     YAML configuration file
//	-name string       mDNS instance name (default "ispreg-<hostname>")
//	-board string      Board identifier advertised in TXT records
//	-listen string     Listen address (default ":7810")
//	-backend string    Register backend: memory, devmem (default "memory")
//	-devmem string     Physical memory device (default "/dev/mem")
//	-base string       Window base address (default "0")
//	-size string       Window size in bytes (default "0x20000")
//	-read-only         Reject all writes
//	-reset             Write reset values to the window on start
//	-trace string      Write a register trace (.rlog) to this file
//	-advertise         Advertise via mDNS (default true)
//	-interface string  Network interface for mDNS (default all)
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Sending SIGHUP to a simulator backend restores the reset image.
//
// Examples:
//
//	# Simulator on the default port
//	isp-regd -name cam0-sim
//
//	# Real hardware, ISP window at 0x30000000, traced
//	isp-regd -backend devmem -base 0x30000000 -trace /tmp/isp.rlog
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/acamera-isp/ispreg-go/pkg/discovery"
	"github.com/acamera-isp/ispreg-go/pkg/inspect"
	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/log"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
	"github.com/acamera-isp/ispreg-go/pkg/remote"
	"github.com/acamera-isp/ispreg-go/pkg/transport"
	"github.com/acamera-isp/ispreg-go/pkg/version"
	"github.com/acamera-isp/ispreg-go/pkg/wire"
)

var (
	config     Config
	configFile string
	baseFlag   string
	sizeFlag   string
)

func init() {
	flag.StringVar(&configFile, "config", "", "YAML configuration file")
	flag.StringVar(&config.Name, "name", "", "mDNS instance name (default ispreg-<hostname>)")
	flag.StringVar(&config.Board, "board", "", "Board identifier advertised in TXT records")
	flag.StringVar(&config.Listen, "listen", "", "Listen address (default :7810)")
	flag.StringVar(&config.Backend, "backend", BackendMemory, "Register backend: memory, devmem")
	flag.StringVar(&config.DevMem, "devmem", "", "Physical memory device (default /dev/mem)")
	flag.StringVar(&baseFlag, "base", "0", "Window base address")
	flag.StringVar(&sizeFlag, "size", "0", "Window size in bytes (default 0x20000)")
	flag.BoolVar(&config.ReadOnly, "read-only", false, "Reject all writes")
	flag.BoolVar(&config.ResetOnStart, "reset", false, "Write reset values to the window on start")
	flag.StringVar(&config.Trace, "trace", "", "Write a register trace (.rlog) to this file")
	flag.BoolVar(&config.Advertise, "advertise", true, "Advertise via mDNS")
	flag.StringVar(&config.Interface, "interface", "", "Network interface for mDNS (default all)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	cfg, err := resolveConfig()
	if err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}
	setupLogging(cfg.LogLevel)

	if err := run(cfg); err != nil {
		stdlog.Fatalf("isp-regd: %v", err)
	}
}

// resolveConfig builds the effective configuration: defaults from flag
// definitions, then the config file, then flags set on the command line.
func resolveConfig() (*Config, error) {
	cfg := config
	if err := applyNumericFlags(&cfg); err != nil {
		return nil, err
	}

	if configFile != "" {
		fileCfg := cfg
		if err := loadConfigFile(configFile, &fileCfg); err != nil {
			return nil, err
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		overlayFlags(&fileCfg, &cfg, set)
		cfg = fileCfg
	}

	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyNumericFlags(cfg *Config) error {
	base, err := inspect.ParseValue(baseFlag)
	if err != nil {
		return fmt.Errorf("base: %w", err)
	}
	size, err := inspect.ParseValue(sizeFlag)
	if err != nil {
		return fmt.Errorf("size: %w", err)
	}
	cfg.Base, cfg.Size = base, size
	return nil
}

// overlayFlags copies the fields of flags whose flag was set explicitly.
func overlayFlags(dst, flags *Config, set map[string]bool) {
	if set["name"] {
		dst.Name = flags.Name
	}
	if set["board"] {
		dst.Board = flags.Board
	}
	if set["listen"] {
		dst.Listen = flags.Listen
	}
	if set["backend"] {
		dst.Backend = flags.Backend
	}
	if set["devmem"] {
		dst.DevMem = flags.DevMem
	}
	if set["base"] {
		dst.Base = flags.Base
	}
	if set["size"] {
		dst.Size = flags.Size
	}
	if set["read-only"] {
		dst.ReadOnly = flags.ReadOnly
	}
	if set["reset"] {
		dst.ResetOnStart = flags.ResetOnStart
	}
	if set["trace"] {
		dst.Trace = flags.Trace
	}
	if set["advertise"] {
		dst.Advertise = flags.Advertise
	}
	if set["interface"] {
		dst.Interface = flags.Interface
	}
	if set["log-level"] {
		dst.LogLevel = flags.LogLevel
	}
}

func setupLogging(level string) {
	stdlog.SetFlags(stdlog.Ltime | stdlog.Lmicroseconds)

	switch level {
	case "debug":
		stdlog.SetFlags(stdlog.Ltime | stdlog.Lmicroseconds | stdlog.Lshortfile)
	case "warn", "error":
		stdlog.SetFlags(stdlog.Ltime)
	}
}

// traceLogger assembles the register trace sinks: an .rlog file and, at
// debug level, a console adapter.
func traceLogger(cfg *Config) (log.Logger, func(), error) {
	var sinks []log.Logger
	cleanup := func() {}

	if cfg.Trace != "" {
		fl, err := log.NewFileLogger(cfg.Trace)
		if err != nil {
			return nil, nil, fmt.Errorf("open trace: %w", err)
		}
		sinks = append(sinks, fl)
		cleanup = func() {
			stdlog.Printf("Trace: %d events written to %s", fl.Count(), cfg.Trace)
			if err := fl.Close(); err != nil {
				stdlog.Printf("Error closing trace: %v", err)
			}
		}
	}
	if cfg.LogLevel == "debug" {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		sinks = append(sinks, log.NewSlogAdapter(slog.New(h)))
	}

	switch len(sinks) {
	case 0:
		return nil, cleanup, nil
	case 1:
		return sinks[0], cleanup, nil
	default:
		return log.NewMultiLogger(sinks...), cleanup, nil
	}
}

func run(cfg *Config) error {
	stdlog.Println("ISP Register Server")
	stdlog.Println("===================")
	stdlog.Printf("Name:    %s", cfg.Name)
	stdlog.Printf("Backend: %s", cfg.Backend)
	stdlog.Printf("Window:  0x%08x+0x%x", cfg.Base, cfg.Size)
	if cfg.ReadOnly {
		stdlog.Println("Writes are rejected (read-only)")
	}

	be, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer be.Close()

	tracer, closeTrace, err := traceLogger(cfg)
	if err != nil {
		return err
	}
	defer closeTrace()

	registry := isp.Default()
	if cfg.ResetOnStart && !cfg.ReadOnly {
		resetWindow(cfg, be, registry, tracer)
	}

	handler := remote.NewHandler(remote.HandlerConfig{
		Space:    be.space,
		Base:     cfg.Base,
		Size:     cfg.Size,
		ReadOnly: cfg.ReadOnly,
		Logger:   tracer,
	})

	server := transport.NewServer(transport.ServerConfig{
		Address:   cfg.Listen,
		Logger:    tracer,
		OnMessage: handler.ServeFrame,
		OnConnect: func(c *transport.ServerConn) {
			stdlog.Printf("[CONN] %s connected (session %s)", c.RemoteAddr(), c.SessionID())
		},
		OnDisconnect: func(c *transport.ServerConn) {
			stdlog.Printf("[CONN] %s disconnected", c.RemoteAddr())
		},
		OnError: logServerError,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	stdlog.Printf("Listening on %s", server.Addr())

	var adv *discovery.MDNSAdvertiser
	if cfg.Advertise {
		adv, err = advertise(ctx, cfg, server, registry)
		if err != nil {
			stdlog.Printf("Warning: mDNS advertising failed: %v", err)
		} else {
			defer adv.StopAll()
			stdlog.Printf("Advertising %s as %q", discovery.ServiceType, cfg.Name)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range sigCh {
		if sig == syscall.SIGHUP {
			if be.memory == nil {
				stdlog.Println("SIGHUP ignored: only the memory backend can be reset")
				continue
			}
			be.memory.Reset()
			logHardwareState(tracer, "RESET", "SIGHUP")
			stdlog.Println("Simulator reset to power-on values")
			continue
		}
		stdlog.Printf("Received signal: %v", sig)
		break
	}

	stdlog.Println("Shutting down...")
	if err := server.Stop(); err != nil {
		stdlog.Printf("Error stopping server: %v", err)
	}
	printStats(handler.Stats())
	return nil
}

// resetWindow writes the reset value of every documented register word.
func resetWindow(cfg *Config, be *backend, registry *isp.Registry, tracer log.Logger) {
	region := regionFor(cfg, be)
	for _, b := range registry.Blocks() {
		b.Reset(region)
	}
	logHardwareState(tracer, "RESET", "reset on start")
	stdlog.Printf("Wrote reset values for %d blocks", len(registry.Blocks()))
}

// logServerError logs a connection error, or a listener error when c is
// nil.
func logServerError(c *transport.ServerConn, err error) {
	if c == nil {
		stdlog.Printf("[LISTEN] %v", err)
		return
	}
	stdlog.Printf("[CONN] %s: %v", c.RemoteAddr(), err)
}

func regionFor(cfg *Config, be *backend) *regspace.Region {
	return regspace.NewRegion(be.space, cfg.Base, cfg.Size)
}

func advertise(ctx context.Context, cfg *Config, server *transport.Server, registry *isp.Registry) (*discovery.MDNSAdvertiser, error) {
	adv, err := discovery.NewMDNSAdvertiser(discovery.AdvertiserConfig{
		Interface: cfg.Interface,
		TTL:       discovery.DefaultTTL,
	})
	if err != nil {
		return nil, err
	}

	var blocks []string
	for _, b := range registry.Blocks() {
		blocks = append(blocks, b.Name)
	}

	info := &discovery.ServerInfo{
		Name:     cfg.Name,
		Board:    cfg.Board,
		Backend:  cfg.Backend,
		Base:     cfg.Base,
		Size:     cfg.Size,
		ReadOnly: cfg.ReadOnly,
		Blocks:   blocks,
		Version:  version.Current,
		Port:     uint16(listenPort(server)),
	}
	if err := adv.Advertise(ctx, info); err != nil {
		return nil, err
	}
	return adv, nil
}

func listenPort(server *transport.Server) int {
	if tcp, ok := server.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return discovery.DefaultPort
}

func logHardwareState(tracer log.Logger, state, reason string) {
	if tracer == nil {
		return
	}
	tracer.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: uuid.NewString(),
		Layer:     log.LayerWord,
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityHardware,
			NewState: state,
			Reason:   reason,
		},
	})
}

func printStats(stats map[wire.Operation]uint64) {
	if len(stats) == 0 {
		return
	}
	ops := make([]wire.Operation, 0, len(stats))
	for op := range stats {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	stdlog.Println("Requests served:")
	for _, op := range ops {
		stdlog.Printf("  %-12s %d", op, stats[op])
	}
}
