// Command isp-reg reads and writes ISP registers by name.
//
// Without -connect or -browse it works on a local simulator that starts
// from the documented reset values, which is handy for checking paths and
// encodings without hardware. With -connect or -browse it talks to an
// isp-regd server.
//
// Usage:
//
//	isp-reg [flags] [command [args...]]
//
// With no command, an interactive shell is started when stdin is a
// terminal; otherwise commands are read from stdin one per line.
//
// Flags:
//
//	-connect string  isp-regd address (host:port)
//	-browse string   Find an isp-regd server by mDNS instance name
//	-base string     Window base address on the server (default from mDNS, else 0)
//	-timeout dur     Request timeout (default 5s)
//	-retry int       Connection attempts before giving up (default 1)
//	-trace string    Write a register trace (.rlog) to this file
//
// Examples:
//
//	# Read a field on the local simulator
//	isp-reg read isp_top/active_width
//
//	# Set the Bayer start position on a board found via mDNS
//	isp-reg -browse cam0 write isp_top/rggb_start GB_B_R_GR
//
//	# Save the ISP state of a remote board
//	isp-reg -connect 192.168.1.20:7810 save /tmp/cam0.json
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/acamera-isp/ispreg-go/pkg/discovery"
	"github.com/acamera-isp/ispreg-go/pkg/inspect"
	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/log"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
	"github.com/acamera-isp/ispreg-go/pkg/remote"
	"github.com/acamera-isp/ispreg-go/pkg/transport"
	"github.com/acamera-isp/ispreg-go/pkg/version"
)

var (
	connectAddr string
	browseName  string
	baseFlag    string
	timeout     time.Duration
	retries     int
	traceFile   string
)

func init() {
	flag.StringVar(&connectAddr, "connect", "", "isp-regd address (host:port)")
	flag.StringVar(&browseName, "browse", "", "Find an isp-regd server by mDNS instance name")
	flag.StringVar(&baseFlag, "base", "", "Window base address on the server (default from mDNS, else 0)")
	flag.DurationVar(&timeout, "timeout", remote.DefaultTimeout, "Request timeout")
	flag.IntVar(&retries, "retry", 1, "Connection attempts before giving up")
	flag.StringVar(&traceFile, "trace", "", "Write a register trace (.rlog) to this file")
}

// target is the register window a session works on.
type target struct {
	space  regspace.Space
	remote *remote.Space
	base   uint32
	name   string
}

func (t *target) Close() error {
	if t.remote != nil {
		return t.remote.Close()
	}
	return nil
}

func main() {
	flag.Parse()
	stdlog.SetFlags(0)

	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "isp-reg: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx := context.Background()

	t, err := openTarget(ctx)
	if err != nil {
		return err
	}
	defer t.Close()

	registry := isp.Default()
	region := regspace.NewRegion(t.space, t.base, isp.WindowSize)
	in := inspect.NewInspector(region, registry)

	if traceFile != "" {
		fl, err := log.NewFileLogger(traceFile)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer fl.Close()
		in.SetLogger(fl, uuid.NewString())
	}

	session := NewSession(in, t.remote, t.name, os.Stdout)

	if len(args) > 0 {
		err := session.Exec(args)
		if err == errQuit {
			return nil
		}
		return err
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return runShell(session, "isp> ")
	}
	return runScript(session, os.Stdin)
}

// openTarget connects to the server selected by the flags, or creates the
// local simulator.
func openTarget(ctx context.Context) (*target, error) {
	var base uint32
	baseSet := baseFlag != ""
	if baseSet {
		v, err := inspect.ParseValue(baseFlag)
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		base = v
	}

	addr := connectAddr
	if browseName != "" {
		if addr != "" {
			return nil, fmt.Errorf("-connect and -browse are mutually exclusive")
		}
		svc, err := browse(ctx, browseName)
		if err != nil {
			return nil, err
		}
		addr = svc.Addr()
		if !baseSet {
			base = svc.Base
		}
	}

	if addr == "" {
		mem := regspace.NewMemoryWithImage(relocate(isp.Default().ResetImage(), base))
		return &target{space: mem, base: base, name: "local simulator"}, nil
	}

	rs, err := remote.DialRetry(ctx, addr, transport.ClientConfig{ConnectTimeout: timeout}, remote.RetryConfig{Attempts: retries})
	if err != nil {
		return nil, err
	}
	rs.SetTimeout(timeout)
	return &target{space: rs, remote: rs, base: base, name: addr}, nil
}

func browse(ctx context.Context, name string) (*discovery.ServerService, error) {
	b, err := discovery.NewMDNSBrowser(discovery.DefaultBrowserConfig())
	if err != nil {
		return nil, err
	}
	defer b.Stop()

	svc, err := b.Find(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := version.Check(svc.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if svc.ReadOnly {
		stdlog.Printf("note: %s is read-only", name)
	}
	stdlog.Printf("found %s (%s, %s backend) at %s", svc.Name, svc.Board, svc.Backend, svc.Addr())
	if len(svc.Blocks) > 0 {
		stdlog.Printf("blocks: %s", strings.Join(svc.Blocks, ", "))
	}
	return svc, nil
}

func relocate(image map[uint32]uint32, base uint32) map[uint32]uint32 {
	out := make(map[uint32]uint32, len(image))
	for off, v := range image {
		out[base+off] = v
	}
	return out
}
