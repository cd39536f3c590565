// Command isp-reglog views and analyzes register trace files.
//
// Trace files are written by isp-reg and isp-regd when they run with the
// -trace flag.
//
// Usage:
//
//	isp-reglog <command> [flags] <file.rlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSONL or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	isp-reglog view regd.rlog
//
//	# One line per field write
//	isp-reglog view -compact -layer field -op write regd.rlog
//
//	# Accesses to the active size and Bayer order words
//	isp-reglog view -addr-low 0x18e88 -addr-high 0x18e8c regd.rlog
//
//	# Export to CSV
//	isp-reglog export -format csv -o regd.csv regd.rlog
//
//	# Keep one session
//	isp-reglog filter -session 3f2a81c0-... -o session.rlog regd.rlog
//
//	# Show statistics
//	isp-reglog stats regd.rlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/acamera-isp/ispreg-go/cmd/isp-reglog/commands"
	"github.com/acamera-isp/ispreg-go/pkg/log"
)

const usage = `isp-reglog - ISP Register Trace Analyzer

Usage:
  isp-reglog <command> [flags] <file.rlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSONL or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "isp-reglog <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// newFlagSet creates the flag set of a command, with the shared filter
// flags registered into opts.
func newFlagSet(name, summary string, opts *commands.FilterOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "isp-reglog %s - %s\n\nUsage:\n  isp-reglog %s [flags] <file.rlog>\n\nFlags:\n", name, summary, name)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.SessionID, "session", "", "Filter by session ID")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (word, field, lut, transport)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter frames by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (access, state, error, message)")
	fs.StringVar(&opts.Op, "op", "", "Filter accesses by operation (read, write, modify)")
	fs.StringVar(&opts.Name, "name", "", "Filter accesses by field or table name")
	fs.StringVar(&opts.AddrLow, "addr-low", "", "Lowest word address to include")
	fs.StringVar(&opts.AddrHigh, "addr-high", "", "Highest word address to include")
	return fs
}

// parseArgs parses the command line of a command and returns the trace
// path and the filter.
func parseArgs(fs *flag.FlagSet, args []string, opts *commands.FilterOptions) (string, log.Filter) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := commands.BuildFilter(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return fs.Arg(0), filter
}

func runView(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("view", "View trace file in human-readable format", &opts)
	compact := fs.Bool("compact", false, "One line per event")

	path, filter := parseArgs(fs, args, &opts)

	if err := commands.RunView(path, filter, *compact, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("export", "Export trace file to JSONL or CSV format", &opts)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	path, filter := parseArgs(fs, args, &opts)

	if err := commands.RunExport(path, filter, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("filter", "Filter trace file and write to new file", &opts)
	output := fs.String("o", "", "Output file (required)")

	path, filter := parseArgs(fs, args, &opts)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunFilter(path, *output, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	var opts commands.FilterOptions
	fs := newFlagSet("stats", "Show statistics about the trace file", &opts)

	path, filter := parseArgs(fs, args, &opts)

	if err := commands.RunStats(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
