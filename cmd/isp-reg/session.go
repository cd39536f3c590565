package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/inspect"
	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
	"github.com/acamera-isp/ispreg-go/pkg/persistence"
	"github.com/acamera-isp/ispreg-go/pkg/remote"
)

// ErrUsage is returned for malformed commands.
var ErrUsage = errors.New("usage")

// errQuit ends the shell.
var errQuit = errors.New("quit")

// Session executes register commands against one target window.
type Session struct {
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	remote    *remote.Space // nil for the local simulator
	target    string
	out       io.Writer
}

// NewSession creates a session writing results to out.
func NewSession(in *inspect.Inspector, rs *remote.Space, target string, out io.Writer) *Session {
	return &Session{
		inspector: in,
		formatter: inspect.NewFormatter(),
		remote:    rs,
		target:    target,
		out:       out,
	}
}

// Exec runs one command. Errors of the register target that surface during
// the command are returned even when the command itself succeeded.
func (s *Session) Exec(args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, rest := strings.ToLower(args[0]), args[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "read", "r":
		err = s.cmdRead(rest)
	case "write", "w":
		err = s.cmdWrite(rest)
	case "dump", "d":
		err = s.cmdDump(rest)
	case "changed":
		err = s.cmdChanged(rest)
	case "lut":
		err = s.cmdLUT(rest)
	case "reset":
		err = s.cmdReset(rest)
	case "save":
		err = s.cmdSave(rest)
	case "restore":
		err = s.cmdRestore(rest)
	case "diff":
		err = s.cmdDiff(rest)
	case "blocks", "ls":
		s.cmdBlocks()
	case "info":
		s.cmdInfo()
	case "ping":
		err = s.cmdPing()
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (type 'help' for commands)", cmd)
	}

	if err != nil {
		return err
	}
	return s.inspector.Err()
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `ISP Register Commands:
  Access:
    read <path>               - Read a field, LUT entry or raw word
    write <path> <value>      - Write a field (enum names accepted), LUT entry or word
    lut <block/lut>           - Show every entry of a table
    lut load <block/lut> <f>  - Load a table from a file of numbers

  Blocks:
    blocks                    - List register blocks
    dump [block]              - Show registers of one or all blocks
    changed [block]           - Show fields that differ from their reset value
    reset <block>             - Write reset values to a block

  Snapshots:
    save <file> [block...]    - Save register words to a JSON snapshot
    restore <file>            - Write a snapshot back (ascending address order)
    diff <file>               - Compare a snapshot with the current words

  General:
    info                      - Show the target window
    ping                      - Check a remote server
    help                      - Show this help
    quit                      - Exit

  Path Format:
    block/field        e.g. isp_top/active_width
    block/lut[index]   e.g. noise_profile/weight_lut[5]
    0xOFFSET           raw word, e.g. 0x18e88`)
}

func (s *Session) cmdRead(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: read <path>", ErrUsage)
	}
	p, err := inspect.ParsePath(args[0])
	if err != nil {
		return err
	}
	v, err := s.inspector.Read(p)
	if err != nil {
		return err
	}
	s.printValue(p, v)
	return nil
}

func (s *Session) cmdWrite(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: write <path> <value>", ErrUsage)
	}
	p, err := inspect.ParsePath(args[0])
	if err != nil {
		return err
	}
	if err := s.inspector.Write(p, args[1]); err != nil {
		return err
	}
	v, err := s.inspector.Read(p)
	if err != nil {
		return err
	}
	s.printValue(p, v)
	return nil
}

func (s *Session) printValue(p *inspect.Path, v uint32) {
	if p.IsAddress {
		fmt.Fprintln(s.out, inspect.FormatWord(s.inspector.Region().Addr(p.Address), v))
		return
	}
	t, err := s.inspector.Resolve(p)
	if err == nil && t.Field != nil {
		fmt.Fprintf(s.out, "%s = %s\n", p, s.formatter.FormatValue(t.Field, v))
		return
	}
	fmt.Fprintf(s.out, "%s = 0x%x (%d)\n", p, v, v)
}

func (s *Session) cmdDump(args []string) error {
	if len(args) == 0 {
		for _, info := range s.inspector.InspectAll() {
			fmt.Fprint(s.out, s.formatter.FormatBlock(info))
		}
		return nil
	}
	for _, name := range args {
		info, err := s.inspector.InspectBlock(name)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, s.formatter.FormatBlock(info))
	}
	return nil
}

func (s *Session) cmdChanged(args []string) error {
	var infos []*inspect.BlockInfo
	if len(args) == 0 {
		infos = s.inspector.InspectAll()
	} else {
		for _, name := range args {
			info, err := s.inspector.InspectBlock(name)
			if err != nil {
				return err
			}
			infos = append(infos, info)
		}
	}

	found := false
	for _, info := range infos {
		rows := info.Changed()
		if len(rows) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(s.out, "%s:\n", info.Name)
		fmt.Fprint(s.out, s.formatter.FormatFieldTable(rows, 1))
	}
	if !found {
		fmt.Fprintln(s.out, "All fields hold their reset values")
	}
	return nil
}

func (s *Session) cmdLUT(args []string) error {
	if len(args) == 3 && args[0] == "load" {
		return s.cmdLUTLoad(args[1], args[2])
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: lut <block/lut> | lut load <block/lut> <file>", ErrUsage)
	}
	p, err := inspect.ParsePath(args[0])
	if err != nil {
		return err
	}
	values, d, err := s.inspector.ReadLUT(p)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, s.formatter.FormatLUT(d, values))
	return nil
}

func (s *Session) cmdLUTLoad(path, file string) error {
	p, err := inspect.ParsePath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	values, err := parseTable(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := s.inspector.LoadLUT(p, values); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Loaded %d entries into %s\n", len(values), p)
	return nil
}

// parseTable reads numbers separated by whitespace or commas. Lines
// starting with '#' are comments.
func parseTable(text string) ([]uint32, error) {
	var values []uint32
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := inspect.ParseValue(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

func (s *Session) cmdReset(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: reset <block>", ErrUsage)
	}
	if err := s.inspector.ResetBlock(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Block %s reset\n", args[0])
	return nil
}

// snapshotOffsets returns every register and table word of the named
// blocks, or of all blocks when names is empty.
func (s *Session) snapshotOffsets(names []string) ([]string, []uint32, error) {
	reg := s.inspector.Registry()
	var blocks []*isp.Block
	if len(names) == 0 {
		blocks = reg.Blocks()
	} else {
		for _, name := range names {
			b, err := reg.Block(name)
			if err != nil {
				return nil, nil, err
			}
			blocks = append(blocks, b)
		}
	}

	var used []string
	var offsets []uint32
	for _, b := range blocks {
		used = append(used, b.Name)
		offsets = append(offsets, b.Offsets()...)
		for _, d := range b.LUTs {
			offsets = append(offsets, lutWords(d)...)
		}
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
	return used, offsets, nil
}

func lutWords(d *lut.Descriptor) []uint32 {
	out := make([]uint32, d.Words())
	for k := range out {
		out[k] = d.Offset + uint32(k)*4
	}
	return out
}

func (s *Session) cmdSave(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: save <file> [block...]", ErrUsage)
	}
	blocks, offsets, err := s.snapshotOffsets(args[1:])
	if err != nil {
		return err
	}
	snap := persistence.Capture(s.inspector.Region(), offsets)
	snap.Blocks = blocks
	if err := s.inspector.Err(); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if err := persistence.NewSnapshotStore(args[0]).Save(snap); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Saved %d words to %s\n", len(snap.Words), args[0])
	return nil
}

func (s *Session) loadSnapshot(file string) (*persistence.Snapshot, error) {
	snap, err := persistence.NewSnapshotStore(file).Load()
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, fmt.Errorf("%s: %w", file, os.ErrNotExist)
	}
	return snap, nil
}

func (s *Session) cmdRestore(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: restore <file>", ErrUsage)
	}
	snap, err := s.loadSnapshot(args[0])
	if err != nil {
		return err
	}
	if err := snap.Restore(s.inspector.Region()); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Restored %d words from %s (saved %s)\n",
		len(snap.Words), args[0], snap.SavedAt.Format(time.RFC3339))
	return nil
}

func (s *Session) cmdDiff(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: diff <file>", ErrUsage)
	}
	saved, err := s.loadSnapshot(args[0])
	if err != nil {
		return err
	}
	current := persistence.Capture(s.inspector.Region(), saved.Offsets())
	diff := saved.Diff(current)
	if len(diff) == 0 {
		fmt.Fprintln(s.out, "No differences")
		return nil
	}
	region := s.inspector.Region()
	for _, off := range diff {
		fmt.Fprintf(s.out, "0x%08x: 0x%08x -> 0x%08x\n", region.Addr(off), saved.Words[off], current.Words[off])
	}
	fmt.Fprintf(s.out, "%d words differ\n", len(diff))
	return nil
}

func (s *Session) cmdBlocks() {
	for _, b := range s.inspector.Registry().Blocks() {
		fmt.Fprintf(s.out, "%-16s 0x%05x  %3d fields  %d tables  %s\n",
			b.Name, b.Base, len(b.Fields), len(b.LUTs), b.Description)
	}
}

func (s *Session) cmdInfo() {
	r := s.inspector.Region()
	fmt.Fprintf(s.out, "Target: %s\n", s.target)
	fmt.Fprintf(s.out, "Window: %s\n", r)
}

func (s *Session) cmdPing() error {
	if s.remote == nil {
		fmt.Fprintln(s.out, "local simulator, nothing to ping")
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), remote.DefaultTimeout)
	defer cancel()
	start := time.Now()
	if err := s.remote.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "pong from %s in %s\n", s.target, time.Since(start).Round(time.Microsecond))
	return nil
}
