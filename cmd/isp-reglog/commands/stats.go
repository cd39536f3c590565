package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/log"
)

// hotWordLimit is the number of most written addresses printed.
const hotWordLimit = 10

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByLayer    map[log.Layer]int
	EventsByCategory map[log.Category]int
	AccessesByOp     map[log.Op]int
	Sessions         map[string]*SessionStats
	WritesByAddress  map[uint32]int
	NamesWritten     map[uint32]string
	FrameBytes       map[log.Direction]int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single session.
type SessionStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Writes     int
	RemoteAddr string
}

// RunStats analyzes the events matching filter and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func newStats() *Stats {
	return &Stats{
		EventsByLayer:    make(map[log.Layer]int),
		EventsByCategory: make(map[log.Category]int),
		AccessesByOp:     make(map[log.Op]int),
		Sessions:         make(map[string]*SessionStats),
		WritesByAddress:  make(map[uint32]int),
		NamesWritten:     make(map[uint32]string),
		FrameBytes:       make(map[log.Direction]int),
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}
	if event.RemoteAddr != "" && sess.RemoteAddr == "" {
		sess.RemoteAddr = event.RemoteAddr
	}

	if a := event.Access; a != nil {
		s.AccessesByOp[a.Op]++
		if a.Op != log.OpRead {
			sess.Writes++
			s.WritesByAddress[a.Address]++
			if a.Name != "" {
				s.NamesWritten[a.Address] = a.Name
			}
		}
	}
	if event.Frame != nil {
		s.FrameBytes[event.Direction] += event.Frame.Size
	}
	if event.Error != nil {
		s.Errors++
	}
}

// hotWords returns the most written addresses, highest count first.
func (s *Stats) hotWords(limit int) []uint32 {
	addrs := make([]uint32, 0, len(s.WritesByAddress))
	for addr := range s.WritesByAddress {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		ci, cj := s.WritesByAddress[addrs[i]], s.WritesByAddress[addrs[j]]
		if ci != cj {
			return ci > cj
		}
		return addrs[i] < addrs[j]
	})
	if len(addrs) > limit {
		addrs = addrs[:limit]
	}
	return addrs
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== ISP Register Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerWord, log.LayerField, log.LayerLUT, log.LayerTransport} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryAccess, log.CategoryState, log.CategoryError, log.CategoryMessage} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.AccessesByOp) > 0 {
		fmt.Fprintln(w, "Accesses:")
		for _, op := range []log.Op{log.OpRead, log.OpWrite, log.OpModify} {
			if count := stats.AccessesByOp[op]; count > 0 {
				fmt.Fprintf(w, "  %-12s %d\n", op.String()+":", count)
			}
		}
		fmt.Fprintln(w)
	}

	if len(stats.FrameBytes) > 0 {
		fmt.Fprintln(w, "Frame Bytes:")
		for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
			if n := stats.FrameBytes[dir]; n > 0 {
				fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", n)
			}
		}
		fmt.Fprintln(w)
	}

	if hot := stats.hotWords(hotWordLimit); len(hot) > 0 {
		fmt.Fprintln(w, "Most Written:")
		for _, addr := range hot {
			fmt.Fprintf(w, "  0x%08x %6d", addr, stats.WritesByAddress[addr])
			if name := stats.NamesWritten[addr]; name != "" {
				fmt.Fprintf(w, "  %s", name)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	ids := make([]string, 0, len(stats.Sessions))
	for id := range stats.Sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		sess := stats.Sessions[id]
		label := shortenSessionID(id)
		if label == "" {
			label = "(none)"
		}
		fmt.Fprintf(w, "  %-10s %d events, %d writes", label, sess.Events, sess.Writes)
		if sess.RemoteAddr != "" {
			fmt.Fprintf(w, " from %s", sess.RemoteAddr)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
}
