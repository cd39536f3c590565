package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/acamera-isp/ispreg-go/pkg/log"
)

// RunExport exports the events matching filter in the given format.
func RunExport(path string, filter log.Filter, format, output string) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{
	"timestamp", "session_id", "layer", "category", "direction",
	"op", "address", "value", "mask", "previous", "name", "index", "frame_size", "error",
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func csvRow(event log.Event) []string {
	row := make([]string, len(csvHeader))
	row[0] = event.Timestamp.UTC().Format(timeFormat)
	row[1] = event.SessionID
	row[2] = event.Layer.String()
	row[3] = event.Category.String()
	row[4] = event.Direction.String()

	if a := event.Access; a != nil {
		row[5] = a.Op.String()
		row[6] = hex32(a.Address)
		row[7] = hex32(a.Value)
		if a.Mask != nil {
			row[8] = hex32(*a.Mask)
		}
		if a.Previous != nil {
			row[9] = hex32(*a.Previous)
		}
		row[10] = a.Name
		if a.Index != nil {
			row[11] = strconv.FormatUint(uint64(*a.Index), 10)
		}
	}
	if event.Frame != nil {
		row[12] = strconv.Itoa(event.Frame.Size)
	}
	if event.Error != nil {
		row[13] = event.Error.Message
	}
	return row
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}
