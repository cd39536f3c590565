package commands

import (
	"fmt"
	"io"

	"github.com/acamera-isp/ispreg-go/pkg/log"
)

// RunFilter copies the events of path that match filter to output and
// reports how many were kept.
func RunFilter(path, output string, filter log.Filter, w io.Writer) error {
	if output == path {
		return fmt.Errorf("output file must differ from %s", path)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Close()
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
	}

	count := logger.Count()
	if err := logger.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := logger.Err(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(w, "Wrote %d events to %s\n", count, output)
	return nil
}
