// Package csvsource adapts delimited text with a header row into raw
// records for the import pipeline, implementing ports.RecordSource.
package csvsource

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"tradejournal/internal/domain"
	"tradejournal/internal/ports"
)

// Source reads header-keyed CSV rows from an io.Reader.
type Source struct {
	r io.Reader
}

// New returns a source reading from r. The first row is the header;
// every later row becomes one RawRecord keyed by the header columns.
func New(r io.Reader) *Source {
	return &Source{r: r}
}

// FromFile returns a source over the named file. The file is read eagerly
// so the caller does not manage its lifetime.
func FromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w (%w)", path, err, ports.ErrSourceFailed)
	}
	return New(bytes.NewReader(data)), nil
}

// Read parses the whole input. Blank lines are dropped, short rows leave
// their trailing columns absent, and extra columns beyond the header are
// ignored. Any parse error fails the read as a whole so the caller can
// abort the import without a partial overwrite.
func (s *Source) Read(ctx context.Context) ([]domain.RawRecord, error) {
	reader := csv.NewReader(s.r)
	reader.FieldsPerRecord = -1 // Tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w (%w)", err, ports.ErrSourceFailed)
	}

	var records []domain.RawRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ports.ErrContextCanceled, err)
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse row: %w (%w)", err, ports.ErrSourceFailed)
		}
		if isBlank(row) {
			continue
		}

		record := make(domain.RawRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, field := range row {
		if field != "" {
			return false
		}
	}
	return true
}
