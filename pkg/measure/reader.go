package measure

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// RowError records one skipped row and why it was skipped.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Line, e.Err) }

func (e RowError) Unwrap() error { return e.Err }

// FileData is the parsed content of one CSV file prior to integration.
type FileData struct {
	Path    string
	Samples []Sample
	Skipped []RowError
}

// ReadFile parses one CSV file into timestamped power samples.
//
// The header is validated against cfg before any row is read; a missing
// required column fails the whole file. Malformed rows (bad number, bad
// timestamp, ragged record) are recorded in Skipped and never abort the
// file, so a file full of garbage still returns an empty, valid FileData.
func ReadFile(path string, cfg *Config) (*FileData, error) {
	mode, err := cfg.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = cfg.delimiter()
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	if len(header) > 0 {
		// files exported on Windows often carry a UTF-8 BOM
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols, err := cfg.resolveColumns(mode, header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	data := &FileData{Path: path}
	line := 1
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			data.Skipped = append(data.Skipped, RowError{Line: line, Err: err})
			continue
		}
		sample, rerr := parseRow(record, cols, mode, cfg)
		if rerr != nil {
			data.Skipped = append(data.Skipped, RowError{Line: line, Err: rerr})
			continue
		}
		data.Samples = append(data.Samples, sample)
	}
	return data, nil
}

// parseRow builds one Sample from a raw record under the resolved mode.
func parseRow(record []string, cols map[string]int, mode Mode, cfg *Config) (Sample, error) {
	field := func(column string) string {
		i, ok := cols[strings.TrimSpace(column)]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	ts, err := parseTimestamp(field(cfg.TimeColumn), cfg.TimeFormat)
	if err != nil {
		return Sample{}, err
	}

	watts, err := powerWatts(field, mode, cfg)
	if err != nil {
		return Sample{}, err
	}

	return Sample{Timestamp: ts, PowerW: watts}, nil
}

// powerWatts derives instantaneous power in watts for one record.
// The configured PowerScale multiplies the per-mode value; in percent mode
// the raw value is first divided by 100, so percent=50 with scale=60 is 30 W.
func powerWatts(field func(string) string, mode Mode, cfg *Config) (float64, error) {
	var watts float64
	switch mode {
	case ModeVoltageCurrent:
		volts, err := parseFloat(field(cfg.VoltageColumn), cfg.VoltageColumn)
		if err != nil {
			return 0, err
		}
		amps, err := parseFloat(field(cfg.CurrentColumn), cfg.CurrentColumn)
		if err != nil {
			return 0, err
		}
		watts = volts * amps
	case ModePercent:
		percent, err := parseFloat(field(cfg.PercentColumn), cfg.PercentColumn)
		if err != nil {
			return 0, err
		}
		watts = percent / 100.0
	default:
		power, err := parseFloat(field(cfg.PowerColumn), cfg.PowerColumn)
		if err != nil {
			return 0, err
		}
		watts = power
	}
	return watts * cfg.scale(), nil
}
