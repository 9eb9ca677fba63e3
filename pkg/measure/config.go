package measure

import (
	"fmt"
	"strings"
)

// Mode selects how instantaneous power is derived from a row.
type Mode int

const (
	// ModePower reads watts directly from the power column.
	ModePower Mode = iota
	// ModeVoltageCurrent multiplies the voltage and current columns.
	ModeVoltageCurrent
	// ModePercent treats the percent column as a fraction of full scale;
	// PowerScale supplies the full-scale wattage.
	ModePercent
)

func (m Mode) String() string {
	switch m {
	case ModePower:
		return "power"
	case ModeVoltageCurrent:
		return "voltage*current"
	case ModePercent:
		return "percent"
	default:
		return "unknown"
	}
}

// Config holds the column bindings and parsing options for one run.
// It is resolved once before any row is read and never mutated afterwards.
//
// Column names are matched against the CSV header verbatim. TimeFormat is a
// Go reference layout; when empty, timestamps are parsed as ISO 8601.
// PowerScale is a multiplier applied after the per-mode watt computation
// (values <= 0 mean 1.0).
type Config struct {
	Delimiter     rune
	TimeColumn    string
	PowerColumn   string
	VoltageColumn string
	CurrentColumn string
	PercentColumn string
	TimeFormat    string
	PowerScale    float64
}

// DefaultConfig returns a Config with the conventional bindings: comma
// delimiter, "timestamp" time column, "power" power column, scale 1.0.
func DefaultConfig() *Config {
	return &Config{
		Delimiter:   ',',
		TimeColumn:  "timestamp",
		PowerColumn: "power",
		PowerScale:  1.0,
	}
}

// Resolve validates the configuration and selects the power input mode.
// An empty power column opts into voltage*current when both of those
// columns are bound, or percent mode when a percent column is bound.
func (c *Config) Resolve() (Mode, error) {
	if strings.TrimSpace(c.TimeColumn) == "" {
		return 0, fmt.Errorf("%w: time column name is empty", ErrMissingColumn)
	}
	switch {
	case strings.TrimSpace(c.PowerColumn) != "":
		return ModePower, nil
	case strings.TrimSpace(c.VoltageColumn) != "" && strings.TrimSpace(c.CurrentColumn) != "":
		return ModeVoltageCurrent, nil
	case strings.TrimSpace(c.PercentColumn) != "":
		return ModePercent, nil
	default:
		return 0, ErrNoPowerSource
	}
}

// requiredColumns lists the header names mode needs, time column first.
func (c *Config) requiredColumns(mode Mode) []string {
	switch mode {
	case ModeVoltageCurrent:
		return []string{c.TimeColumn, c.VoltageColumn, c.CurrentColumn}
	case ModePercent:
		return []string{c.TimeColumn, c.PercentColumn}
	default:
		return []string{c.TimeColumn, c.PowerColumn}
	}
}

// resolveColumns maps each required column name to its header index.
func (c *Config) resolveColumns(mode Mode, header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	cols := make(map[string]int)
	for _, name := range c.requiredColumns(mode) {
		name = strings.TrimSpace(name)
		i, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		cols[name] = i
	}
	return cols, nil
}

// scale returns the effective post-computation multiplier.
func (c *Config) scale() float64 {
	if c.PowerScale > 0 {
		return c.PowerScale
	}
	return 1.0
}

// delimiter returns the effective field delimiter.
func (c *Config) delimiter() rune {
	if c.Delimiter != 0 {
		return c.Delimiter
	}
	return ','
}
