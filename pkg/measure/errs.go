package measure

import "errors"

var (
	// ErrNoPowerSource indicates that neither a power column, a voltage and
	// current pair, nor a percent column was configured.
	ErrNoPowerSource = errors.New("measure: no power, voltage/current or percent column configured")

	// ErrMissingColumn indicates that a configured column is absent from the CSV header.
	ErrMissingColumn = errors.New("measure: required column missing from header")

	// ErrEmptyValue indicates an empty cell where a number or timestamp was expected.
	ErrEmptyValue = errors.New("measure: empty value")

	// ErrBadNumber indicates a cell that could not be parsed as a finite number.
	ErrBadNumber = errors.New("measure: malformed numeric value")

	// ErrBadTimestamp indicates a cell that could not be parsed as a timestamp.
	ErrBadTimestamp = errors.New("measure: malformed timestamp")

	// ErrNoCSVFiles indicates that a directory input contained no CSV files.
	ErrNoCSVFiles = errors.New("measure: no csv files in directory")
)
