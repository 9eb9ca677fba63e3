// Package measure turns timestamped CSV measurement logs into energy
// consumption estimates.
//
// The pipeline is linear and runs once per file:
//
//  1. Config.Resolve selects the power input mode (direct power column,
//     voltage*current, or percent of full scale) and the header is checked
//     for the columns that mode requires.
//  2. ReadFile parses each row into a Sample (timestamp + watts), skipping
//     malformed rows instead of aborting.
//  3. Integrate sorts the samples chronologically and applies trapezoidal
//     integration of power over elapsed time, yielding watt-hours.
//  4. Summarize/Consolidate build per-file and batch Results.
//
// Numeric cells accept both '.' and ',' as the decimal separator.
// Timestamps default to ISO 8601 and can be overridden with an explicit Go
// reference layout in Config.TimeFormat.
//
// File-level failures (unreadable file, missing column) are errors; row-level
// failures are collected in FileData.Skipped so callers can warn and carry on.
package measure
