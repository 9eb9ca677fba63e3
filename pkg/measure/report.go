package measure

import (
	"time"

	"github.com/rmarques/consumo/pkg/types"
)

// Result summarizes one processed file: its time span, how many rows
// survived parsing, and the integrated energy.
type Result struct {
	Path    string
	Start   time.Time
	End     time.Time
	Samples int
	Skipped int
	Energy  types.Energy
}

// DurationHours returns the span between the first and last sample in hours.
func (r Result) DurationHours() float64 {
	if r.Samples < 2 {
		return 0
	}
	return r.End.Sub(r.Start).Seconds() / 3600.0
}

// Summarize integrates the file's samples and builds its Result.
func Summarize(data *FileData) Result {
	energy := Integrate(data.Samples)
	res := Result{
		Path:    data.Path,
		Samples: len(data.Samples),
		Skipped: len(data.Skipped),
		Energy:  energy,
	}
	if len(data.Samples) > 0 {
		res.Start = data.Samples[0].Timestamp
		res.End = data.Samples[len(data.Samples)-1].Timestamp
	}
	return res
}

// Consolidate aggregates per-file results into one batch total: energies
// and counts are summed, the span runs from the earliest start to the
// latest end. Files with zero samples contribute counts only.
func Consolidate(results []Result) Result {
	total := Result{Path: "total"}
	for _, r := range results {
		total.Samples += r.Samples
		total.Skipped += r.Skipped
		total.Energy += r.Energy
		if r.Samples == 0 {
			continue
		}
		if total.Start.IsZero() || r.Start.Before(total.Start) {
			total.Start = r.Start
		}
		if r.End.After(total.End) {
			total.End = r.End
		}
	}
	return total
}
