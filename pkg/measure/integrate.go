package measure

import (
	"slices"

	"github.com/rmarques/consumo/pkg/types"
)

// Integrate sorts samples ascending by timestamp (stable, in place) and
// returns the trapezoidal integral of power over elapsed time in watt-hours.
//
// Fewer than two samples integrate to zero, a valid zero-consumption
// result. A pair sharing the same timestamp contributes zero regardless of
// its power values.
func Integrate(samples []Sample) types.Energy {
	slices.SortStableFunc(samples, func(a, b Sample) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	if len(samples) < 2 {
		return 0
	}

	var totalWh float64
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		dtHours := cur.Timestamp.Sub(prev.Timestamp).Seconds() / 3600.0
		totalWh += 0.5 * (prev.PowerW + cur.PowerW) * dtHours
	}
	return types.Energy(totalWh)
}
