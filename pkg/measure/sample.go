package measure

import "time"

// Sample is one power measurement at a specific instant.
type Sample struct {
	Timestamp time.Time
	PowerW    float64
}
