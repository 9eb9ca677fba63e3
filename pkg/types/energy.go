package types

import "fmt"

// Energy is a float64 wrapper representing an amount of energy in watt-hours.
type Energy float64

// Humanized returns a human-readable string with automatic unit (Wh, kWh, MWh, GWh).
func (e Energy) Humanized() string {
	const unit = 1000
	v := float64(e)
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= unit*unit*unit:
		return fmt.Sprintf("%.2f GWh", v/(unit*unit*unit))
	case abs >= unit*unit:
		return fmt.Sprintf("%.2f MWh", v/(unit*unit))
	case abs >= unit:
		return fmt.Sprintf("%.2f kWh", v/unit)
	default:
		return fmt.Sprintf("%.2f Wh", v)
	}
}

// Wh returns the energy in watt-hours.
func (e Energy) Wh() float64 { return float64(e) }

// KWh returns the energy in kilowatt-hours.
func (e Energy) KWh() float64 { return float64(e) / 1000 }

// MWh returns the energy in megawatt-hours.
func (e Energy) MWh() float64 { return float64(e) / (1000 * 1000) }
