package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergy_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Energy
		want string
	}{
		{Energy(0), "0.00 Wh"},
		{Energy(1), "1.00 Wh"},
		{Energy(999.99), "999.99 Wh"},        // just below 1 kWh
		{Energy(1000), "1.00 kWh"},           // exactly 1 kWh
		{Energy(999_999), "1000.00 kWh"},     // just below 1 MWh
		{Energy(1_000_000), "1.00 MWh"},      // exactly 1 MWh
		{Energy(999_999_999), "1000.00 MWh"}, // just below 1 GWh
		{Energy(1_000_000_000), "1.00 GWh"},  // exactly 1 GWh
		{Energy(1_500_000_000), "1.50 GWh"},  // above 1 GWh
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			got := tc.in.Humanized()
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEnergy_Humanized_Negative(t *testing.T) {
	// Net export stays in the right unit bucket
	assert.Equal(t, "-1.50 kWh", Energy(-1500).Humanized())
	assert.Equal(t, "-250.00 Wh", Energy(-250).Humanized())
}

func TestEnergy_UnitAccessors(t *testing.T) {
	e := Energy(12450)
	assert.InDelta(t, 12450.0, e.Wh(), 1e-12)
	assert.InDelta(t, 12.45, e.KWh(), 1e-12)
	assert.InDelta(t, 0.01245, e.MWh(), 1e-12)

	e = Energy(0)
	assert.InDelta(t, 0.0, e.Wh(), 1e-12)
	assert.InDelta(t, 0.0, e.KWh(), 1e-12)
}
