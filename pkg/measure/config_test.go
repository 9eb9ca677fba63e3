package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Resolve_Modes(t *testing.T) {
	cfg := DefaultConfig()
	mode, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ModePower, mode)

	cfg = &Config{TimeColumn: "ts", VoltageColumn: "v", CurrentColumn: "i"}
	mode, err = cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ModeVoltageCurrent, mode)

	cfg = &Config{TimeColumn: "ts", PercentColumn: "load"}
	mode, err = cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ModePercent, mode)

	// power column wins when several are bound
	cfg = &Config{TimeColumn: "ts", PowerColumn: "p", PercentColumn: "load"}
	mode, err = cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, ModePower, mode)
}

func TestConfig_Resolve_NoPowerSource(t *testing.T) {
	cfg := &Config{TimeColumn: "ts"}
	_, err := cfg.Resolve()
	require.ErrorIs(t, err, ErrNoPowerSource)

	// voltage without current is not enough
	cfg = &Config{TimeColumn: "ts", VoltageColumn: "v"}
	_, err = cfg.Resolve()
	require.ErrorIs(t, err, ErrNoPowerSource)
}

func TestConfig_Resolve_NoTimeColumn(t *testing.T) {
	cfg := &Config{PowerColumn: "p"}
	_, err := cfg.Resolve()
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestConfig_ResolveColumns(t *testing.T) {
	cfg := &Config{TimeColumn: "ts", PowerColumn: "watts"}
	header := []string{"ts", "watts", "note"}

	cols, err := cfg.resolveColumns(ModePower, header)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ts": 0, "watts": 1}, cols)
}

func TestConfig_ResolveColumns_Missing(t *testing.T) {
	cfg := &Config{TimeColumn: "ts", VoltageColumn: "v", CurrentColumn: "i"}
	_, err := cfg.resolveColumns(ModeVoltageCurrent, []string{"ts", "v"})
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), `"i"`, "error should name the missing column")
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{TimeColumn: "ts", PowerColumn: "p"}
	assert.Equal(t, 1.0, cfg.scale(), "unset scale defaults to 1.0")
	assert.Equal(t, ',', cfg.delimiter(), "unset delimiter defaults to comma")

	cfg.PowerScale = 60
	cfg.Delimiter = ';'
	assert.Equal(t, 60.0, cfg.scale())
	assert.Equal(t, ';', cfg.delimiter())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "power", ModePower.String())
	assert.Equal(t, "voltage*current", ModeVoltageCurrent.String())
	assert.Equal(t, "percent", ModePercent.String())
}
