package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exacto/ballistic"
	"exacto/sight"
)

func writeProfile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(writeProfile(t, "exacto.json", `{}`)))
	p, err := Current()
	require.NoError(t, err)

	assert.Equal(t, Quantity{Value: 1.9, Unit: "J"}, p.Energy)
	assert.Equal(t, 10, p.Range)
	assert.Equal(t, "info", p.LogLevel)

	cfg, err := p.Config()
	require.NoError(t, err)
	assert.Equal(t, ballistic.DefaultConfig[ballistic.Scalar](), cfg)

	assert.Equal(t, sight.Default(), p.Sight())
}

func TestLoad_YAMLWithUnits(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeProfile(t, "profile.yaml", `
energy:
  value: 1
  unit: ftlb
mass:
  value: 6.2
  unit: gr
diameter:
  value: 0.177
  unit: in
spin: -12
range: 35
logLevel: debug
`)
	require.NoError(t, Load(path))
	p, err := Current()
	require.NoError(t, err)

	joules, err := p.EnergyJoules()
	require.NoError(t, err)
	assert.InDelta(t, 1.3558, joules, 1e-4)

	kg, err := p.MassKilograms()
	require.NoError(t, err)
	assert.InDelta(t, 0.000401753, kg, 1e-8)

	m, err := p.DiameterMeters()
	require.NoError(t, err)
	assert.InDelta(t, 0.0044958, m, 1e-7)

	cfg, err := p.Config()
	require.NoError(t, err)
	assert.InDelta(t, 1.3558, ballistic.ScalarFloat(cfg.MuzzleEnergy), 1e-4)
	assert.InDelta(t, -12, ballistic.ScalarFloat(cfg.AngularVelocity), 1e-9)
	assert.InDelta(t, 0.0045, ballistic.ScalarFloat(cfg.Diameter), 1e-9)

	s := p.Sight()
	assert.Equal(t, uint8(14), s.EnergyDeciJoules)
	assert.Equal(t, int8(-12), s.Spin)
	assert.Equal(t, uint8(35), s.Range)
	assert.Equal(t, "debug", p.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("EXACTO_RANGE", "42")
	t.Setenv("EXACTO_ENERGY_UNIT", "ft-lb")

	require.NoError(t, Load(writeProfile(t, "exacto.json", `{"range": 20}`)))
	p, err := Current()
	require.NoError(t, err)
	assert.Equal(t, 42, p.Range)
	assert.Equal(t, "ft-lb", p.Energy.Unit)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "config: read profile")
}

func TestValidate(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, Load(writeProfile(t, "exacto.json", `{}`)))
	base, err := Current()
	require.NoError(t, err)

	p := base
	p.Mass.Unit = "stone"
	assert.ErrorIs(t, p.Validate(), ErrUnknownUnit)

	p = base
	p.Mass.Value = 0
	assert.ErrorIs(t, p.Validate(), ErrNotPositive)

	p = base
	p.Step = -1
	assert.ErrorIs(t, p.Validate(), ErrNotPositive)

	p = base
	p.Range = 0
	assert.ErrorIs(t, p.Validate(), ErrOutOfRange)

	p = base
	p.Energy.Unit = "kcal"
	_, err = p.Config()
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestScalarFromFloat(t *testing.T) {
	s, err := ScalarFromFloat(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ballistic.ScalarFloat(s), 1e-12)

	_, err = ScalarFromFloat(1e9)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
