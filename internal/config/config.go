// Package config loads the host firing profile with viper and converts it to
// engine units.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gehtsoft-usa/go_ballisticcalc/bmath/unit"
	"github.com/spf13/viper"

	"exacto/ballistic"
	"exacto/sight"
)

// Resolution is the denominator used when a profile value is turned into an
// engine Scalar.
const Resolution = 10000

var (
	ErrUnknownUnit = errors.New("unknown unit")
	ErrNotPositive = errors.New("must be positive")
	ErrOutOfRange  = errors.New("out of range")
)

// Quantity is a value with its unit name, e.g. {1.9, "J"}.
type Quantity struct {
	Value float64 `mapstructure:"value"`
	Unit  string  `mapstructure:"unit"`
}

// Profile is the host-side firing profile.
type Profile struct {
	Energy          Quantity `mapstructure:"energy"`
	Mass            Quantity `mapstructure:"mass"`
	Diameter        Quantity `mapstructure:"diameter"`
	Spin            float64  `mapstructure:"spin"`
	Step            float64  `mapstructure:"step"`
	Gravity         float64  `mapstructure:"gravity"`
	AirDensity      float64  `mapstructure:"airDensity"`
	DragCoefficient float64  `mapstructure:"dragCoefficient"`
	Range           int      `mapstructure:"range"`
	LogLevel        string   `mapstructure:"logLevel"`
}

// SetDefaults registers the default profile with viper.
func SetDefaults() {
	viper.SetDefault("energy.value", 1.9)
	viper.SetDefault("energy.unit", "J")
	viper.SetDefault("mass.value", 0.4)
	viper.SetDefault("mass.unit", "g")
	viper.SetDefault("diameter.value", 6)
	viper.SetDefault("diameter.unit", "mm")
	viper.SetDefault("spin", 15)
	viper.SetDefault("step", 1)
	viper.SetDefault("gravity", 9.81)
	viper.SetDefault("airDensity", 1.8)
	viper.SetDefault("dragCoefficient", 0.43)
	viper.SetDefault("range", 10)
	viper.SetDefault("logLevel", "info")
}

// Load sets defaults, enables EXACTO_* environment overrides and reads the
// profile file. With an empty path it looks for exacto.{yaml,json,toml} in
// the working directory and the user config directory, and a missing file is
// not an error.
func Load(path string) error {
	SetDefaults()

	viper.SetEnvPrefix("EXACTO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("exacto")
		viper.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "exacto"))
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read profile: %w", err)
	}
	return nil
}

// Current decodes the loaded profile and validates it.
func Current() (Profile, error) {
	var p Profile
	if err := viper.Unmarshal(&p); err != nil {
		return Profile{}, fmt.Errorf("config: decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks units and that every physical quantity is usable by the
// engine.
func (p Profile) Validate() error {
	energy, err := p.EnergyJoules()
	if err != nil {
		return err
	}
	mass, err := p.MassKilograms()
	if err != nil {
		return err
	}
	diameter, err := p.DiameterMeters()
	if err != nil {
		return err
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"energy", energy},
		{"mass", mass},
		{"diameter", diameter},
		{"step", p.Step},
		{"airDensity", p.AirDensity},
	}
	for _, q := range positive {
		if !(q.v > 0) {
			return fmt.Errorf("config: %s %v: %w", q.name, q.v, ErrNotPositive)
		}
	}

	if p.Range < sight.MinRange || p.Range > sight.MaxRange {
		return fmt.Errorf("config: range %d outside %d..%d m: %w", p.Range, sight.MinRange, sight.MaxRange, ErrOutOfRange)
	}
	return nil
}

// EnergyJoules converts the muzzle energy to joules.
func (p Profile) EnergyJoules() (float64, error) {
	var u byte
	switch strings.ToLower(p.Energy.Unit) {
	case "j", "joule", "joules":
		u = unit.EnergyJoule
	case "ftlb", "ft-lb", "ft·lb", "footpound":
		u = unit.EnergyFootPound
	default:
		return 0, fmt.Errorf("config: energy unit %q: %w", p.Energy.Unit, ErrUnknownUnit)
	}
	e, err := unit.CreateEnergy(p.Energy.Value, u)
	if err != nil {
		return 0, fmt.Errorf("config: energy: %w", err)
	}
	return e.In(unit.EnergyJoule), nil
}

// MassKilograms converts the projectile mass to kilograms.
func (p Profile) MassKilograms() (float64, error) {
	var u byte
	switch strings.ToLower(p.Mass.Unit) {
	case "g", "gram", "grams":
		u = unit.WeightGram
	case "gr", "grain", "grains":
		u = unit.WeightGrain
	case "kg":
		u = unit.WeightKilogram
	case "oz":
		u = unit.WeightOunce
	default:
		return 0, fmt.Errorf("config: mass unit %q: %w", p.Mass.Unit, ErrUnknownUnit)
	}
	w, err := unit.CreateWeight(p.Mass.Value, u)
	if err != nil {
		return 0, fmt.Errorf("config: mass: %w", err)
	}
	return w.In(unit.WeightKilogram), nil
}

// DiameterMeters converts the projectile diameter to meters.
func (p Profile) DiameterMeters() (float64, error) {
	var u byte
	switch strings.ToLower(p.Diameter.Unit) {
	case "mm":
		u = unit.DistanceMillimeter
	case "cm":
		u = unit.DistanceCentimeter
	case "m":
		u = unit.DistanceMeter
	case "in", "inch":
		u = unit.DistanceInch
	default:
		return 0, fmt.Errorf("config: diameter unit %q: %w", p.Diameter.Unit, ErrUnknownUnit)
	}
	d, err := unit.CreateDistance(p.Diameter.Value, u)
	if err != nil {
		return 0, fmt.Errorf("config: diameter: %w", err)
	}
	return d.In(unit.DistanceMeter), nil
}

// Config converts the profile to an engine configuration at Resolution.
func (p Profile) Config() (ballistic.Config[ballistic.Scalar], error) {
	if err := p.Validate(); err != nil {
		return ballistic.Config[ballistic.Scalar]{}, err
	}
	energy, _ := p.EnergyJoules()
	mass, _ := p.MassKilograms()
	diameter, _ := p.DiameterMeters()

	cfg := ballistic.DefaultConfig[ballistic.Scalar]()
	fields := []struct {
		name string
		v    float64
		dst  *ballistic.Scalar
	}{
		{"energy", energy, &cfg.MuzzleEnergy},
		{"mass", mass, &cfg.Mass},
		{"diameter", diameter, &cfg.Diameter},
		{"spin", p.Spin, &cfg.AngularVelocity},
		{"step", p.Step, &cfg.Step},
		{"gravity", p.Gravity, &cfg.Gravity},
		{"airDensity", p.AirDensity, &cfg.AirDensity},
		{"dragCoefficient", p.DragCoefficient, &cfg.DragCoefficient},
	}
	for _, f := range fields {
		s, err := ScalarFromFloat(f.v)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", f.name, err)
		}
		*f.dst = s
	}
	return cfg, nil
}

// Sight returns the power-on sight state for the profile.
func (p Profile) Sight() sight.Sight {
	s := sight.Default()
	energy, err := p.EnergyJoules()
	if err == nil {
		s.EnergyDeciJoules = uint8(clampRound(energy*10, sight.MinEnergy, sight.MaxEnergy))
	}
	s.Spin = int8(clampRound(p.Spin, -sight.MaxSpin, sight.MaxSpin))
	s.Range = uint8(clampRound(float64(p.Range), sight.MinRange, sight.MaxRange))
	return s
}

// ScalarFromFloat rounds v to the nearest 1/Resolution.
func ScalarFromFloat(v float64) (ballistic.Scalar, error) {
	scaled := math.Round(v * Resolution)
	if math.IsNaN(scaled) || scaled > math.MaxInt32 || scaled < math.MinInt32 {
		var zero ballistic.Scalar
		return zero, fmt.Errorf("%v: %w", v, ErrOutOfRange)
	}
	return ballistic.ScalarFromRatio(int32(scaled), Resolution), nil
}

func clampRound(v float64, lo, hi int) int {
	r := math.Round(v)
	if r < float64(lo) {
		return lo
	}
	if r > float64(hi) {
		return hi
	}
	return int(r)
}
