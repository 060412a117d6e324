package knot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoDistanceThreshold is returned when a configuration has neither a
	// distance threshold nor a particle radius to derive one from.
	ErrNoDistanceThreshold = errors.New("no distance threshold or particle radius")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// Environment variables that override configuration values in [LoadConfig].
const (
	EnvDistanceThreshold = "KNOT_DISTANCE_THRESHOLD"
	EnvParticleRadius    = "KNOT_PARTICLE_RADIUS"
	EnvAngleOffset       = "KNOT_ANGLE_OFFSET"
	EnvKind              = "KNOT_TYPE"
	EnvSignTolerance     = "KNOT_SIGN_TOLERANCE"
)

// Config configures a [Detector].
type Config struct {
	// DistanceThreshold is the distance between segment centers below which
	// two segments may cross. If it is zero, it is derived from
	// ParticleRadius as 2r + r/2.
	DistanceThreshold float64 `yaml:"distance_threshold"`
	// ParticleRadius is the radius of the rope's particles.
	ParticleRadius float64 `yaml:"particle_radius"`
	// AngleOffsetDegrees controls how close to parallel two segments may be
	// and still cross. Values are clamped to [0°, 90°).
	AngleOffsetDegrees float64 `yaml:"angle_offset_degrees"`
	// Kind selects the knot pattern to detect.
	Kind Kind `yaml:"knot_type"`
	// SignTolerance is the coordinate difference below which an axis is
	// skipped when determining a crossing's sign.
	SignTolerance float64 `yaml:"sign_tolerance"`
}

// DefaultConfig returns the default configuration: trefoil detection for
// particles of radius 0.1, with a 60° angle offset.
func DefaultConfig() Config {
	return Config{
		ParticleRadius:     0.1,
		AngleOffsetDegrees: 60,
		Kind:               KindTrefoil,
		SignTolerance:      1e-6,
	}
}

// Validate reports whether the configuration can be used. Out-of-range angle
// offsets are not an error; [Config.Params] clamps them.
func (cfg Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"distance threshold", cfg.DistanceThreshold},
		{"particle radius", cfg.ParticleRadius},
		{"angle offset", cfg.AngleOffsetDegrees},
		{"sign tolerance", cfg.SignTolerance},
	} {
		if math.IsNaN(f.v) {
			return fmt.Errorf("%w: %s is NaN", ErrInvalidConfig, f.name)
		}
	}
	if !(cfg.DistanceThreshold > 0) && !(cfg.ParticleRadius > 0) {
		return ErrNoDistanceThreshold
	}
	if cfg.SignTolerance < 0 {
		return fmt.Errorf("%w: negative sign tolerance %g", ErrInvalidConfig, cfg.SignTolerance)
	}
	if _, err := MatcherFor(cfg.Kind); err != nil {
		return err
	}
	return nil
}

// Threshold returns the effective distance threshold.
func (cfg Config) Threshold() float64 {
	if cfg.DistanceThreshold > 0 {
		return cfg.DistanceThreshold
	}
	r := cfg.ParticleRadius
	return 2*r + r/2
}

// AngleOffset returns the angle offset in degrees, clamped to [0°, 90°).
func (cfg Config) AngleOffset() float64 {
	a := cfg.AngleOffsetDegrees
	switch {
	case a < 0:
		return 0
	case a >= 90:
		return math.Nextafter(90, 0)
	default:
		return a
	}
}

// Params derives the scan parameters from the configuration.
func (cfg Config) Params() ScanParams {
	rad := (90 - cfg.AngleOffset()) * math.Pi / 180
	return ScanParams{
		DistanceThreshold: cfg.Threshold(),
		MaxAbsDot:         math.Cos(rad),
		SignTolerance:     cfg.SignTolerance,
	}
}

// ParseConfig parses a YAML configuration. Fields missing from data keep
// their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := decodeConfig(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig loads a configuration with priority: environment > file >
// defaults. A path that is empty or doesn't exist yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("load config file: %w", err)
		default:
			if err := decodeConfig(data, &cfg); err != nil {
				return cfg, fmt.Errorf("load config file: %w", err)
			}
		}
	}
	if err := configFromEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func configFromEnv(cfg *Config) error {
	floats := []struct {
		env string
		dst *float64
	}{
		{EnvDistanceThreshold, &cfg.DistanceThreshold},
		{EnvParticleRadius, &cfg.ParticleRadius},
		{EnvAngleOffset, &cfg.AngleOffsetDegrees},
		{EnvSignTolerance, &cfg.SignTolerance},
	}
	for _, f := range floats {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, f.env, err)
		}
		*f.dst = x
	}
	if v := os.Getenv(EnvKind); v != "" {
		k, err := ParseKind(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvKind, err)
		}
		cfg.Kind = k
	}
	return nil
}
