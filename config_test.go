package knot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigThreshold(t *testing.T) {
	cfg := Config{ParticleRadius: 0.2}
	assert.InDelta(t, 0.5, cfg.Threshold(), 1e-12)

	cfg.DistanceThreshold = 0.3
	assert.Equal(t, 0.3, cfg.Threshold(), "an explicit threshold wins")
	assert.Equal(t, 0.3, cfg.Params().DistanceThreshold)
}

func TestConfigAngleClamp(t *testing.T) {
	for _, tc := range []struct {
		in, want float64
	}{
		{-10, 0},
		{0, 0},
		{45, 45},
		{89.5, 89.5},
	} {
		cfg := Config{AngleOffsetDegrees: tc.in}
		assert.Equal(t, tc.want, cfg.AngleOffset(), "offset %g", tc.in)
	}

	for _, in := range []float64{90, 120, math.Inf(1)} {
		got := Config{AngleOffsetDegrees: in}.AngleOffset()
		assert.Less(t, got, 90.0)
		assert.Greater(t, got, 89.0)
	}
}

func TestConfigParams(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Params()
	assert.InDelta(t, 0.25, p.DistanceThreshold, 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, p.MaxAbsDot, 1e-12)
	assert.Equal(t, cfg.SignTolerance, p.SignTolerance)

	cfg.AngleOffsetDegrees = 0
	assert.InDelta(t, 0, cfg.Params().MaxAbsDot, 1e-12)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.ParticleRadius = 0
	assert.ErrorIs(t, cfg.Validate(), ErrNoDistanceThreshold)
	cfg.DistanceThreshold = 1
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.SignTolerance = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Kind = Kind(9)
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownKind)

	nan := math.NaN()
	for _, tc := range []struct {
		name string
		cfg  Config
	}{
		{"threshold without radius", Config{DistanceThreshold: nan, SignTolerance: 1e-6}},
		{"threshold with radius", Config{DistanceThreshold: nan, ParticleRadius: 0.1}},
		{"radius", Config{ParticleRadius: nan}},
		{"sign tolerance", Config{DistanceThreshold: 1, SignTolerance: nan}},
		{"angle offset", Config{DistanceThreshold: 1, AngleOffsetDegrees: nan}},
	} {
		assert.ErrorIs(t, tc.cfg.Validate(), ErrInvalidConfig, tc.name)
	}

	cfg = DefaultConfig()
	cfg.AngleOffsetDegrees = 400
	assert.NoError(t, cfg.Validate(), "angle offsets are clamped, not rejected")
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
particle_radius: 0.05
angle_offset_degrees: 45
knot_type: figure eight
`))
	require.NoError(t, err)
	want := DefaultConfig()
	want.ParticleRadius = 0.05
	want.AngleOffsetDegrees = 45
	want.Kind = KindFigureEight
	assert.Equal(t, want, cfg)

	cfg, err = ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = ParseConfig([]byte("knot_type: bowline\n"))
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseConfig([]byte("particle_radius: 0.1\nradius: 2\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = ParseConfig([]byte("particle_radius: 0\n"))
	assert.ErrorIs(t, err, ErrNoDistanceThreshold)

	_, err = ParseConfig([]byte("distance_threshold: .nan\nparticle_radius: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseConfig([]byte("distance_threshold: 1\nsign_tolerance: .nan\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Kind = KindGranny
	cfg.DistanceThreshold = 0.7
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "knot_type: granny")

	got, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "knot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("distance_threshold: 0.4\nknot_type: square\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, cfg.DistanceThreshold)
	assert.Equal(t, KindSquare, cfg.Kind)

	t.Setenv(EnvDistanceThreshold, "0.9")
	t.Setenv(EnvKind, "trefoil")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.DistanceThreshold, "environment overrides the file")
	assert.Equal(t, KindTrefoil, cfg.Kind)
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv(EnvAngleOffset, "steep")
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv(EnvAngleOffset, "")
	t.Setenv(EnvSignTolerance, "NaN")
	_, err = LoadConfig("")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv(EnvSignTolerance, "")
	t.Setenv(EnvKind, "bowline")
	_, err = LoadConfig("")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("particle_radius: [1, 2]\n"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
