package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.25, cfg.EARThreshold)
	assert.Equal(t, 2.0, cfg.MicrosleepSec)
	assert.Equal(t, 50.0, cfg.TooCloseCM)
	assert.Equal(t, 300, cfg.CooldownSec)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ear threshold zero", func(c *Config) { c.EARThreshold = 0 }},
		{"ear threshold above one", func(c *Config) { c.EARThreshold = 1.3 }},
		{"perclos threshold negative", func(c *Config) { c.PerclosThreshold = -0.1 }},
		{"perclos window zero", func(c *Config) { c.PerclosWindowSec = 0 }},
		{"microsleep zero", func(c *Config) { c.MicrosleepSec = 0 }},
		{"blink bounds inverted", func(c *Config) { c.BlinkRateLow = 30; c.BlinkRateHigh = 10 }},
		{"focal length zero", func(c *Config) { c.FocalLengthPx = 0 }},
		{"alpha zero", func(c *Config) { c.DistanceAlpha = 0 }},
		{"alpha above one", func(c *Config) { c.DistanceAlpha = 1.5 }},
		{"proximity threshold zero", func(c *Config) { c.TooCloseCM = 0 }},
		{"head down not positive", func(c *Config) { c.HeadDownDeg = -5 }},
		{"head up not negative", func(c *Config) { c.HeadUpDeg = 5 }},
		{"posture sustain zero", func(c *Config) { c.PostureSustainSec = 0 }},
		{"cooldown zero", func(c *Config) { c.CooldownSec = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := LoadConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EAR_THRESHOLD", "0.21")
	t.Setenv("BLINK_RATE_HIGH", "40")
	t.Setenv("VOICE_ENABLED", "false")

	cfg := LoadConfig()
	assert.Equal(t, 0.21, cfg.EARThreshold)
	assert.Equal(t, 40, cfg.BlinkRateHigh)
	assert.False(t, cfg.VoiceEnabled)
}

func TestDurationHelpers(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, cfg.PerclosWindow().Seconds(), float64(cfg.PerclosWindowSec))
	assert.Equal(t, cfg.MicrosleepAfter().Seconds(), cfg.MicrosleepSec)
	assert.Equal(t, cfg.Cooldown().Seconds(), float64(cfg.CooldownSec))
}
