package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.30, cfg.ShortTolerance)
	assert.Equal(t, 0.20, cfg.LongTolerance)
	assert.True(t, cfg.IncludeReversedVariation)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GRADING_SHORT_TOLERANCE", "0.25")
	t.Setenv("GRADING_REVERSED_VARIATION", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.ShortTolerance)
	assert.False(t, cfg.IncludeReversedVariation)
	assert.Equal(t, 0.20, cfg.LongTolerance)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("GRADING_LONG_TOLERANCE", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
