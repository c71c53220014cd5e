package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waveviz/internal/wave"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, loaded, err := loadSettings(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, defaultSettings(), s)
	assert.Equal(t, wave.DefaultParams(), s.Solver.params())
	assert.Equal(t, 10*time.Millisecond, s.View.tickInterval())
}

func TestLoadSettingsEmptyPath(t *testing.T) {
	s, loaded, err := loadSettings("")
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, defaultSettings(), s)
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `{
		"solver": {"mx": 20, "stepBudget": 40},
		"view": {"pointSize": 5, "tickIntervalMs": 2.5}
	}`)

	s, loaded, err := loadSettings(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, 20, s.Solver.Mx)
	assert.Equal(t, 50, s.Solver.My)
	assert.Equal(t, 40, s.Solver.StepBudget)
	assert.Equal(t, 5.0, s.View.PointSize)
	assert.Equal(t, 2500*time.Microsecond, s.View.tickInterval())
	assert.Equal(t, defaultSettings().View.FOVDeg, s.View.FOVDeg)
}

func TestLoadSettingsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"solver": `},
		{"wrong type", `{"solver": {"mx": "wide"}}`},
		{"zero tick interval", `{"view": {"tickIntervalMs": 0}}`},
		{"negative point size", `{"view": {"pointSize": -1}}`},
		{"fov too wide", `{"view": {"fovDeg": 180}}`},
		{"zero window", `{"view": {"windowWidth": 0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, loaded, err := loadSettings(writeSettings(t, tt.body))
			assert.Error(t, err)
			assert.False(t, loaded)
		})
	}
}
