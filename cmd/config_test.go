package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "railmv", configBaseName)
	assert.Equal(t, "railmv.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "yes", yesFlagName)
	assert.Equal(t, "chdir", chdirFlagName)
	assert.Equal(t, "ext", extFlagName)
	assert.Equal(t, "paths.roots", rootsConfigKey)
	assert.Equal(t, "paths.extensions", extensionsConfigKey)
	assert.Equal(t, "paths.generated_suffixes", generatedConfigKey)
	assert.Equal(t, "conventions.file", conventionsFileKey)
	assert.Equal(t, "RAILMV", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty falls back", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", "ERROR", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage falls back", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestDefaultLogPath(t *testing.T) {
	assert.NotEmpty(t, defaultLogPath())
}
