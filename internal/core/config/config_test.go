package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.Equal(t, "resultados_paises.txt", cfg.ExportFile)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
endpoint: http://localhost:9000/countryinfo
timeout_seconds: 5
history_size: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/countryinfo", cfg.Endpoint)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, 3, cfg.HistorySize)
	// Unset fields keep their defaults.
	assert.Equal(t, "resultados_paises.txt", cfg.ExportFile)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoad_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout_seconds: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero timeout rejected",
			mutate:  func(c *Config) { c.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "negative retries rejected",
			mutate:  func(c *Config) { c.Retries = -1 },
			wantErr: true,
		},
		{
			name:    "zero history size rejected",
			mutate:  func(c *Config) { c.HistorySize = 0 },
			wantErr: true,
		},
		{
			name:    "empty export file rejected",
			mutate:  func(c *Config) { c.ExportFile = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
