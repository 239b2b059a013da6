package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, "localhost", conf.HTTPHost)
	assert.Equal(t, "8092", conf.HTTPPort)
	assert.Equal(t, 20*time.Second, conf.HTTPReadHeaderTimeout)
	assert.Equal(t, 4*time.Second, conf.HTTPShutdownTimeout)
	assert.Equal(t, "/liveness", conf.LivenessEndpoint)
	assert.True(t, conf.SeedData)
	assert.False(t, conf.IsProduction())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "ENV: production\nHTTP_PORT: \"9000\"\nSEED_DATA: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	t.Setenv("HTTP_PORT", "9100")

	conf, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, conf.IsProduction())
	assert.Equal(t, "9100", conf.HTTPPort)
	assert.False(t, conf.SeedData)
}

func TestLoad_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ENV: [unclosed"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}
