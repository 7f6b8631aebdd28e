package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 120*time.Second, cfg.CacheTTL())
	assert.Equal(t, 6, cfg.OTP.Length)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://buses.example/api/v1"
	cfg.OTP.AutoVerify = true
	cfg.Preferences = Preferences{Country: "India", Language: "English"}
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\ndebounce_ms = 250\n"), 0644))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 6, cfg.OTP.Length)
	assert.NotEmpty(t, cfg.API.BaseURL)
}

func TestMalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\nbase_url = "), 0644))

	_, err := NewConfigService(path).Load()
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BUSTRIP_API_BASE_URL", "http://10.0.2.2:3000/api/v1")
	t.Setenv("BUSTRIP_DEBOUNCE_MS", "300")
	t.Setenv("BUSTRIP_API_TIMEOUT_MS", "not-a-number")

	cfg, err := NewConfigService(filepath.Join(t.TempDir(), "config.toml")).Load()
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.2.2:3000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BUSTRIP_TEST_DOTENV=loaded\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("BUSTRIP_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "loaded", os.Getenv("BUSTRIP_TEST_DOTENV"))
}
