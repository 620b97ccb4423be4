package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	cfg := viper.New()
	cfg.Set("config.path", path)

	repo, err := NewRepository(cfg)
	require.NoError(t, err)
	return repo
}

func TestRepositoryLoadDefaultsWithoutConfigFile(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "config.toml"))

	settings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestRepositorySaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	repo := newTestRepository(t, path)

	want := Settings{
		BaseURL:    "https://stocks.example.test",
		Timeout:    5 * time.Second,
		Ticker:     "AAPL",
		LogLevel:   "debug",
		LogConsole: true,
		Listen:     "127.0.0.1:9090",
	}
	require.NoError(t, repo.Save(context.Background(), want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reloaded := newTestRepository(t, path)
	got, err := reloaded.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepositorySaveNeverWritesCredentials(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	repo := newTestRepository(t, path)

	settings := DefaultSettings()
	settings.Username = "alice"
	settings.Password = "pw"
	require.NoError(t, repo.Save(context.Background(), settings))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "alice")
	assert.NotContains(t, string(data), "pw")
	assert.Contains(t, string(data), "version = 1")
}

func TestRepositoryRejectsFutureSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o600))

	cfg := viper.New()
	cfg.Set("config.path", path)

	_, err := NewRepository(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 2")
}

func TestRepositoryRejectsInvalidTimeout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\ntimeout = \"soon\"\n"), 0o600))

	repo := newTestRepository(t, path)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse api timeout")
}

func TestRepositoryLoadHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "config.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.Save(ctx, DefaultSettings()), context.Canceled)
}

func TestRepositoryEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[stock]\nticker = \"msft\"\n[api]\nbase_url = \"http://file.test\"\n"), 0o600))

	t.Setenv("STOCKDASH_API_BASE_URL", "http://env.test")
	t.Setenv("STOCKDASH_USERNAME", "alice")
	t.Setenv("STOCKDASH_PASSWORD", "pw")

	repo := newTestRepository(t, path)

	settings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://env.test", settings.BaseURL)
	assert.Equal(t, "MSFT", settings.Ticker)
	assert.Equal(t, "alice", settings.Username)
	assert.Equal(t, "pw", settings.Password)
}

func TestEncodedSettingsLoadBack(t *testing.T) {
	t.Parallel()

	want := DefaultSettings()
	want.Ticker = "AAPL"
	want.Timeout = 12 * time.Second

	data, err := Encode(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://localhost:5000")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := newTestRepository(t, path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepositoryNormalizesFileValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[stock]\nticker = \" msft \"\n[web]\nlisten = \" 127.0.0.1:9999 \"\n"), 0o600))

	settings, err := newTestRepository(t, path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MSFT", settings.Ticker)
	assert.Equal(t, "127.0.0.1:9999", settings.Listen)
}

func TestRepositoryRejectsMalformedConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = ["), 0o600))

	cfg := viper.New()
	cfg.Set("config.path", path)

	_, err := NewRepository(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadRejectsFutureVersionSetAfterConstruction(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("config.path", filepath.Join(t.TempDir(), "config.toml"))

	repo, err := NewRepository(cfg)
	require.NoError(t, err)

	cfg.Set("version", 3)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 3")
}
