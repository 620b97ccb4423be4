package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "STOCKDASH"
	configPathKey   = "config.path"
	configFileMode  = 0o600
	configDirMode   = 0o700
	configDir       = ".stockdash"
	configFile      = "config.toml"
	tempFilePattern = ".config-*.toml.tmp"

	keyBaseURL    = "api.base_url"
	keyTimeout    = "api.timeout"
	keyTicker     = "stock.ticker"
	keyLogLevel   = "log.level"
	keyLogConsole = "log.console"
	keyListen     = "web.listen"
	keyUsername   = "auth.username"
	keyPassword   = "auth.password"
)

// Settings is the effective client configuration after defaults, the config
// file and STOCKDASH_* environment variables are merged.
type Settings struct {
	BaseURL    string
	Timeout    time.Duration
	Ticker     string
	LogLevel   string
	LogConsole bool
	Listen     string
	Username   string
	Password   string
}

func DefaultSettings() Settings {
	return Settings{
		BaseURL:  "http://localhost:5000",
		Timeout:  30 * time.Second,
		Ticker:   "XOM",
		LogLevel: "warn",
		Listen:   "127.0.0.1:8080",
	}
}

type Repository struct {
	cfg        *viper.Viper
	configPath string
}

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaults := DefaultSettings()
	cfg.SetDefault(configPathKey, filepath.Join(homeDir, configDir, configFile))
	cfg.SetDefault(keyBaseURL, defaults.BaseURL)
	cfg.SetDefault(keyTimeout, defaults.Timeout.String())
	cfg.SetDefault(keyTicker, defaults.Ticker)
	cfg.SetDefault(keyLogLevel, defaults.LogLevel)
	cfg.SetDefault(keyLogConsole, defaults.LogConsole)
	cfg.SetDefault(keyListen, defaults.Listen)
	cfg.SetDefault(keyUsername, "")
	cfg.SetDefault(keyPassword, "")

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	if err := bindEnv(cfg, configPathKey, "STOCKDASH_CONFIG"); err != nil {
		return nil, err
	}
	if err := bindEnv(cfg, keyUsername, "STOCKDASH_USERNAME"); err != nil {
		return nil, err
	}
	if err := bindEnv(cfg, keyPassword, "STOCKDASH_PASSWORD"); err != nil {
		return nil, err
	}

	configPath, err := normalizeConfigPath(cfg.GetString(configPathKey))
	if err != nil {
		return nil, err
	}

	cfg.SetConfigFile(configPath)
	cfg.SetConfigType("toml")
	if err := cfg.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if version := cfg.GetInt("version"); version > currentSchemaVersion {
		return nil, fileSchema{Version: version}.validateVersion()
	}

	return &Repository{cfg: cfg, configPath: configPath}, nil
}

func (r *Repository) Path() string {
	return r.configPath
}

func (r *Repository) Load(ctx context.Context) (Settings, error) {
	if err := ctx.Err(); err != nil {
		return Settings{}, err
	}

	file := fileSchema{
		Version: r.cfg.GetInt("version"),
		API: apiSchema{
			BaseURL: r.cfg.GetString(keyBaseURL),
			Timeout: r.cfg.GetString(keyTimeout),
		},
		Stock: stockSchema{Ticker: r.cfg.GetString(keyTicker)},
		Log: logSchema{
			Level:   r.cfg.GetString(keyLogLevel),
			Console: r.cfg.GetBool(keyLogConsole),
		},
		Web: webSchema{Listen: r.cfg.GetString(keyListen)},
	}
	if err := file.validateVersion(); err != nil {
		return Settings{}, err
	}

	settings, err := fromSchema(file)
	if err != nil {
		return Settings{}, err
	}

	settings.Username = r.cfg.GetString(keyUsername)
	settings.Password = r.cfg.GetString(keyPassword)
	return settings, nil
}

// Save writes settings to the config file. Credentials are never written.
func (r *Repository) Save(ctx context.Context, settings Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeSchema(r.configPath, toSchema(settings))
}

// Encode renders settings in the config file format.
func Encode(settings Settings) ([]byte, error) {
	data, err := toml.Marshal(toSchema(settings))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func writeSchema(path string, file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizeConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("config path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func bindEnv(cfg *viper.Viper, key, env string) error {
	if err := cfg.BindEnv(key, env); err != nil {
		return fmt.Errorf("bind %s: %w", env, err)
	}
	return nil
}

func isNotExist(err error) bool {
	var configNotFound viper.ConfigFileNotFoundError
	return errors.As(err, &configNotFound) || errors.Is(err, os.ErrNotExist)
}
