package toml

import (
	"fmt"
	"strings"
	"time"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int         `toml:"version"`
	API     apiSchema   `toml:"api"`
	Stock   stockSchema `toml:"stock"`
	Log     logSchema   `toml:"log"`
	Web     webSchema   `toml:"web"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type apiSchema struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

type stockSchema struct {
	Ticker string `toml:"ticker"`
}

type logSchema struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

type webSchema struct {
	Listen string `toml:"listen"`
}

func toSchema(settings Settings) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		API: apiSchema{
			BaseURL: settings.BaseURL,
			Timeout: settings.Timeout.String(),
		},
		Stock: stockSchema{Ticker: settings.Ticker},
		Log:   logSchema{Level: settings.LogLevel, Console: settings.LogConsole},
		Web:   webSchema{Listen: settings.Listen},
	}
}

func fromSchema(schema fileSchema) (Settings, error) {
	timeout, err := parseTimeout(schema.API.Timeout)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		BaseURL:    strings.TrimSpace(schema.API.BaseURL),
		Timeout:    timeout,
		Ticker:     strings.ToUpper(strings.TrimSpace(schema.Stock.Ticker)),
		LogLevel:   strings.TrimSpace(schema.Log.Level),
		LogConsole: schema.Log.Console,
		Listen:     strings.TrimSpace(schema.Web.Listen),
	}, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse api timeout %q: %w", raw, err)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("api timeout must not be negative, got %s", raw)
	}

	return timeout, nil
}
