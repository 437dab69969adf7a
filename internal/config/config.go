package config

import (
	"fmt"
	"time"

	"digipet/internal/platform/logger"

	"github.com/caarlos0/env/v11"
)

// Config del servidor, leída desde variables de entorno.
type Config struct {
	Port         int           `env:"PORT"          envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"  envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME"   envDefault:"digipet"`

	// Journal: DB_DSN (Postgres) tiene prioridad sobre SQLITE_PATH; sin ninguno, memoria.
	DatabaseDSN string `env:"DB_DSN"`
	SQLitePath  string `env:"SQLITE_PATH"`

	// HatchOnStart crea la mascota inicial al arrancar.
	HatchOnStart bool `env:"HATCH_ON_START" envDefault:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
	}
}
