package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/MCH-512/crewsphere-sub000/internal/ftl"
)

// PathEnv names the variable that points at an optional YAML config file.
const PathEnv = "FTLCALC_CONFIG"

type Config struct {
	Env  string      `yaml:"env" env:"FTLCALC_ENV" env-default:"production"`
	Log  LogConfig   `yaml:"log"`
	HTTP HTTPConfig  `yaml:"http"`
	Form FormDefault `yaml:"form"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"FTLCALC_LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Bind            string        `yaml:"bind" env:"FTLCALC_HTTP_BIND" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"FTLCALC_HTTP_PORT" env-default:"8484"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"FTLCALC_HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// FormDefault prefills the web form. The query string only carries values
// that differ from these.
type FormDefault struct {
	ReportTime      string `yaml:"report_time" env:"FTLCALC_FORM_REPORT" env-default:"08:00"`
	Sectors         int    `yaml:"sectors" env:"FTLCALC_FORM_SECTORS" env-default:"2"`
	Acclimatisation string `yaml:"acclimatisation" env:"FTLCALC_FORM_ACCLIMATISATION" env-default:"acclimatised"`
}

// Request returns the defaults as an engine request without an arrival time.
func (f FormDefault) Request() ftl.Request {
	return ftl.Request{ReportTime: f.ReportTime, Sectors: f.Sectors, Acclimatisation: f.Acclimatisation}
}

// Addr is the listen address for a port; 0 means the configured one.
func (c HTTPConfig) Addr(port int) string {
	if port <= 0 {
		port = c.Port
	}
	return fmt.Sprintf("%s:%d", c.Bind, port)
}

// Load reads .env, then the YAML file at path (or $FTLCALC_CONFIG) when
// one is given, then environment variables, and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	if path == "" {
		path = os.Getenv(PathEnv)
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	if c.Env != "development" && c.Env != "production" {
		return fmt.Errorf("unsupported environment %q (development, production)", c.Env)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port %d out of range", c.HTTP.Port)
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return errors.New("http shutdown timeout must be > 0")
	}
	if _, err := ftl.ParseRequest(c.Form.Request()); err != nil {
		return fmt.Errorf("form defaults: %w", err)
	}
	return nil
}
