package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigFileEnv names an explicit settings file, bypassing the search path.
const ConfigFileEnv = "AIMIND_CONFIG"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Log       LogConfig       `mapstructure:"log"`
	LLM       LLMConfig       `mapstructure:"llm"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Updates   UpdatesConfig   `mapstructure:"updates"`
	Files     FilesConfig     `mapstructure:"files"`
}

type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	Host        string   `mapstructure:"host"`
	Env         string   `mapstructure:"env"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// ConfigPath is the provider document inside the data dir.
func (d DataConfig) ConfigPath() string {
	return filepath.Join(d.Dir, "config.json")
}

// DBPath is the sqlite file holding recent files.
func (d DataConfig) DBPath() string {
	return filepath.Join(d.Dir, "aimind.db")
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type LLMConfig struct {
	// Timeout bounds a whole provider call. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

type UpdatesConfig struct {
	Check bool   `mapstructure:"check"`
	URL   string `mapstructure:"url"`
}

type FilesConfig struct {
	MaxRecent int `mapstructure:"max_recent"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	if file := os.Getenv(ConfigFileEnv); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("data.dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("rate_limit.requests_per_second", 5.0)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "aimind")
	v.SetDefault("updates.check", false)
	v.SetDefault("updates.url", "https://api.github.com/repos/nulzo/aimind/releases/latest")
	v.SetDefault("files.max_recent", 10)

	// SERVER_PORT, DATA_DIR, LLM_TIMEOUT, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if cfg.Data.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve data dir: %w", err)
		}
		cfg.Data.Dir = filepath.Join(home, ".aimind")
	}

	if cfg.Files.MaxRecent <= 0 {
		cfg.Files.MaxRecent = 10
	}

	return &cfg, nil
}
