package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Port       string        `yaml:"port"`
	DBDriver   string        `yaml:"db_driver"`   // sqlite, postgres
	DBPath     string        `yaml:"db_path"`     // file path for sqlite, DSN for postgres
	JWTSecret  string        `yaml:"jwt_secret"`
	SessionTTL time.Duration `yaml:"session_ttl"`
	CORSOrigin string        `yaml:"cors_origin"`
	LogLevel   string        `yaml:"log_level"`  // debug, info, warn, error
	LogFormat  string        `yaml:"log_format"` // text, json
	RateLimit  RateLimit     `yaml:"rate_limit"`
}

// RateLimit configures the per-client request limiter
type RateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// Load 加载配置: defaults, then the optional CONFIG_FILE, then environment
func Load() (*Config, error) {
	cfg := &Config{
		Port:       ":8080",
		DBDriver:   "sqlite",
		DBPath:     "./data/putusan.db",
		JWTSecret:  "your-secret-key-change-in-production",
		SessionTTL: 7 * 24 * time.Hour,
		CORSOrigin: "*",
		LogLevel:   "info",
		LogFormat:  "text",
		RateLimit: RateLimit{
			RPS:   20,
			Burst: 40,
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.DBDriver, "DB_DRIVER")
	setString(&c.DBPath, "DB_PATH")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.CORSOrigin, "CORS_ORIGIN")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFormat, "LOG_FORMAT")

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		c.SessionTTL = ttl
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
		}
		c.RateLimit.RPS = rps
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
		}
		c.RateLimit.Burst = burst
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
