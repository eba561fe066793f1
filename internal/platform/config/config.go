package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr       = ":8080"
	DefaultAPIBaseURL = "https://api.paynet.in"
	DefaultAPITimeout = 15 * time.Second
	DefaultEnv        = "dev"
	DefaultLogLevel   = "info"

	// FileName lives under the session directory next to the CLI session file.
	FileName = "config.yaml"
)

// Server captures console process configuration.
type Server struct {
	Addr         string
	Environment  string
	APIBaseURL   string
	APITimeout   time.Duration
	SessionDir   string
	CookieSecure bool
	LogLevel     string
	Redis        RedisConfig
}

// RedisConfig configures the distributed session store. An empty URL keeps
// console sessions in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// fileConfig mirrors ~/.paynet/config.yaml. Every key is optional.
type fileConfig struct {
	Addr         string `yaml:"addr"`
	Environment  string `yaml:"environment"`
	APIBaseURL   string `yaml:"api_base_url"`
	APITimeout   string `yaml:"api_timeout"`
	CookieSecure *bool  `yaml:"cookie_secure"`
	LogLevel     string `yaml:"log_level"`
	RedisURL     string `yaml:"redis_url"`
}

// FromEnv loads the config file from the session directory, then lets
// environment variables override it.
func FromEnv() (Server, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Server, error) {
	dir := getenv("PAYNET_SESSION_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Server{}, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".paynet")
	}

	cfg := Defaults()
	cfg.SessionDir = dir

	if err := applyFile(&cfg, filepath.Join(dir, FileName)); err != nil {
		return Server{}, err
	}
	if err := applyEnv(&cfg, getenv); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() Server {
	return Server{
		Addr:        DefaultAddr,
		Environment: DefaultEnv,
		APIBaseURL:  DefaultAPIBaseURL,
		APITimeout:  DefaultAPITimeout,
		LogLevel:    DefaultLogLevel,
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}

func applyFile(cfg *Server, path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.Addr, fc.Addr)
	setString(&cfg.Environment, fc.Environment)
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.Redis.URL, fc.RedisURL)
	if fc.CookieSecure != nil {
		cfg.CookieSecure = *fc.CookieSecure
	}
	if fc.APITimeout != "" {
		d, err := time.ParseDuration(fc.APITimeout)
		if err != nil {
			return fmt.Errorf("parse api_timeout: %w", err)
		}
		cfg.APITimeout = d
	}
	return nil
}

func applyEnv(cfg *Server, getenv func(string) string) error {
	setString(&cfg.Addr, getenv("PAYNET_CONSOLE_ADDR"))
	setString(&cfg.Environment, getenv("PAYNET_ENV"))
	setString(&cfg.APIBaseURL, getenv("PAYNET_API_BASE_URL"))
	setString(&cfg.LogLevel, getenv("PAYNET_LOG_LEVEL"))
	setString(&cfg.Redis.URL, getenv("REDIS_URL"))

	if v := getenv("PAYNET_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse PAYNET_API_TIMEOUT: %w", err)
		}
		cfg.APITimeout = d
	}
	if v := getenv("PAYNET_COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse PAYNET_COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
