package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "https://pokeapi.co/api/v2/"
	DefaultTimeout     = 15 * time.Second
	DefaultConcurrency = 4
	DefaultIOWorkers   = 16
	DefaultLogFile     = "/tmp/pokedex.log"
)

// Config holds all configuration values.
type Config struct {
	// PokeAPI
	BaseURL string
	Timeout time.Duration

	// Evolution line fan-out and background I/O pool sizes
	Concurrency int
	IOWorkers   int

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// fileConfig mirrors Config in a YAML file. Unset keys keep their defaults.
type fileConfig struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`
	Concurrency int    `yaml:"concurrency"`
	IOWorkers   int    `yaml:"io_workers"`
	LogFile     string `yaml:"log_file"`
	LogLevel    string `yaml:"log_level"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		IOWorkers:   DefaultIOWorkers,
		LogFile:     DefaultLogFile,
		LogLevel:    slog.LevelInfo,
	}
}

// Load reads configuration from environment variables.
func Load() Config {
	return fromEnv(Defaults())
}

// LoadFile reads a YAML config file and then applies environment variables
// on top, so the environment wins over the file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := Defaults()
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse config %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	if fc.Concurrency > 0 {
		cfg.Concurrency = fc.Concurrency
	}
	if fc.IOWorkers > 0 {
		cfg.IOWorkers = fc.IOWorkers
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = parseLogLevel(fc.LogLevel)
	}

	return fromEnv(cfg), nil
}

func fromEnv(cfg Config) Config {
	cfg.BaseURL = getEnv("POKEDEX_BASE_URL", cfg.BaseURL)
	cfg.Timeout = getEnvDuration("POKEDEX_TIMEOUT", cfg.Timeout)
	cfg.Concurrency = getEnvInt("POKEDEX_CONCURRENCY", cfg.Concurrency)
	cfg.IOWorkers = getEnvInt("POKEDEX_IO_WORKERS", cfg.IOWorkers)
	cfg.LogFile = getEnv("POKEDEX_LOG_FILE", cfg.LogFile)
	if lvl := os.Getenv("POKEDEX_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = parseLogLevel(lvl)
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt ignores values that are not positive integers.
func getEnvInt(key string, defaultVal int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
