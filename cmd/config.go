package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort        = "8080"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultShutdownTimeout = 10 * time.Second
	defaultStatsSchedule   = "@every 5m"
)

type Config struct {
	HTTPPort        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	// StatsSchedule is the cron schedule of the catalog stats job. "off"
	// disables the job.
	StatsSchedule string
}

// LoadConfig reads the configuration from the environment after loading the
// given env files. Missing files are skipped; variables already set in the
// environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Config{
		HTTPPort:        envOrDefault("HTTP_PORT", defaultHTTPPort),
		LogLevel:        envOrDefault("LOG_LEVEL", defaultLogLevel),
		LogFormat:       envOrDefault("LOG_FORMAT", defaultLogFormat),
		ShutdownTimeout: defaultShutdownTimeout,
		StatsSchedule:   envOrDefault("CATALOG_STATS_SCHEDULE", defaultStatsSchedule),
	}
	if cfg.StatsSchedule == "off" {
		cfg.StatsSchedule = ""
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = timeout
	}

	if _, err := strconv.ParseUint(cfg.HTTPPort, 10, 16); err != nil {
		return Config{}, fmt.Errorf("parse HTTP_PORT: %w", err)
	}
	return cfg, nil
}

// HTTPAddress is the listen address of the HTTP server.
func (c Config) HTTPAddress() string {
	return "0.0.0.0:" + c.HTTPPort
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
