// Package config loads application settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP      HTTPConfig
	Tailscale TailscaleConfig
	Transfer  TransferConfig
	Logging   LoggingConfig
}

// HTTPConfig governs the API server behaviour.
type HTTPConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
}

// TailscaleConfig describes how the tailnet is discovered and probed.
type TailscaleConfig struct {
	Binary       string        // path to the tailscale executable
	ProbeTimeout time.Duration // per-pair ping timeout
	IncludeSelf  bool          // also graph the local node
}

// TransferConfig describes the file-transfer collaborator.
type TransferConfig struct {
	SCPBinary string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Minute // an analysis probes n*(n-1) pairs
	defaultShutdownTimeout = 10 * time.Second
	defaultTailscaleBinary = "tailscale"
	defaultProbeTimeout    = time.Second
	defaultSCPBinary       = "scp"
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
)

// Load reads configuration from environment variables, applying
// defaults. A .env file in the working directory is honored but never
// overrides the real environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTP: HTTPConfig{
			Host:            valueOrDefault("SERVER_HOST", defaultHost),
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MetricsEnabled:  parseBoolWithDefault("SERVER_METRICS_ENABLED", true),
		},
		Tailscale: TailscaleConfig{
			Binary:      valueOrDefault("TAILSCALE_BINARY", defaultTailscaleBinary),
			IncludeSelf: parseBoolWithDefault("TAILSCALE_INCLUDE_SELF", false),
		},
		Transfer: TransferConfig{
			SCPBinary: valueOrDefault("SCP_BINARY", defaultSCPBinary),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
	}

	port, err := parsePort("SERVER_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	probeTimeout, err := parseDurationWithDefault("TAILSCALE_PROBE_TIMEOUT", defaultProbeTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.Tailscale.ProbeTimeout = probeTimeout

	if v := os.Getenv("SERVER_READ_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
		}
		cfg.HTTP.ReadTimeout = d
	}

	if v := os.Getenv("SERVER_WRITE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
		}
		cfg.HTTP.WriteTimeout = d
	}

	if v := os.Getenv("SERVER_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.HTTP.ShutdownTimeout = d
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseDurationWithDefault(key string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return d, nil
	}
	return fallback, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
