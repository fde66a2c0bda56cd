package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	// gRPC server
	GRPCPort string
	APIToken string // Shared transport token; empty disables the auth interceptor

	// Prometheus metrics endpoint; empty disables it
	MetricsAddr string

	// Logging
	LogLevel  string
	LogFormat string

	// Fill an empty dashboard with demo transactions on startup
	SeedSampleData bool
}

func Load() *Config {
	return &Config{
		GRPCPort:       getEnv("GRPC_PORT", ":8080"),
		APIToken:       os.Getenv("API_TOKEN"),
		MetricsAddr:    getEnv("METRICS_ADDR", ":9090"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", LogFormatText),
		SeedSampleData: getBoolEnv("SEED_SAMPLE_DATA", true),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if err := validateListenAddr(c.GRPCPort); err != nil {
		errs = append(errs, fmt.Sprintf("GRPC_PORT: %v", err))
	}

	if c.MetricsAddr != "" {
		if err := validateListenAddr(c.MetricsAddr); err != nil {
			errs = append(errs, fmt.Sprintf("METRICS_ADDR: %v", err))
		}
		if addrsOverlap(ListenAddr(c.MetricsAddr), ListenAddr(c.GRPCPort)) {
			errs = append(errs, "METRICS_ADDR must differ from GRPC_PORT")
		}
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err.Error())
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		errs = append(errs, fmt.Sprintf("invalid LOG_FORMAT '%s': must be '%s' or '%s'", c.LogFormat, LogFormatText, LogFormatJSON))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// SlogLevel converts LogLevel to a slog.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL '%s': must be debug, info, warn or error", c.LogLevel)
	}
	return level, nil
}

// AuthEnabled reports whether RPCs must carry the shared API token
func (c *Config) AuthEnabled() bool {
	return c.APIToken != ""
}

// validateListenAddr accepts ":8080", "host:8080" or a bare "8080"
func validateListenAddr(addr string) error {
	portStr := addr
	if idx := strings.LastIndex(addr, ":"); idx >= 0 {
		portStr = addr[idx+1:]
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port '%s': must be a number", portStr)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	return nil
}

// addrsOverlap reports whether two listen addresses would bind the same port.
// An empty or wildcard host binds every interface.
func addrsOverlap(a, b string) bool {
	hostA, portA, errA := net.SplitHostPort(a)
	hostB, portB, errB := net.SplitHostPort(b)
	if errA != nil || errB != nil {
		return a == b
	}
	if portA != portB {
		return false
	}
	return isWildcardHost(hostA) || isWildcardHost(hostB) || hostA == hostB
}

func isWildcardHost(host string) bool {
	return host == "" || host == "0.0.0.0" || host == "::"
}

// ListenAddr normalises a bare port number into a listen address
func ListenAddr(addr string) string {
	if strings.Contains(addr, ":") {
		return addr
	}
	return ":" + addr
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
