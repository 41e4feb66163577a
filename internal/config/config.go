package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Hosts are the cluster contact points; the driver discovers the rest
	// of the ring from them.
	Hosts             []string
	Port              int
	Keyspace          string
	ReplicationFactor int
	// Consistency names the per-operation consistency level
	// (one, quorum, all, local_quorum, ...).
	Consistency string
	NumConns    int
	Timeout     time.Duration
	Username    string
	Password    string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		Hosts:             parseHosts(getEnv("CASSANDRA_HOSTS", "127.0.0.1")),
		Port:              getEnvInt("CASSANDRA_PORT", 9042),
		Keyspace:          getEnv("CASSANDRA_KEYSPACE", "school"),
		ReplicationFactor: getEnvInt("CASSANDRA_REPLICATION_FACTOR", 1),
		Consistency:       getEnv("CASSANDRA_CONSISTENCY", "quorum"),
		NumConns:          getEnvInt("CASSANDRA_NUM_CONNS", 2),
		Timeout:           time.Duration(getEnvInt("CASSANDRA_TIMEOUT_SECONDS", 30)) * time.Second,
		Username:          getEnv("CASSANDRA_USERNAME", ""),
		Password:          getEnv("CASSANDRA_PASSWORD", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "pretty"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseHosts splits a comma-separated contact-point list into a trimmed slice.
func parseHosts(raw string) []string {
	parts := strings.Split(raw, ",")
	hosts := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}
	return hosts
}
