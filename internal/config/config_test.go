package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Make sure ambient env from the developer machine does not leak in.
	for _, key := range []string{
		"CASSANDRA_HOSTS", "CASSANDRA_PORT", "CASSANDRA_KEYSPACE",
		"CASSANDRA_REPLICATION_FACTOR", "CASSANDRA_CONSISTENCY",
		"CASSANDRA_NUM_CONNS", "CASSANDRA_TIMEOUT_SECONDS",
		"CASSANDRA_USERNAME", "CASSANDRA_PASSWORD", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if got, want := cfg.Hosts, []string{"127.0.0.1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Hosts = %v, want %v", got, want)
	}
	if cfg.Port != 9042 {
		t.Errorf("Port = %d, want 9042", cfg.Port)
	}
	if cfg.Keyspace != "school" {
		t.Errorf("Keyspace = %q, want %q", cfg.Keyspace, "school")
	}
	if cfg.ReplicationFactor != 1 {
		t.Errorf("ReplicationFactor = %d, want 1", cfg.ReplicationFactor)
	}
	if cfg.Consistency != "quorum" {
		t.Errorf("Consistency = %q, want %q", cfg.Consistency, "quorum")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CASSANDRA_HOSTS", "10.0.0.1, 10.0.0.2 ,10.0.0.3")
	t.Setenv("CASSANDRA_PORT", "19042")
	t.Setenv("CASSANDRA_KEYSPACE", "school_test")
	t.Setenv("CASSANDRA_REPLICATION_FACTOR", "3")
	t.Setenv("CASSANDRA_CONSISTENCY", "local_quorum")
	t.Setenv("CASSANDRA_TIMEOUT_SECONDS", "5")

	cfg := Load()

	want := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
	if !reflect.DeepEqual(cfg.Hosts, want) {
		t.Errorf("Hosts = %v, want %v", cfg.Hosts, want)
	}
	if cfg.Port != 19042 {
		t.Errorf("Port = %d, want 19042", cfg.Port)
	}
	if cfg.Keyspace != "school_test" {
		t.Errorf("Keyspace = %q, want %q", cfg.Keyspace, "school_test")
	}
	if cfg.ReplicationFactor != 3 {
		t.Errorf("ReplicationFactor = %d, want 3", cfg.ReplicationFactor)
	}
	if cfg.Consistency != "local_quorum" {
		t.Errorf("Consistency = %q, want %q", cfg.Consistency, "local_quorum")
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("CASSANDRA_PORT", "not-a-number")

	if cfg := Load(); cfg.Port != 9042 {
		t.Errorf("Port = %d, want default 9042 on unparsable value", cfg.Port)
	}
}

func TestParseHosts(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"127.0.0.1", []string{"127.0.0.1"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , ,b ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := parseHosts(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseHosts(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
