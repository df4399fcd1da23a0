package configs

import (
	"testing"
	"time"
)

func TestAppLoadDefaults(t *testing.T) {
	cfg := AppLoad()

	if cfg.ServerPort != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.ServerPort)
	}
	if cfg.SimInterval != 5*time.Second {
		t.Errorf("default interval = %v, want 5s", cfg.SimInterval)
	}
	if cfg.DBDSN == "" {
		t.Error("DSN should never be empty")
	}
}

func TestAppLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SIM_INTERVAL_SECONDS", "2")
	t.Setenv("CLICKHOUSE_DB", "telemetry_test")

	cfg := AppLoad()

	if cfg.ServerPort != "9999" {
		t.Errorf("port = %q, want 9999", cfg.ServerPort)
	}
	if cfg.SimInterval != 2*time.Second {
		t.Errorf("interval = %v, want 2s", cfg.SimInterval)
	}
	if want := "clickhouse://default:@localhost:9000/telemetry_test?dial_timeout=10s&read_timeout=20s"; cfg.DBDSN != want {
		t.Errorf("dsn = %q, want %q", cfg.DBDSN, want)
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("SIM_INTERVAL_SECONDS", "not-a-number")

	cfg := AppLoad()
	if cfg.SimInterval != 5*time.Second {
		t.Errorf("interval = %v, want default 5s on parse failure", cfg.SimInterval)
	}
}
