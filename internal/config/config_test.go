package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_FileValues(t *testing.T) {
	dir := writeConfig(t, `
port: "9090"
log:
  level: debug
  format: json
db:
  path: /tmp/x.db
auth:
  signing_key: secret
  token_ttl: 30m
redis:
  addr: localhost:6379
  ttl: 5m
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DB.Path != "/tmp/x.db" || cfg.Auth.SigningKey != "secret" || cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.TTL != 5*time.Minute {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("SUGAR_AUTH_SIGNING_KEY", "from-env")
	t.Setenv("SUGAR_DB_PATH", "env.db")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Log.Level != "info" || cfg.Auth.TokenTTL != time.Hour || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Auth.SigningKey != "from-env" || cfg.DB.Path != "env.db" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis should be disabled by default, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing signing key", "port: \"1\"\n", "signing_key"},
		{"non-positive ttl", "auth:\n  signing_key: k\n  token_ttl: 0s\n", "token_ttl"},
		{"redis without ttl", "auth:\n  signing_key: k\nredis:\n  addr: r:6379\n  ttl: 0s\n", "redis.ttl"},
		{"non-positive shutdown", "shutdown_timeout: 0s\nauth:\n  signing_key: k\n", "shutdown_timeout"},
		{"malformed yaml", "auth: [\n", "read config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
