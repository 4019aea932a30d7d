package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENGINE_LEVEL", "ENGINE_WORKERS", "ENGINE_SEED", "BOT_THINK_DELAY_MS", "LOG_LEVEL", "HTTP_ADDR"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.Level != 2 || cfg.Engine.Workers != 1 || cfg.Engine.Seed != 0 {
		t.Fatalf("engine defaults = %+v", cfg.Engine)
	}
	if cfg.Engine.ThinkDelay != 300*time.Millisecond {
		t.Fatalf("think delay = %s", cfg.Engine.ThinkDelay)
	}
	if cfg.Http.Addr != ":8080" || cfg.Logs.Level != "release" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENGINE_LEVEL", "4")
	t.Setenv("ENGINE_WORKERS", "8")
	t.Setenv("ENGINE_SEED", "42")
	t.Setenv("BOT_THINK_DELAY_MS", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := EngineConfig{Level: 4, Workers: 8, Seed: 42}
	if cfg.Engine != want {
		t.Fatalf("engine = %+v, want %+v", cfg.Engine, want)
	}
	if cfg.Http.Addr != "127.0.0.1:9000" || cfg.Logs.Level != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"ENGINE_LEVEL", "five", "ENGINE_LEVEL"},
		{"ENGINE_LEVEL", "9", "between 1 and 4"},
		{"ENGINE_WORKERS", "0", "at least 1"},
		{"ENGINE_SEED", "x", "ENGINE_SEED"},
		{"BOT_THINK_DELAY_MS", "soon", "BOT_THINK_DELAY_MS"},
		{"LOG_LEVEL", "loud", "LOG_LEVEL"},
	}
	for _, tt := range tests {
		clearEnv(t)
		t.Setenv(tt.key, tt.value)
		_, err := LoadConfig()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s=%s: got error %v, want it to mention %q", tt.key, tt.value, err, tt.want)
		}
	}
}
