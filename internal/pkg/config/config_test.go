package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Session.Backend != BackendFile || cfg.Session.Key != "thrive_user" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Mock.LatencyScale != 1 || cfg.Mock.ChatPollInterval != 5*time.Second {
		t.Fatalf("unexpected mock defaults: %+v", cfg.Mock)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND":    "redis",
		"MOCK_LATENCY_SCALE": "0",
		"REDIS_PREFIX":       "x:",
		"TOKEN_TTL":          "1h",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Session.Backend != BackendRedis || cfg.Mock.LatencyScale != 0 || cfg.Redis.Prefix != "x:" || cfg.TokenTTL != time.Hour {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown backend": {"SESSION_BACKEND": "sqlite"},
		"negative scale":  {"MOCK_LATENCY_SCALE": "-1"},
		"zero poll":       {"CHAT_POLL_INTERVAL": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := load(context.Background(), envconfig.MapLookuper(env)); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_BadValue(t *testing.T) {
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"REDIS_DB": "abc"})); err == nil {
		t.Fatalf("expected parse error")
	}
}
