package app

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("USER", "someone")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.claon.life,https://claon.life")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Address() != ":9090" {
		t.Fatalf("address: want=:9090 got=%s", cfg.Address())
	}
	if cfg.Postgres.Host != "db.internal" || cfg.Postgres.MaxOpenConns != 7 {
		t.Fatalf("postgres: got=%+v", cfg.Postgres)
	}
	// Plain PORT/USER must not leak into the postgres settings.
	if cfg.Postgres.Port != 5432 || cfg.Postgres.User != "postgres" {
		t.Fatalf("postgres defaults: got=%+v", cfg.Postgres)
	}
	if cfg.AccessTokenTTL != time.Hour || cfg.CenterNameCacheTTL != 10*time.Minute {
		t.Fatalf("ttls: access=%s cache=%s", cfg.AccessTokenTTL, cfg.CenterNameCacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://claon.life" {
		t.Fatalf("origins: got=%v", cfg.CORSAllowedOrigins)
	}
	if cfg.DefaultPageSize != 50 || cfg.MaxPageSize != 100 {
		t.Fatalf("page sizes: got=%d/%d", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
	if cfg.tracingServiceName() != "" {
		t.Fatalf("tracing should be off by default")
	}
}

func TestLoadConfigOtel(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "claon-admin-dev")
	t.Setenv("OTEL_TRACES_SAMPLER_RATIO", "0.25")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.tracingServiceName() != "claon-admin-dev" {
		t.Fatalf("service name: got=%q", cfg.tracingServiceName())
	}
	if got := cfg.Otel.toObservability().SampleRatio; got != 0.25 {
		t.Fatalf("sample ratio: want=0.25 got=%v", got)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name, key, value string
	}{
		{"ttl", "ACCESS_TOKEN_TTL", "soon"},
		{"page size", "MAX_PAGE_SIZE", "10"},
		{"postgres port", "POSTGRES_PORT", "five"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("want error for %s=%s", tc.key, tc.value)
			}
		})
	}
}
