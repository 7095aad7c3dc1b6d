package config

import (
	"reflect"
	"testing"
	"time"
)

// --- MustLoad ---

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose") // invalid -> Load() error
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

// --- Load success + normalization + parsing ---

func TestLoad_Success_DefaultsAndOverrides(t *testing.T) {
	// Server timeouts / sizes (valid)
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("GIN_MODE", "weird") // will normalize to "release"

	// Logging
	t.Setenv("LOG_LEVEL", "warning") // will normalize to "warn"
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("API_BASE_PATH", "api/v1/") // no leading slash + trailing slash -> "/api/v1"

	// App
	t.Setenv("DB_PATH", "db.sqlite")
	t.Setenv("RESOLVE_TIMEOUT", "750ms")
	t.Setenv("FALLBACK_URL", "https://example.com/contact")

	// Rate limiting (use invalids for parse to fall back to defaults)
	t.Setenv("RATE_RPS", "x")      // -> default 25.0
	t.Setenv("RATE_BURST", "nope") // -> default 50

	// Web protection
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")

	// OTEL
	t.Setenv("OTEL_ENABLED", "on")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "off")
	t.Setenv("OTEL_SERVICE_NAME", "leadflow-test")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8088" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.ReadTimeout != 2*time.Second || cfg.WriteTimeout != 3*time.Second {
		t.Fatalf("timeouts not parsed: %+v", cfg)
	}
	if cfg.MaxHeaderBytes != 8192 {
		t.Fatalf("MaxHeaderBytes = %d", cfg.MaxHeaderBytes)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GinMode not normalized: %q", cfg.GinMode)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel not normalized: %q", cfg.LogLevel)
	}
	if !cfg.LogPretty {
		t.Fatalf("LogPretty should be true")
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.DBPath != "db.sqlite" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ResolveTimeout != 750*time.Millisecond {
		t.Fatalf("ResolveTimeout = %v", cfg.ResolveTimeout)
	}
	if cfg.FallbackURL != "https://example.com/contact" {
		t.Fatalf("FallbackURL = %q", cfg.FallbackURL)
	}
	if cfg.RateRPS != 25.0 || cfg.RateBurst != 50 {
		t.Fatalf("rate limits should fall back to defaults: %v %v", cfg.RateRPS, cfg.RateBurst)
	}
	wantOrigins := []string{"https://a.com", "http://b"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, wantOrigins) {
		t.Fatalf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security: %+v", cfg.Security)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Insecure {
		t.Fatalf("otel toggles: %+v", cfg.OTEL)
	}
	if cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.ServiceName != "leadflow-test" {
		t.Fatalf("otel endpoint/service: %+v", cfg.OTEL)
	}
	if cfg.OTEL.SampleRatio != 0.25 {
		t.Fatalf("SampleRatio = %v", cfg.OTEL.SampleRatio)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "READ_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT",
		"MAX_HEADER_BYTES", "GIN_MODE", "LOG_LEVEL", "LOG_PRETTY", "API_BASE_PATH",
		"DB_PATH", "RESOLVE_TIMEOUT", "FALLBACK_URL", "RATE_RPS", "RATE_BURST",
		"CORS_ALLOWED_ORIGINS", "ENABLE_HSTS", "HSTS_MAX_AGE",
		"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
		"OTEL_SERVICE_NAME", "OTEL_TRACES_SAMPLER_ARG",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("default Port = %q", cfg.Port)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("default APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.ResolveTimeout != 3*time.Second {
		t.Fatalf("default ResolveTimeout = %v", cfg.ResolveTimeout)
	}
	if cfg.FallbackURL != "" {
		t.Fatalf("default FallbackURL = %q", cfg.FallbackURL)
	}
	if cfg.CORS.AllowedOrigins != nil {
		t.Fatalf("default AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.OTEL.Enabled {
		t.Fatalf("OTEL should default to disabled")
	}
	if cfg.OTEL.SampleRatio != 1.0 {
		t.Fatalf("default SampleRatio = %v", cfg.OTEL.SampleRatio)
	}
}

// --- Load validation failures ---

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"zero read timeout", "READ_TIMEOUT", "0s"},
		{"negative write timeout", "WRITE_TIMEOUT", "-1s"},
		{"zero max header bytes", "MAX_HEADER_BYTES", "0"},
		{"zero resolve timeout", "RESOLVE_TIMEOUT", "0s"},
		{"relative fallback url", "FALLBACK_URL", "/contact"},
		{"negative rate rps", "RATE_RPS", "-1"},
		{"zero rate burst", "RATE_BURST", "0"},
		{"sample ratio above one", "OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":        "/",
		"/":       "/",
		"api":     "/api",
		"/api/":   "/api",
		"api/v1/": "/api/v1",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Fatalf("normalizeBasePath(%q) = %q, want %q", in, got, want)
		}
	}
}
