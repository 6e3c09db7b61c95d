package config

import (
	"strings"
	"testing"
	"time"
)

// setRequired sets the env vars without which Load refuses to start.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_ADMIN_SDK_CONFIG", `{"type":"service_account"}`)
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
	t.Setenv("GOOGLE_TTS_API_KEY", "test-tts-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.APIBasePath != "/api" {
		t.Errorf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.HistoryMaxEntries != 10 {
		t.Errorf("HistoryMaxEntries = %d; want 10", cfg.HistoryMaxEntries)
	}
	if cfg.Firebase.DatabaseID != "flipcymru-db" {
		t.Errorf("DatabaseID = %q", cfg.Firebase.DatabaseID)
	}
	if cfg.Firebase.AppNamespace != "default-app-id" {
		t.Errorf("AppNamespace = %q", cfg.Firebase.AppNamespace)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Gemini.Model = %q", cfg.Gemini.Model)
	}
	if cfg.TTS.LanguageCode != "cy-GB" || cfg.TTS.SampleRateHz != 24000 {
		t.Errorf("TTS defaults = %+v", cfg.TTS)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q", cfg.GinMode)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v", cfg.WriteTimeout)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	cases := []struct {
		name  string
		unset string
		want  string
	}{
		{"firebase", "FIREBASE_ADMIN_SDK_CONFIG", "FIREBASE_ADMIN_SDK_CONFIG"},
		{"gemini", "GEMINI_API_KEY", "GEMINI_API_KEY"},
		{"tts", "GOOGLE_TTS_API_KEY", "GOOGLE_TTS_API_KEY"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(c.unset, "")
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v; want mention of %s", err, c.want)
			}
		})
	}
}

func TestLoad_NormalizesLevelAndMode(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("GIN_MODE", "bogus")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q; want warn", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q; want release", cfg.GinMode)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct {
		key, val string
	}{
		{"LOG_LEVEL", "verbose"},
		{"HISTORY_MAX_ENTRIES", "0"},
		{"RATE_BURST", "0"},
		{"TTS_SAMPLE_RATE_HZ", "-1"},
		{"OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}
	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(c.key, c.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", c.key, c.val)
			}
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := map[string]string{
		"":       "/",
		"/":      "/",
		"api":    "/api",
		"/api/":  "/api",
		" /api ": "/api",
	}
	for in, want := range cases {
		if got := normalizeBasePath(in); got != want {
			t.Errorf("normalizeBasePath(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV("http://localhost:3000, https://flipcymru.app ,")
	if len(got) != 2 || got[0] != "http://localhost:3000" || got[1] != "https://flipcymru.app" {
		t.Fatalf("splitCSV = %#v", got)
	}
	if splitCSV("") != nil {
		t.Errorf("splitCSV(\"\") should be nil")
	}
}
