package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func clearVendorKeys(t *testing.T) {
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearVendorKeys(t)
	cfg, err := load(env.Options{Prefix: Prefix, Environment: map[string]string{}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "json" {
		t.Errorf("server defaults = %q %v %q", cfg.HTTPAddr, cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.GradingPause != 2*time.Second || cfg.TransitionPause != 1500*time.Millisecond {
		t.Errorf("pauses = %v %v", cfg.GradingPause, cfg.TransitionPause)
	}
	if cfg.SnapshotKeep != 20 || len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("keep %d origins %v", cfg.SnapshotKeep, cfg.CORSOrigins)
	}
	if cfg.LLM.Enabled() {
		t.Errorf("llm enabled by default: %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Retry.MaxAttempts != 3 || cfg.LLM.Timeout != 20*time.Second || cfg.LLM.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("llm defaults = %+v", cfg.LLM)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearVendorKeys(t)
	cfg, err := load(env.Options{Prefix: Prefix, Environment: map[string]string{
		"CASETRACK_DB":                     "/tmp/ct.db",
		"CASETRACK_HTTP_ADDR":              "127.0.0.1:9000",
		"CASETRACK_LOG_LEVEL":              "debug",
		"CASETRACK_LOG_FORMAT":             "text",
		"CASETRACK_GRADING_PAUSE":          "500ms",
		"CASETRACK_SNAPSHOT_KEEP":          "5",
		"CASETRACK_CORS_ORIGINS":           "http://localhost:5173,https://example.com",
		"CASETRACK_LLM_PROVIDER":           "openai",
		"CASETRACK_LLM_OPENAI_API_KEY":     "sk-test",
		"CASETRACK_LLM_OPENAI_BASE_URL":    "http://localhost:11434/v1",
		"CASETRACK_LLM_MAX_RETRIES":        "1",
		"CASETRACK_LLM_ANTHROPIC_MODEL":    "claude-sonnet",
		"CASETRACK_LLM_RETRY_MAX_WAIT":     "2s",
		"CASETRACK_LLM_GEMINI_MODEL":       "gemini-pro",
		"CASETRACK_LLM_TIMEOUT":            "5s",
		"CASETRACK_LLM_OPENROUTER_MODEL":   "x/y",
		"CASETRACK_TRANSITION_PAUSE":       "0s",
		"CASETRACK_LLM_RETRY_MULTIPLIER":   "1.5",
		"CASETRACK_LLM_RETRY_INITIAL_WAIT": "100ms",
	}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/ct.db" || cfg.HTTPAddr != "127.0.0.1:9000" || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.GradingPause != 500*time.Millisecond || cfg.TransitionPause != 0 || cfg.SnapshotKeep != 5 {
		t.Errorf("timing = %v %v %d", cfg.GradingPause, cfg.TransitionPause, cfg.SnapshotKeep)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://example.com" {
		t.Errorf("origins = %v", cfg.CORSOrigins)
	}
	l := cfg.LLM
	if l.Provider != "openai" || l.OpenAI.APIKey != "sk-test" || l.OpenAI.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("openai = %+v", l.OpenAI)
	}
	if l.Retry.MaxAttempts != 1 || l.Retry.MaxWait != 2*time.Second || l.Retry.Multiplier != 1.5 || l.Timeout != 5*time.Second {
		t.Errorf("retry = %+v timeout %v", l.Retry, l.Timeout)
	}
	if l.Anthropic.Model != "claude-sonnet" || l.Gemini.Model != "gemini-pro" || l.OpenRouter.Model != "x/y" {
		t.Errorf("models = %q %q %q", l.Anthropic.Model, l.Gemini.Model, l.OpenRouter.Model)
	}
}

func TestLoad_DiscoversVendorKey(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, err := load(env.Options{Prefix: Prefix, Environment: map[string]string{}})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.Provider != "anthropic" || cfg.LLM.Anthropic.APIKey != "sk-ant" {
		t.Errorf("llm = %q %q", cfg.LLM.Provider, cfg.LLM.Anthropic.APIKey)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearVendorKeys(t)
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad level", map[string]string{"CASETRACK_LOG_LEVEL": "loud"}, "parsing environment"},
		{"bad duration", map[string]string{"CASETRACK_GRADING_PAUSE": "soon"}, "parsing environment"},
		{"bad format", map[string]string{"CASETRACK_LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"negative pause", map[string]string{"CASETRACK_GRADING_PAUSE": "-1s"}, "must not be negative"},
		{"zero keep", map[string]string{"CASETRACK_SNAPSHOT_KEEP": "0"}, "SNAPSHOT_KEEP"},
		{"llm without key", map[string]string{"CASETRACK_LLM_PROVIDER": "gemini"}, "GEMINI_API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(env.Options{Prefix: Prefix, Environment: tt.env})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}
