package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LLM_PROVIDER", "GROQ_API_KEY", "GROQ_MODEL", "GROQ_BASE_URL",
		"ARK_API_KEY", "Model", "ARK_BASE_URL", "ARK_REGION", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.AI.Provider != ProviderGroq {
		t.Fatalf("unexpected provider %q", cfg.AI.Provider)
	}
	if cfg.AI.Model != defaultGroqModel || cfg.AI.BaseURL != defaultGroqBaseURL {
		t.Fatalf("unexpected groq defaults: %+v", cfg.AI)
	}
	if cfg.AI.Enabled() {
		t.Fatal("expected AI disabled without a credential")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadGroqCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "  gsk_test  ")
	t.Setenv("GROQ_BASE_URL", "http://localhost:9999/v1/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.APIKey != "gsk_test" {
		t.Fatalf("expected trimmed key, got %q", cfg.AI.APIKey)
	}
	if cfg.AI.BaseURL != "http://localhost:9999/v1" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.AI.BaseURL)
	}
	if !cfg.AI.Enabled() {
		t.Fatal("expected AI enabled")
	}
}

func TestLoadArkProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "ARK")
	t.Setenv("ARK_API_KEY", "ark-key")
	t.Setenv("Model", "ep-123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.Provider != ProviderArk || cfg.AI.Model != "ep-123" || cfg.AI.Region != defaultArkRegion {
		t.Fatalf("unexpected ark config: %+v", cfg.AI)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadServerAddr(t *testing.T) {
	cases := map[string]string{
		"8080":           ":8080",
		":9090":          ":9090",
		"127.0.0.1:7070": "127.0.0.1:7070",
	}
	for in, want := range cases {
		clearEnv(t)
		t.Setenv("PORT", in)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load(%q) err: %v", in, err)
		}
		if cfg.Server.Addr != want {
			t.Fatalf("PORT=%q: got %q want %q", in, cfg.Server.Addr, want)
		}
	}
}

func TestLoadRejectsPortWithSpace(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "80 80")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT with space")
	}
}
