package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("ORDR_VERIFICATION_KEY", "test-key")

	cfg, err := LoadConfig("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Discord.Token != "test-token" {
		t.Errorf("Token = %q", cfg.Discord.Token)
	}
	if cfg.Discord.DefaultPrefix != ">>" {
		t.Errorf("DefaultPrefix = %q, want >>", cfg.Discord.DefaultPrefix)
	}
	if cfg.Ordr.APIURL != "https://apis.issou.best/ordr" {
		t.Errorf("Ordr.APIURL = %q", cfg.Ordr.APIURL)
	}
	if cfg.Ordr.WebsocketURL != "wss://ordr-ws.issou.best" {
		t.Errorf("Ordr.WebsocketURL = %q", cfg.Ordr.WebsocketURL)
	}
	if cfg.Ordr.Username != "Aswo" {
		t.Errorf("Ordr.Username = %q", cfg.Ordr.Username)
	}
	if cfg.Ordr.Resolution != "1280x720" {
		t.Errorf("Ordr.Resolution = %q", cfg.Ordr.Resolution)
	}
	if cfg.Ordr.RenderTimeout() != 15*time.Minute {
		t.Errorf("RenderTimeout() = %v, want 15m", cfg.Ordr.RenderTimeout())
	}
}

func TestLoadConfigMissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("ORDR_VERIFICATION_KEY", "k")

	if _, err := LoadConfig("does-not-exist.yaml"); err == nil {
		t.Error("LoadConfig() error = nil without DISCORD_TOKEN")
	}
}

func TestLoadConfigMissingVerificationKey(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("ORDR_VERIFICATION_KEY", "")

	if _, err := LoadConfig("does-not-exist.yaml"); err == nil {
		t.Error("LoadConfig() error = nil without ORDR_VERIFICATION_KEY")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("ORDR_VERIFICATION_KEY", "")

	contents := `
service:
  name: aswo-test
discord:
  token: file-token
  default_prefix: "!"
ordr:
  verification_key: file-key
  render_timeout_minutes: 30
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Service.Name != "aswo-test" {
		t.Errorf("Service.Name = %q", cfg.Service.Name)
	}
	if cfg.Discord.Token != "file-token" {
		t.Errorf("Token = %q", cfg.Discord.Token)
	}
	if cfg.Discord.DefaultPrefix != "!" {
		t.Errorf("DefaultPrefix = %q, want !", cfg.Discord.DefaultPrefix)
	}
	if cfg.Ordr.RenderTimeout() != 30*time.Minute {
		t.Errorf("RenderTimeout() = %v, want 30m", cfg.Ordr.RenderTimeout())
	}
	// Unset fields still fall back to defaults.
	if cfg.Osu.APIURL != "https://osu.ppy.sh/api/v2" {
		t.Errorf("Osu.APIURL = %q", cfg.Osu.APIURL)
	}
}

func TestInvalidRenderTimeout(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "tok")
	t.Setenv("ORDR_VERIFICATION_KEY", "k")
	t.Setenv("ORDR_RENDER_TIMEOUT_MINUTES", "soon")

	if _, err := LoadConfig("does-not-exist.yaml"); err == nil {
		t.Error("LoadConfig() error = nil for a non-numeric timeout")
	}
}
