package config

import (
	"errors"
	"testing"

	"github.com/shotcraft/inventory-bot/internal/domain/entity"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", `{"type":"service_account"}`)
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	t.Setenv("ALLOW_EMPTY_SECRETS", "")
	t.Setenv("SHEET_ID", "")
	t.Setenv("APP_SHEET_ID", "")
	t.Setenv("FORMULA_WS", "")
	t.Setenv("APP_FORMULA_WS", "")
	t.Setenv("INVENTORY_WS", "")
	t.Setenv("APP_INVENTORY_WS", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FormulaWS != "FORMULA" || cfg.InventoryWS != "INVENTORY" {
		t.Errorf("worksheet defaults wrong: %q %q", cfg.FormulaWS, cfg.InventoryWS)
	}
	if cfg.SheetID != "" {
		t.Errorf("sheet ID should be empty, got %q", cfg.SheetID)
	}
}

func TestLoad_ResolutionPriority(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_SHEET_ID", "app-scoped")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SheetID != "app-scoped" {
		t.Errorf("APP_ fallback not applied: %q", cfg.SheetID)
	}

	// Top-level env beats the APP_-scoped value.
	t.Setenv("SHEET_ID", "top-level")
	cfg, _ = Load()
	if cfg.SheetID != "top-level" {
		t.Errorf("top-level env should win: %q", cfg.SheetID)
	}

	// A flag beats everything.
	cfg.ApplyFlags("flag-id", "", "")
	if cfg.SheetID != "flag-id" {
		t.Errorf("flag should win: %q", cfg.SheetID)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")

	_, err := Load()
	if !errors.Is(err, entity.ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}

	// Explicitly allowed for local dry runs.
	t.Setenv("ALLOW_EMPTY_SECRETS", "1")
	if _, err := Load(); err != nil {
		t.Errorf("ALLOW_EMPTY_SECRETS should permit missing credentials: %v", err)
	}
}

func TestExtractSheetID(t *testing.T) {
	cases := []struct{ raw, want string }{
		{"1ivuxCDfMuAbc", "1ivuxCDfMuAbc"},
		{"https://docs.google.com/spreadsheets/d/1ivuxCDfMuAbc/edit#gid=0", "1ivuxCDfMuAbc"},
		{"https://docs.google.com/spreadsheets/d/1ivuxCDfMuAbc", "1ivuxCDfMuAbc"},
		{"  1ivuxCDfMuAbc  ", "1ivuxCDfMuAbc"},
	}
	for _, c := range cases {
		if got := ExtractSheetID(c.raw); got != c.want {
			t.Errorf("ExtractSheetID(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestSheetIDSuffix(t *testing.T) {
	cfg := &Config{SheetID: "1ivuxCDfMuAbcdef"}
	if got := cfg.SheetIDSuffix(); got != "…Abcdef" {
		t.Errorf("SheetIDSuffix() = %q", got)
	}
	cfg.SheetID = ""
	if got := cfg.SheetIDSuffix(); got != "none" {
		t.Errorf("empty suffix = %q", got)
	}
}
