package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shotcraft/inventory-bot/internal/domain/constants"
	"github.com/shotcraft/inventory-bot/internal/domain/entity"
)

// Config holds everything resolved at startup. The sheet ID may still be
// empty here; the operator can supply one for the session via /usesheet.
type Config struct {
	TelegramToken     string
	SheetID           string
	FormulaWS         string
	InventoryWS       string
	CredentialsFile   string
	CredentialsJSON   string
	AllowEmptySecrets bool
}

// Load reads .env (if present) and the environment. Each value is resolved
// top-level env first, then the APP_-scoped variant.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		SheetID:           resolveEnv("SHEET_ID"),
		FormulaWS:         resolveEnv("FORMULA_WS"),
		InventoryWS:       resolveEnv("INVENTORY_WS"),
		CredentialsFile:   resolveEnv("GOOGLE_SERVICE_ACCOUNT_FILE"),
		CredentialsJSON:   resolveEnv("GOOGLE_SERVICE_ACCOUNT_JSON"),
		AllowEmptySecrets: getEnvBool("ALLOW_EMPTY_SECRETS", false),
	}

	if config.FormulaWS == "" {
		config.FormulaWS = constants.DefaultFormulaWorksheet
	}
	if config.InventoryWS == "" {
		config.InventoryWS = constants.DefaultInventoryWorksheet
	}

	if !config.AllowEmptySecrets {
		if config.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is empty")
		}
		if config.CredentialsFile == "" && config.CredentialsJSON == "" {
			return nil, fmt.Errorf("set GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_SERVICE_ACCOUNT_JSON: %w", entity.ErrNoCredentials)
		}
	}

	return config, nil
}

// ApplyFlags lets command-line flags win over everything from the
// environment. Empty flag values change nothing.
func (c *Config) ApplyFlags(sheetID, formulaWS, inventoryWS string) {
	if v := strings.TrimSpace(sheetID); v != "" {
		c.SheetID = ExtractSheetID(v)
	}
	if v := strings.TrimSpace(formulaWS); v != "" {
		c.FormulaWS = v
	}
	if v := strings.TrimSpace(inventoryWS); v != "" {
		c.InventoryWS = v
	}
}

// ExtractSheetID accepts either a bare spreadsheet ID or a full Google
// Sheets URL and returns the ID (the part between /d/ and the next /).
func ExtractSheetID(raw string) string {
	txt := strings.TrimSpace(raw)
	if idx := strings.Index(txt, "/d/"); idx >= 0 {
		txt = txt[idx+len("/d/"):]
		if slash := strings.Index(txt, "/"); slash >= 0 {
			txt = txt[:slash]
		}
	}
	return strings.TrimSpace(txt)
}

// SheetIDSuffix returns the last few characters of the sheet ID for
// display, never the full identifier.
func (c *Config) SheetIDSuffix() string {
	id := strings.TrimSpace(c.SheetID)
	if id == "" {
		return "none"
	}
	if len(id) <= 6 {
		return id
	}
	return "…" + id[len(id)-6:]
}

func resolveEnv(key string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("APP_" + key))
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
