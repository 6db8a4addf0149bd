package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shotcraft/inventory-bot/config"
	"github.com/shotcraft/inventory-bot/internal/delivery/telegram"
	"github.com/shotcraft/inventory-bot/internal/domain/repository"
	"github.com/shotcraft/inventory-bot/internal/infrastructure/sheets"
	"github.com/shotcraft/inventory-bot/internal/usecase"
	"github.com/shotcraft/inventory-bot/pkg/logger"
)

func main() {
	sheetID := flag.String("sheet-id", "", "Google Sheet ID or full URL (overrides SHEET_ID)")
	formulaWS := flag.String("formula-ws", "", "FORMULA worksheet name (overrides FORMULA_WS)")
	inventoryWS := flag.String("inventory-ws", "", "INVENTORY worksheet name (overrides INVENTORY_WS)")
	flag.Parse()

	logger.Init()
	logger.InfoLogger.Println("🚀 Starting Shotcraft live inventory...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config not loaded: %v", err)
	}
	cfg.ApplyFlags(*sheetID, *formulaWS, *inventoryWS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AllowEmptySecrets && (strings.TrimSpace(cfg.TelegramToken) == "" ||
		(cfg.CredentialsFile == "" && cfg.CredentialsJSON == "")) {
		logger.InfoLogger.Println("Secrets missing (TELEGRAM_BOT_TOKEN / service account). Waiting for shutdown.")
		<-ctx.Done()
		return
	}

	creds, err := sheets.LoadCredentials(cfg.CredentialsFile, cfg.CredentialsJSON)
	if err != nil {
		log.Fatalf("❌ Service account credentials not loaded: %v", err)
	}

	newStore := func(ctx context.Context, id string) (repository.TableStore, error) {
		client, err := sheets.NewClient(ctx, creds, id)
		if err != nil {
			return nil, err
		}
		// Probe access before trusting the session with this sheet.
		if _, err := client.Worksheets(ctx); err != nil {
			return nil, err
		}
		return client, nil
	}

	var inv usecase.InventoryUseCase
	if cfg.SheetID != "" {
		store, err := newStore(ctx, cfg.SheetID)
		if err != nil {
			log.Fatalf("❌ Could not connect to Google Sheets: %v", err)
		}
		inv = usecase.NewInventoryUseCase(store, cfg.FormulaWS, cfg.InventoryWS)
		logger.InfoLogger.Printf("✅ Connected to Google Sheet (ID ends with %s)", cfg.SheetIDSuffix())
	} else {
		logger.InfoLogger.Println("⚠️ No SHEET_ID found. Supply one with /usesheet once the bot is up.")
	}

	handler, err := telegram.NewBotHandler(cfg.TelegramToken, cfg, inv, newStore)
	if err != nil {
		log.Fatalf("❌ Bot not created: %v", err)
	}
	logger.InfoLogger.Printf("✅ Bot ready (FORMULA_WS=%s, INVENTORY_WS=%s)", cfg.FormulaWS, cfg.InventoryWS)

	if err := handler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("❌ Bot stopped: %v", err)
	}
	logger.InfoLogger.Println("👋 Shutdown complete")
}
