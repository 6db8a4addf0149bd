package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shotcraft/inventory-bot/internal/domain/constants"
	"github.com/shotcraft/inventory-bot/internal/domain/entity"
	"github.com/shotcraft/inventory-bot/internal/infrastructure/excel"
	"github.com/shotcraft/inventory-bot/internal/usecase"
)

func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	cmd, args := extractCommand(message)
	if cmd == "" {
		h.sendMessage(message.Chat.ID, "Unknown command. /help for help.")
		return
	}

	switch cmd {
	case "start", "help":
		h.sendMessage(message.Chat.ID, h.getHelpMessage())
	case "usesheet":
		h.handleUseSheetCommand(ctx, message, args)
	case "reload":
		h.handleReloadCommand(ctx, message, "🔄 Reloaded from sheet.")
	case "revert":
		h.handleReloadCommand(ctx, message, "↩️ Reverted to current sheet values.")
	case "stock":
		h.handleStockCommand(ctx, message)
	case "order":
		h.handleOrderCommand(ctx, message, args)
	case "set":
		h.handleSetCommand(ctx, message, args)
	case "sync":
		h.handleSyncCommand(ctx, message)
	case "snapshot":
		h.handleSnapshotCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Unknown command. /help for help.")
	}
}

// ensureLoaded returns a loaded session, loading lazily on first use.
func (h *BotHandler) ensureLoaded(ctx context.Context, chatID int64) usecase.InventoryUseCase {
	inv := h.session()
	if inv == nil {
		h.sendMessage(chatID, "⚠️ No Sheet ID configured. Paste your Google Sheet ID or full URL:\n/usesheet <id or URL>")
		return nil
	}
	if !inv.Loaded() {
		if err := inv.Load(ctx); err != nil {
			h.sendMessage(chatID, describeLoadError(err))
			return nil
		}
	}
	return inv
}

func (h *BotHandler) handleUseSheetCommand(ctx context.Context, message *tgbotapi.Message, args string) {
	if strings.TrimSpace(args) == "" {
		h.sendMessage(message.Chat.ID, "Usage: /usesheet <sheet ID or full URL>\nTip: the ID is the long part between /d/ and /edit in the URL.")
		return
	}

	inv, err := h.useSheet(ctx, args)
	if err != nil {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ Could not connect to Google Sheets: %v", err))
		return
	}
	if err := inv.Load(ctx); err != nil {
		h.sendMessage(message.Chat.ID, describeLoadError(err))
		return
	}
	h.sendMessage(message.Chat.ID, fmt.Sprintf("✅ Connected to Google Sheet (ID ends with %s).", h.cfg.SheetIDSuffix()))
}

func (h *BotHandler) handleReloadCommand(ctx context.Context, message *tgbotapi.Message, okText string) {
	inv := h.session()
	if inv == nil {
		h.ensureLoaded(ctx, message.Chat.ID)
		return
	}
	if err := inv.Load(ctx); err != nil {
		h.sendMessage(message.Chat.ID, describeLoadError(err))
		return
	}
	h.sendMessage(message.Chat.ID, okText)
}

func (h *BotHandler) handleStockCommand(ctx context.Context, message *tgbotapi.Message) {
	inv := h.ensureLoaded(ctx, message.Chat.ID)
	if inv == nil {
		return
	}
	h.sendHTML(message.Chat.ID, renderStock(inv.Components(), inv.OnHand(), inv.Dirty()))
}

func (h *BotHandler) handleOrderCommand(ctx context.Context, message *tgbotapi.Message, args string) {
	inv := h.ensureLoaded(ctx, message.Chat.ID)
	if inv == nil {
		return
	}

	if strings.TrimSpace(args) != "" {
		cases, err := strconv.ParseFloat(strings.TrimSpace(args), 64)
		if err != nil || cases < 0 {
			h.sendMessage(message.Chat.ID, "Usage: /order <cases> (a non-negative number)")
			return
		}
		inv.SetCases(cases)
	}

	h.sendHTML(message.Chat.ID, renderResult(inv.Result(), inv.Cases()))
}

func (h *BotHandler) handleSetCommand(ctx context.Context, message *tgbotapi.Message, args string) {
	inv := h.ensureLoaded(ctx, message.Chat.ID)
	if inv == nil {
		return
	}

	// Component names may contain spaces; the last field is the quantity.
	fields := strings.Fields(args)
	if len(fields) < 2 {
		h.sendMessage(message.Chat.ID, "Usage: /set <component> <qty>")
		return
	}
	name := strings.Join(fields[:len(fields)-1], " ")
	raw := fields[len(fields)-1]

	qty, err := inv.SetOnHand(name, raw)
	if err != nil {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ %v. /stock lists the component names.", err))
		return
	}
	h.sendMessage(message.Chat.ID, fmt.Sprintf("✏️ %s: On_Hand = %s (in memory — /sync to write back).", name, formatQty(qty)))
}

func (h *BotHandler) handleSyncCommand(ctx context.Context, message *tgbotapi.Message) {
	inv := h.ensureLoaded(ctx, message.Chat.ID)
	if inv == nil {
		return
	}

	if err := inv.Sync(ctx); err != nil {
		log.Printf("[inventory] sync failed: %v", err)
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ Sync failed: %v\nYour edits are kept in memory. Try /sync again or /revert.", err))
		return
	}
	h.sendMessage(message.Chat.ID, fmt.Sprintf("💾 Synced at %s", time.Now().Format("2006-01-02 15:04:05")))
}

func (h *BotHandler) handleSnapshotCommand(ctx context.Context, message *tgbotapi.Message) {
	inv := h.ensureLoaded(ctx, message.Chat.ID)
	if inv == nil {
		return
	}

	xlsxBytes, err := excel.BuildSnapshot(h.cfg.FormulaWS, inv.Result().Rows)
	if err != nil {
		log.Printf("[inventory] snapshot build failed: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Could not build the Excel snapshot.")
		return
	}
	h.sendDocument(message.Chat.ID, constants.SnapshotFilename, xlsxBytes, "📦 Inventory snapshot")
}

func describeLoadError(err error) string {
	var schemaErr *entity.SchemaError
	if errors.As(err, &schemaErr) {
		return fmt.Sprintf("❌ %s sheet must have headers: %s (%s optional). Found: %s",
			schemaErr.Worksheet,
			strings.Join(schemaErr.Required, ", "),
			constants.ColumnUOM,
			strings.Join(schemaErr.Found, ", "))
	}
	var notFound *entity.TableNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("❌ Could not open worksheet %q: %v", notFound.Worksheet, notFound.Err)
	}
	return fmt.Sprintf("❌ Could not load from Google Sheets: %v", err)
}

func extractCommand(message *tgbotapi.Message) (string, string) {
	if message.IsCommand() {
		return strings.ToLower(message.Command()), strings.TrimSpace(message.CommandArguments())
	}
	text := strings.TrimSpace(message.Text)
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	parts := strings.SplitN(strings.TrimPrefix(text, "/"), " ", 2)
	cmd := strings.ToLower(strings.TrimSpace(parts[0]))
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	args := ""
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}
	return cmd, args
}
