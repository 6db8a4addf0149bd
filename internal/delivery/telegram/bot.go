package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shotcraft/inventory-bot/config"
	"github.com/shotcraft/inventory-bot/internal/domain/repository"
	"github.com/shotcraft/inventory-bot/internal/usecase"
)

// StoreFactory opens a table store for a spreadsheet ID. Returns an error
// when the credential is rejected or the spreadsheet is unreachable.
type StoreFactory func(ctx context.Context, sheetID string) (repository.TableStore, error)

// BotHandler is the operator surface: an editable on-hand view, an order
// size input and reload/sync/revert actions over one inventory session.
type BotHandler struct {
	bot      *tgbotapi.BotAPI
	cfg      *config.Config
	newStore StoreFactory

	mu  sync.RWMutex
	inv usecase.InventoryUseCase
}

// NewBotHandler creates the bot. inv may be nil when no sheet ID was
// resolvable at startup; the operator then supplies one with /usesheet.
func NewBotHandler(token string, cfg *config.Config, inv usecase.InventoryUseCase, newStore StoreFactory) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotHandler{
		bot:      bot,
		cfg:      cfg,
		newStore: newStore,
		inv:      inv,
	}, nil
}

func (h *BotHandler) session() usecase.InventoryUseCase {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.inv
}

// useSheet binds the session to a new spreadsheet ID supplied by the
// operator. The manual ID is kept for this session only.
func (h *BotHandler) useSheet(ctx context.Context, raw string) (usecase.InventoryUseCase, error) {
	sheetID := config.ExtractSheetID(raw)
	if sheetID == "" {
		return nil, fmt.Errorf("empty sheet ID")
	}

	store, err := h.newStore(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	inv := usecase.NewInventoryUseCase(store, h.cfg.FormulaWS, h.cfg.InventoryWS)

	h.mu.Lock()
	h.cfg.SheetID = sheetID
	h.inv = inv
	h.mu.Unlock()
	return inv, nil
}

func (h *BotHandler) getHelpMessage() string {
	return strings.Join([]string{
		"📦 Shotcraft — Live Inventory",
		"",
		"/stock — show components and editable on-hand stock",
		"/order <cases> — evaluate an order size against current stock",
		"/set <component> <qty> — edit on-hand stock in memory",
		"/sync — write edited on-hand values back to the sheet",
		"/revert — discard edits, reload current sheet values",
		"/reload — reload both worksheets from the sheet",
		"/snapshot — download an Excel snapshot",
		"/usesheet <id or URL> — switch to another Google Sheet",
		"",
		fmt.Sprintf("Sheet ID ends with: %s", h.cfg.SheetIDSuffix()),
		fmt.Sprintf("FORMULA_WS: %s | INVENTORY_WS: %s", h.cfg.FormulaWS, h.cfg.InventoryWS),
	}, "\n")
}
