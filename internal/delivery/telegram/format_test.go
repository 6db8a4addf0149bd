package telegram

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shotcraft/inventory-bot/internal/domain/entity"
	"github.com/shotcraft/inventory-bot/internal/usecase"
)

func TestRenderResult_NoShortages(t *testing.T) {
	result := usecase.Compute(
		[]entity.Component{{Name: "Vodka", PerCase: 2, UOM: "L"}},
		[]entity.OnHand{{Component: "Vodka", Quantity: 10}},
		3,
	)

	text := renderResult(result, 3)
	if !strings.Contains(text, "Vodka") {
		t.Errorf("rendered result should list components:\n%s", text)
	}
	if !strings.Contains(text, "No shortages detected") {
		t.Errorf("expected the no-shortages notice:\n%s", text)
	}
	if !strings.Contains(text, "<b>5</b>") {
		t.Errorf("expected max sellable 5 in the metrics:\n%s", text)
	}
}

func TestRenderResult_WithShortages(t *testing.T) {
	result := usecase.Compute(
		[]entity.Component{{Name: "Vodka", PerCase: 2}},
		[]entity.OnHand{{Component: "Vodka", Quantity: 10}},
		6,
	)

	text := renderResult(result, 6)
	if !strings.Contains(text, "Shortages for this order") {
		t.Errorf("expected the shortage warning:\n%s", text)
	}
	if !strings.Contains(text, "-2") {
		t.Errorf("expected the negative remaining value:\n%s", text)
	}
}

func TestRenderStock_MarksUnsavedEdits(t *testing.T) {
	components := []entity.Component{{Name: "Caps", PerCase: 12, UOM: "pcs"}}
	onhand := []entity.OnHand{{Component: "Caps", Quantity: 400}}

	clean := renderStock(components, onhand, false)
	if strings.Contains(clean, "Unsaved edits") {
		t.Errorf("clean session should not warn about edits:\n%s", clean)
	}

	dirty := renderStock(components, onhand, true)
	if !strings.Contains(dirty, "Unsaved edits") {
		t.Errorf("dirty session should warn about edits:\n%s", dirty)
	}
}

func TestMonospaceTable_EscapesHTML(t *testing.T) {
	out := monospaceTable([][]string{{"<b>Name</b>"}})
	if strings.Contains(out, "<b>Name</b>") {
		t.Errorf("cell content must be escaped: %s", out)
	}
	if !strings.HasPrefix(out, "<pre>") || !strings.HasSuffix(out, "</pre>") {
		t.Errorf("table must be wrapped in <pre>: %s", out)
	}
}

func TestExtractCommand(t *testing.T) {
	cases := []struct {
		text     string
		wantCmd  string
		wantArgs string
	}{
		{"/order 5", "order", "5"},
		{"/set Blue Agave Syrup 3.5", "set", "Blue Agave Syrup 3.5"},
		{"/sync", "sync", ""},
		{"/sync@shotcraft_bot", "sync", ""},
		{"hello", "", ""},
	}
	for _, c := range cases {
		cmd, args := extractCommand(&tgbotapi.Message{Text: c.text})
		if cmd != c.wantCmd || args != c.wantArgs {
			t.Errorf("extractCommand(%q) = %q, %q; want %q, %q", c.text, cmd, args, c.wantCmd, c.wantArgs)
		}
	}
}
