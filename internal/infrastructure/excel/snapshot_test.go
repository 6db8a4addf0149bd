package excel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/shotcraft/inventory-bot/internal/domain/entity"
)

func TestBuildSnapshot(t *testing.T) {
	rows := []entity.InventoryRow{
		{Component: "Caps", UOM: "pcs", OnHand: 30, PerCase: 5, Required: 15, Remaining: 15},
		{Component: "Vodka", UOM: "L", OnHand: 10, PerCase: 2, Required: 6, Remaining: 4},
	}

	data, err := BuildSnapshot("FORMULA", rows)
	if err != nil {
		t.Fatalf("BuildSnapshot returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("snapshot is not a readable xlsx: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "FORMULA" || sheets[1] != "INVENTORY" {
		t.Fatalf("expected sheets [FORMULA INVENTORY], got %v", sheets)
	}

	// Formula sheet carries only the per-case definition.
	got, _ := f.GetCellValue("FORMULA", "A1")
	if got != "Component" {
		t.Errorf("FORMULA!A1 = %q", got)
	}
	got, _ = f.GetCellValue("FORMULA", "C2")
	if got != "5" {
		t.Errorf("FORMULA!C2 = %q, want 5", got)
	}
	if got, _ = f.GetCellValue("FORMULA", "D1"); got != "" {
		t.Errorf("FORMULA sheet must not carry computed columns, D1 = %q", got)
	}

	// Inventory sheet carries the full display rows.
	got, _ = f.GetCellValue("INVENTORY", "F1")
	if got != "Remaining" {
		t.Errorf("INVENTORY!F1 = %q", got)
	}
	got, _ = f.GetCellValue("INVENTORY", "A3")
	if got != "Vodka" {
		t.Errorf("INVENTORY!A3 = %q, want Vodka", got)
	}
	got, _ = f.GetCellValue("INVENTORY", "F3")
	if got != "4" {
		t.Errorf("INVENTORY!F3 = %q, want 4", got)
	}
}

func TestBuildSnapshot_CustomFormulaSheetName(t *testing.T) {
	data, err := BuildSnapshot("RECIPE", nil)
	if err != nil {
		t.Fatalf("BuildSnapshot returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("snapshot is not a readable xlsx: %v", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex("RECIPE"); idx < 0 {
		t.Errorf("formula sheet should be named after the worksheet, got %v", f.GetSheetList())
	}
}
