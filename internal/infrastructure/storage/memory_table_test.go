package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/shotcraft/inventory-bot/internal/domain/entity"
)

func TestMemoryTableStore_MissingTable(t *testing.T) {
	store := NewMemoryTableStore()

	_, err := store.ReadTable(context.Background(), "FORMULA")
	var notFound *entity.TableNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TableNotFoundError, got %v", err)
	}
	if notFound.Worksheet != "FORMULA" {
		t.Errorf("error should name the worksheet, got %q", notFound.Worksheet)
	}
}

func TestMemoryTableStore_OverwriteThenRead(t *testing.T) {
	store := NewMemoryTableStore()
	rows := [][]string{
		{"Component", "On_Hand"},
		{"Vodka", "10"},
	}

	if err := store.OverwriteTable(context.Background(), "INVENTORY", rows); err != nil {
		t.Fatalf("OverwriteTable returned error: %v", err)
	}

	got, err := store.ReadTable(context.Background(), "INVENTORY")
	if err != nil {
		t.Fatalf("ReadTable returned error: %v", err)
	}
	if len(got) != 2 || got[1][0] != "Vodka" {
		t.Fatalf("unexpected grid: %v", got)
	}

	// The returned grid is a copy; mutating it must not touch the store.
	got[1][1] = "999"
	again, _ := store.ReadTable(context.Background(), "INVENTORY")
	if again[1][1] != "10" {
		t.Errorf("store contents leaked through the returned grid: %v", again)
	}
}

func TestMemoryTableStore_OverwriteReplacesEverything(t *testing.T) {
	store := NewMemoryTableStore()
	Seed(store, "INVENTORY", [][]string{
		{"Component", "On_Hand"},
		{"Vodka", "10"},
		{"Caps", "400"},
	})

	if err := store.OverwriteTable(context.Background(), "INVENTORY", [][]string{
		{"Component", "On_Hand"},
		{"Vodka", "3"},
	}); err != nil {
		t.Fatalf("OverwriteTable returned error: %v", err)
	}

	got, _ := store.ReadTable(context.Background(), "INVENTORY")
	if len(got) != 2 {
		t.Errorf("overwrite must drop rows beyond the new grid, got %v", got)
	}
}
