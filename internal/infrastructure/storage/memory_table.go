package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/shotcraft/inventory-bot/internal/domain/entity"
	"github.com/shotcraft/inventory-bot/internal/domain/repository"
)

type memoryTableStore struct {
	mu     sync.RWMutex
	tables map[string][][]string // key: worksheet name
}

// NewMemoryTableStore creates an in-memory table store. Used by tests and
// for dry runs without a spreadsheet.
func NewMemoryTableStore() repository.TableStore {
	return &memoryTableStore{
		tables: make(map[string][][]string),
	}
}

// Seed replaces the contents of a worksheet without going through
// OverwriteTable semantics.
func Seed(store repository.TableStore, name string, rows [][]string) {
	m, ok := store.(*memoryTableStore)
	if !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[name] = copyGrid(rows)
}

func (m *memoryTableStore) ReadTable(ctx context.Context, name string) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, exists := m.tables[name]
	if !exists {
		return nil, &entity.TableNotFoundError{Worksheet: name, Err: fmt.Errorf("no such table")}
	}
	return copyGrid(rows), nil
}

func (m *memoryTableStore) OverwriteTable(ctx context.Context, name string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tables[name] = copyGrid(rows)
	return nil
}

func copyGrid(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		copy(cells, row)
		out[i] = cells
	}
	return out
}
