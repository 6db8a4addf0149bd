package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/shotcraft/inventory-bot/internal/domain/constants"
	"github.com/shotcraft/inventory-bot/internal/domain/entity"
	"github.com/shotcraft/inventory-bot/internal/domain/repository"
)

// InventoryUseCase is the session-scoped application context: the loaded
// formula, the editable on-hand stock, and the requested order size.
// Constructed once per session; a reload replaces the working set and
// discards pending edits.
type InventoryUseCase interface {
	// Load fetches both worksheets fresh from the store, validates the
	// FORMULA schema and rebuilds the working set. Pending edits are lost.
	Load(ctx context.Context) error
	Loaded() bool

	Components() []entity.Component
	OnHand() []entity.OnHand

	// SetOnHand coerces raw text to a number (invalid text becomes 0) and
	// records it as the in-memory stock for the named component.
	SetOnHand(component, raw string) (float64, error)
	SetCases(cases float64)
	Cases() float64

	// Result evaluates the current order size against the working set.
	Result() entity.ComputeResult

	// Sync overwrites the INVENTORY worksheet with the edited on-hand
	// values. On failure the in-memory edits are kept; no retry.
	Sync(ctx context.Context) error

	Dirty() bool
	SessionID() string
}

type inventoryUseCase struct {
	store       repository.TableStore
	formulaWS   string
	inventoryWS string

	mu         sync.RWMutex
	loaded     bool
	sessionID  string
	components []entity.Component
	onhand     []entity.OnHand
	cases      float64
	dirty      bool
}

// NewInventoryUseCase creates the session context over a table store.
func NewInventoryUseCase(store repository.TableStore, formulaWS, inventoryWS string) InventoryUseCase {
	return &inventoryUseCase{
		store:       store,
		formulaWS:   formulaWS,
		inventoryWS: inventoryWS,
	}
}

func (u *inventoryUseCase) Load(ctx context.Context) error {
	formulaGrid, err := u.store.ReadTable(ctx, u.formulaWS)
	if err != nil {
		return err
	}

	components, coerced, err := parseFormula(u.formulaWS, formulaGrid)
	if err != nil {
		return err
	}

	stock, invCoerced, err := u.readOnHand(ctx, components)
	if err != nil {
		return err
	}
	coerced += invCoerced

	// Materialize one on-hand row per component (left join, default 0).
	onhand := make([]entity.OnHand, 0, len(components))
	for _, c := range components {
		onhand = append(onhand, entity.OnHand{Component: c.Name, Quantity: stock[c.Name]})
	}

	u.mu.Lock()
	u.loaded = true
	u.sessionID = uuid.New().String()
	u.components = components
	u.onhand = onhand
	u.dirty = false
	u.mu.Unlock()

	if coerced > 0 {
		log.Printf("[inventory] load %s: %d unparseable numeric cell(s) defaulted to 0", u.sessionID, coerced)
	}
	log.Printf("[inventory] load %s: %d component(s) from %q, on-hand from %q", u.sessionID, len(components), u.formulaWS, u.inventoryWS)
	return nil
}

// readOnHand reads the INVENTORY worksheet into a name-keyed stock map.
// A missing worksheet or a worksheet without the required columns yields
// zero stock for every component: the deliberate first-time-setup default.
func (u *inventoryUseCase) readOnHand(ctx context.Context, components []entity.Component) (map[string]float64, int, error) {
	stock := make(map[string]float64, len(components))

	grid, err := u.store.ReadTable(ctx, u.inventoryWS)
	if err != nil {
		var notFound *entity.TableNotFoundError
		if errors.As(err, &notFound) {
			return stock, 0, nil
		}
		return nil, 0, err
	}
	if len(grid) == 0 {
		return stock, 0, nil
	}

	idx := headerIndex(grid[0])
	nameCol, haveName := idx[constants.ColumnComponent]
	qtyCol, haveQty := idx[constants.ColumnOnHand]
	if !haveName || !haveQty {
		return stock, 0, nil
	}

	coerced := 0
	for _, row := range grid[1:] {
		name := cellAt(row, nameCol)
		if name == "" {
			continue
		}
		qty, ok := numberOrDefault(cellAt(row, qtyCol), 0)
		if !ok {
			coerced++
		}
		stock[name] = qty
	}
	return stock, coerced, nil
}

func parseFormula(worksheet string, grid [][]string) ([]entity.Component, int, error) {
	if len(grid) == 0 {
		return nil, 0, &entity.SchemaError{
			Worksheet: worksheet,
			Required:  []string{constants.ColumnComponent, constants.ColumnPerCase},
		}
	}

	idx := headerIndex(grid[0])
	nameCol, haveName := idx[constants.ColumnComponent]
	perCaseCol, havePerCase := idx[constants.ColumnPerCase]
	if !haveName || !havePerCase {
		return nil, 0, &entity.SchemaError{
			Worksheet: worksheet,
			Required:  []string{constants.ColumnComponent, constants.ColumnPerCase},
			Found:     grid[0],
		}
	}
	uomCol, haveUOM := idx[constants.ColumnUOM]

	coerced := 0
	components := make([]entity.Component, 0, len(grid)-1)
	for _, row := range grid[1:] {
		name := cellAt(row, nameCol)
		if name == "" {
			continue
		}
		perCase, ok := numberOrDefault(cellAt(row, perCaseCol), 0)
		if !ok {
			coerced++
		}
		c := entity.Component{Name: name, PerCase: perCase}
		if haveUOM {
			c.UOM = cellAt(row, uomCol)
		}
		components = append(components, c)
	}
	return components, coerced, nil
}

func (u *inventoryUseCase) Loaded() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.loaded
}

func (u *inventoryUseCase) SessionID() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.sessionID
}

func (u *inventoryUseCase) Components() []entity.Component {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]entity.Component, len(u.components))
	copy(out, u.components)
	return out
}

func (u *inventoryUseCase) OnHand() []entity.OnHand {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]entity.OnHand, len(u.onhand))
	copy(out, u.onhand)
	return out
}

func (u *inventoryUseCase) SetOnHand(component, raw string) (float64, error) {
	qty, _ := numberOrDefault(raw, 0)

	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.onhand {
		if u.onhand[i].Component == component {
			u.onhand[i].Quantity = qty
			u.dirty = true
			return qty, nil
		}
	}
	return 0, fmt.Errorf("unknown component: %s", component)
}

func (u *inventoryUseCase) SetCases(cases float64) {
	if cases < 0 {
		cases = 0
	}
	u.mu.Lock()
	u.cases = cases
	u.mu.Unlock()
}

func (u *inventoryUseCase) Cases() float64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.cases
}

func (u *inventoryUseCase) Result() entity.ComputeResult {
	u.mu.RLock()
	components := u.components
	onhand := u.onhand
	cases := u.cases
	u.mu.RUnlock()
	return Compute(components, onhand, cases)
}

func (u *inventoryUseCase) Dirty() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.dirty
}

func (u *inventoryUseCase) Sync(ctx context.Context) error {
	u.mu.RLock()
	rows := make([][]string, 0, len(u.onhand)+1)
	rows = append(rows, []string{constants.ColumnComponent, constants.ColumnOnHand})
	for _, oh := range u.onhand {
		rows = append(rows, []string{oh.Component, formatNumber(oh.Quantity)})
	}
	u.mu.RUnlock()

	if err := u.store.OverwriteTable(ctx, u.inventoryWS, rows); err != nil {
		return &entity.SyncError{Worksheet: u.inventoryWS, Err: err}
	}

	u.mu.Lock()
	u.dirty = false
	u.mu.Unlock()
	return nil
}
