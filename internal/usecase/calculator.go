package usecase

import (
	"math"
	"sort"

	"github.com/shotcraft/inventory-bot/internal/domain/entity"
)

// Compute joins on-hand stock onto the formula components and evaluates a
// requested order size. Pure function: no I/O, deterministic.
//
// Components with no matching on-hand row default to 0. MaxSellable is the
// floor of the smallest on_hand/per_case ratio over components with
// per_case > 0; when no component consumes anything it is 0, a deliberate
// conservative default rather than "unlimited". A row is a shortage only
// when remaining is strictly negative.
func Compute(components []entity.Component, onhand []entity.OnHand, cases float64) entity.ComputeResult {
	stock := make(map[string]float64, len(onhand))
	for _, oh := range onhand {
		stock[oh.Component] = oh.Quantity
	}

	rows := make([]entity.InventoryRow, 0, len(components))
	for _, c := range components {
		required := c.PerCase * cases
		qty := stock[c.Name]
		rows = append(rows, entity.InventoryRow{
			Component: c.Name,
			UOM:       c.UOM,
			OnHand:    qty,
			PerCase:   c.PerCase,
			Required:  required,
			Remaining: qty - required,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Component < rows[j].Component
	})

	maxSellable := 0
	haveRatio := false
	minRatio := 0.0
	for _, row := range rows {
		if row.PerCase <= 0 {
			continue
		}
		ratio := row.OnHand / row.PerCase
		if !haveRatio || ratio < minRatio {
			minRatio = ratio
			haveRatio = true
		}
	}
	if haveRatio {
		maxSellable = int(math.Floor(minRatio))
	}

	var shortages []entity.InventoryRow
	for _, row := range rows {
		if row.Remaining < 0 {
			shortages = append(shortages, row)
		}
	}

	return entity.ComputeResult{
		Rows:        rows,
		MaxSellable: maxSellable,
		Shortages:   shortages,
	}
}
