package telegram

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/shotcraft/inventory-bot/internal/domain/entity"
)

// renderStock is the editable-grid view: current on-hand next to per-case
// usage, one line per component.
func renderStock(components []entity.Component, onhand []entity.OnHand, dirty bool) string {
	stock := make(map[string]float64, len(onhand))
	for _, oh := range onhand {
		stock[oh.Component] = oh.Quantity
	}

	table := [][]string{{"Component", "UOM", "On_Hand", "Per_Case"}}
	for _, c := range components {
		table = append(table, []string{
			c.Name, c.UOM, formatQty(stock[c.Name]), formatQty(c.PerCase),
		})
	}

	var b strings.Builder
	b.WriteString("📦 Per-case usage and on-hand stock\n")
	b.WriteString(monospaceTable(table))
	if dirty {
		b.WriteString("\n✏️ Unsaved edits in memory — /sync to write back.")
	}
	b.WriteString("\n/set <component> <qty> to edit, /order <cases> to evaluate.")
	return b.String()
}

// renderResult shows the metrics, the full display table and the shortage
// panel for the evaluated order size.
func renderResult(result entity.ComputeResult, cases float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Max sellable cases from current stock: <b>%d</b>\n", result.MaxSellable)
	fmt.Fprintf(&b, "Order size (cases): <b>%s</b>\n", formatQty(cases))

	table := [][]string{{"Component", "UOM", "On_Hand", "Per_Case", "Required", "Remaining"}}
	for _, row := range result.Rows {
		table = append(table, []string{
			row.Component, row.UOM,
			formatQty(row.OnHand), formatQty(row.PerCase),
			formatQty(row.Required), formatQty(row.Remaining),
		})
	}
	b.WriteString(monospaceTable(table))

	if len(result.Shortages) == 0 {
		b.WriteString("\nℹ️ No shortages detected for this order.")
		return b.String()
	}

	b.WriteString("\n⚠️ Shortages for this order:\n")
	short := [][]string{{"Component", "Remaining"}}
	for _, row := range result.Shortages {
		short = append(short, []string{row.Component, formatQty(row.Remaining)})
	}
	b.WriteString(monospaceTable(short))
	return b.String()
}

// monospaceTable renders rows as an aligned <pre> block.
func monospaceTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString("<pre>")
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(html.EscapeString(cell))
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("</pre>")
	return b.String()
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
