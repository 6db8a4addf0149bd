package excel

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/shotcraft/inventory-bot/internal/domain/constants"
	"github.com/shotcraft/inventory-bot/internal/domain/entity"
)

// BuildSnapshot serializes already-computed display rows into an xlsx
// document with two sheets: the per-case formula under the FORMULA
// worksheet's name and the full display table under "INVENTORY". No new
// computation happens here.
func BuildSnapshot(formulaSheet string, rows []entity.InventoryRow) ([]byte, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), formulaSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(constants.DefaultInventoryWorksheet); err != nil {
		return nil, err
	}

	formulaHeaders := []string{constants.ColumnComponent, constants.ColumnUOM, constants.ColumnPerCase}
	if err := writeSheet(f, formulaSheet, formulaHeaders, rows, formulaValues); err != nil {
		return nil, err
	}

	displayHeaders := []string{
		constants.ColumnComponent, constants.ColumnUOM, constants.ColumnOnHand,
		constants.ColumnPerCase, "Required", "Remaining",
	}
	if err := writeSheet(f, constants.DefaultInventoryWorksheet, displayHeaders, rows, displayValues); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows []entity.InventoryRow, values func(entity.InventoryRow) []interface{}) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		rowIdx := i + 2
		for c, v := range values(row) {
			cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func formulaValues(row entity.InventoryRow) []interface{} {
	return []interface{}{row.Component, row.UOM, row.PerCase}
}

func displayValues(row entity.InventoryRow) []interface{} {
	return []interface{}{row.Component, row.UOM, row.OnHand, row.PerCase, row.Required, row.Remaining}
}
