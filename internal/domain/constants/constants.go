package constants

// Worksheet constants
const (
	// DefaultFormulaWorksheet is the worksheet holding per-case usage.
	DefaultFormulaWorksheet = "FORMULA"

	// DefaultInventoryWorksheet is the worksheet holding on-hand stock.
	DefaultInventoryWorksheet = "INVENTORY"
)

// Column headers required in the FORMULA worksheet. UOM is optional.
const (
	ColumnComponent = "Component"
	ColumnPerCase   = "Per_Case"
	ColumnUOM       = "UOM"
	ColumnOnHand    = "On_Hand"
)

// Snapshot export constants
const (
	// SnapshotFilename is the name of the downloadable xlsx snapshot.
	SnapshotFilename = "Shotcraft_Inventory_Snapshot.xlsx"

	// SnapshotMIMEType is the standard xlsx MIME type.
	SnapshotMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
