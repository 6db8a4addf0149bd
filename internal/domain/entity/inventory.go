package entity

// Component is one FORMULA row: a material consumed per produced case.
type Component struct {
	Name    string
	PerCase float64
	UOM     string
}

// OnHand is one INVENTORY row: current stock for a component.
type OnHand struct {
	Component string
	Quantity  float64
}

// InventoryRow is the joined, computed view of one component for a given
// order size. Never persisted; recomputed on every change.
type InventoryRow struct {
	Component string
	UOM       string
	OnHand    float64
	PerCase   float64
	Required  float64
	Remaining float64
}

// ComputeResult holds everything the operator surface renders for one
// order-size evaluation.
type ComputeResult struct {
	Rows        []InventoryRow
	MaxSellable int
	Shortages   []InventoryRow
}
