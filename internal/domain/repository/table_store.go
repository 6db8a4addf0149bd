package repository

import "context"

// TableStore is the remote spreadsheet-like store holding named tables of
// text cells.
type TableStore interface {
	// ReadTable returns every row of the named worksheet as a text grid.
	// The first row is the header. Returns *entity.TableNotFoundError when
	// the worksheet does not exist.
	ReadTable(ctx context.Context, name string) ([][]string, error)

	// OverwriteTable clears the named worksheet and writes the given grid
	// in its place. Unconditional overwrite: no version check, last write
	// wins. Not transactional; an interrupted write may leave the table
	// truncated.
	OverwriteTable(ctx context.Context, name string, rows [][]string) error
}
