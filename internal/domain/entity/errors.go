package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSheetID: no spreadsheet ID resolvable from flag, env or session.
var ErrNoSheetID = errors.New("no sheet ID configured")

// ErrNoCredentials: no service-account credential source configured.
var ErrNoCredentials = errors.New("no service account credentials configured")

// SchemaError: the FORMULA worksheet is missing a required column.
type SchemaError struct {
	Worksheet string
	Required  []string
	Found     []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("worksheet %q must have headers %s, found: %s",
		e.Worksheet, strings.Join(e.Required, ", "), strings.Join(e.Found, ", "))
}

// TableNotFoundError: the named worksheet does not exist in the spreadsheet.
type TableNotFoundError struct {
	Worksheet string
	Err       error
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found: %v", e.Worksheet, e.Err)
}

func (e *TableNotFoundError) Unwrap() error { return e.Err }

// SyncError: writeback to the remote store failed. In-memory edits are
// preserved by the caller; there is no automatic retry.
type SyncError struct {
	Worksheet string
	Err       error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync to worksheet %q failed: %v", e.Worksheet, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }
