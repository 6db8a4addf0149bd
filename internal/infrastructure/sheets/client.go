package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/shotcraft/inventory-bot/internal/domain/entity"
)

// Client is the Google Sheets implementation of repository.TableStore.
// One client per spreadsheet; worksheets are addressed by name.
type Client struct {
	svc     *sheetsapi.Service
	sheetID string
}

// LoadCredentials resolves the service-account JSON from a file path or an
// inline value and restores real newlines in a private key pasted with \n
// escapes.
func LoadCredentials(file, inline string) ([]byte, error) {
	var data []byte
	switch {
	case strings.TrimSpace(file) != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		data = b
	case strings.TrimSpace(inline) != "":
		data = []byte(inline)
	default:
		return nil, entity.ErrNoCredentials
	}
	return normalizePrivateKey(data), nil
}

func normalizePrivateKey(data []byte) []byte {
	var sa map[string]any
	if err := json.Unmarshal(data, &sa); err != nil {
		return data
	}
	pk, ok := sa["private_key"].(string)
	if !ok || !strings.Contains(pk, `\n`) {
		return data
	}
	sa["private_key"] = strings.ReplaceAll(pk, `\n`, "\n")
	fixed, err := json.Marshal(sa)
	if err != nil {
		return data
	}
	return fixed
}

// NewClient authenticates with the service account and binds to one
// spreadsheet.
func NewClient(ctx context.Context, credentialsJSON []byte, sheetID string) (*Client, error) {
	if strings.TrimSpace(sheetID) == "" {
		return nil, entity.ErrNoSheetID
	}
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON,
		sheetsapi.SpreadsheetsScope, sheetsapi.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}
	svc, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, sheetID: sheetID}, nil
}

// Worksheets lists the worksheet titles of the bound spreadsheet. Used as
// a connectivity and access probe.
func (c *Client) Worksheets(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Get(c.sheetID).
		Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", c.sheetID, err)
	}
	titles := make([]string, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

// ReadTable fetches the full used grid of one worksheet as text.
func (c *Client) ReadTable(ctx context.Context, name string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.sheetID, name).
		ValueRenderOption("FORMATTED_VALUE").Context(ctx).Do()
	if err != nil {
		if isMissingRange(err) {
			return nil, &entity.TableNotFoundError{Worksheet: name, Err: err}
		}
		return nil, fmt.Errorf("read worksheet %q: %w", name, err)
	}

	grid := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// OverwriteTable clears the worksheet and writes the grid from A1.
// Unconditional overwrite, not transactional: an interrupted write can
// leave the worksheet truncated. Callers surface the failure and keep
// their in-memory state.
func (c *Client) OverwriteTable(ctx context.Context, name string, rows [][]string) error {
	_, err := c.svc.Spreadsheets.Values.Clear(c.sheetID, name, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		if isMissingRange(err) {
			return &entity.TableNotFoundError{Worksheet: name, Err: err}
		}
		return fmt.Errorf("clear worksheet %q: %w", name, err)
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	_, err = c.svc.Spreadsheets.Values.Update(c.sheetID, name+"!A1", &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write worksheet %q: %w", name, err)
	}
	return nil
}

// The Sheets API reports a nonexistent worksheet as an unparseable range.
func isMissingRange(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == http.StatusBadRequest &&
		strings.Contains(gerr.Message, "Unable to parse range")
}
