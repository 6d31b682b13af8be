package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumns is a configuration error: the spreadsheet has no
// recognizable email or phone column and the load must be abandoned with
// the previous roster left in place.
var ErrMissingColumns = errors.New("spreadsheet must contain email and phone columns")

// ParseFile reads the roster spreadsheet. Columns are located by header
// name: the first column containing "name", "email", and "phone" or
// "mobile" respectively, case-insensitive. The name column is optional.
func ParseFile(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read roster sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	nameCol, emailCol, phoneCol := -1, -1, -1
	for i, header := range rows[0] {
		h := strings.ToLower(header)
		if nameCol < 0 && strings.Contains(h, "name") {
			nameCol = i
		}
		if emailCol < 0 && strings.Contains(h, "email") {
			emailCol = i
		}
		if phoneCol < 0 && (strings.Contains(h, "phone") || strings.Contains(h, "mobile")) {
			phoneCol = i
		}
	}
	if emailCol < 0 || phoneCol < 0 {
		return nil, ErrMissingColumns
	}

	out := make([]Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		out = append(out, Row{
			Name:  cell(cells, nameCol),
			Email: cell(cells, emailCol),
			Phone: cell(cells, phoneCol),
		})
	}
	return out, nil
}

// WriteFile rewrites the roster spreadsheet from the given entries, with a
// name/email/phone header row. Used when an admin removes a student so the
// file on disk stays the source of truth.
func WriteFile(path string, entries []Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "email", "phone"}); err != nil {
		return err
	}
	for i, e := range entries {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cellRef, &[]interface{}{e.Name, e.Email, e.Secret}); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
