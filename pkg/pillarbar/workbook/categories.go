// Package workbook binds category records and state snapshots from files,
// standing in for the host's data binder.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mkondo9/pillarbar-go/pkg/pillarbar"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
)

// Category sheet columns, in order. The header row is mandatory and
// matched case-insensitively; unknown columns are ignored.
const (
	colName     = "name"
	colValue    = "value"
	colKey      = "key"
	colPillar   = "pillar"
	colBarColor = "bar_color"
	colFont     = "font_color"
	colPosition = "position"
	colChildren = "children"
	colFormat   = "format"
)

// BindCategories reads category records from a worksheet. Each data row
// becomes one record; the identity is synthesized from the sheet name and
// row number, except for the sentinel "other" key which stays untargetable.
// Rows without a display name are skipped.
func BindCategories(f *excelize.File, sheetName string) ([]models.CategoryRecord, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, pillarbar.NewLoadError(sheetName, "categories", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := headerIndex(rows[0])
	if _, ok := cols[colName]; !ok {
		return nil, pillarbar.NewLoadError(sheetName, "categories",
			fmt.Errorf("%w: missing %q header", pillarbar.ErrInvalidFormat, colName))
	}

	var result []models.CategoryRecord
	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, after header
		name := cell(row, cols, colName)
		if name == "" {
			continue
		}

		rec := models.CategoryRecord{
			DisplayName:  name,
			CategoryKey:  cell(row, cols, colKey),
			NumberFormat: cell(row, cols, colFormat),
			BarColor:     cell(row, cols, colBarColor),
			FontColor:    cell(row, cols, colFont),
		}
		if rec.CategoryKey == "" {
			rec.CategoryKey = name
		}
		if v, ok := parseNumber(cell(row, cols, colValue)); ok {
			rec.Value = v
			rec.FormattedValue = cell(row, cols, colValue)
			rec.OriginalFormattedValue = rec.FormattedValue
		}
		if b, ok := parseBool(cell(row, cols, colPillar)); ok {
			rec.IsPillar = &b
		}
		if pos := cell(row, cols, colPosition); pos != "" {
			rec.LabelPosition = &pos
		}
		if n, ok := parseNumber(cell(row, cols, colChildren)); ok {
			rec.ChildCount = int(n)
		}
		if !rec.IsOther() {
			rec.Identity = fmt.Sprintf("%s!%d", sheetName, rowNum)
		}

		result = append(result, rec)
	}

	return result, nil
}

// headerIndex maps lowercased header names to column positions.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			cols[h] = i
		}
	}
	return cols
}

// cell returns the trimmed value of a named column, or "" when the column
// is absent or the row is short.
func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber attempts to parse a cell as a float.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseBool accepts the spreadsheet spellings of a boolean.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	}
	return false, false
}
