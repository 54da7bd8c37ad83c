// Package excel reads spreadsheet files into cell grids. Two formats are
// accepted: the zip-based .xlsx format (excelize) and the legacy binary .xls
// format (xlsReader). Only the first sheet of a workbook is read.
package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"messtrack/domain/core"
	"messtrack/domain/sheet"
)

// GridReader loads spreadsheet files into rectangular cell grids.
type GridReader struct{}

// NewGridReader creates a new grid reader.
func NewGridReader() *GridReader {
	return &GridReader{}
}

// ReadGrid dispatches on the file extension. Anything other than .xls or
// .xlsx is rejected before the file is touched.
func (r *GridReader) ReadGrid(path string) (sheet.Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return r.readXLSX(path)
	case ".xls":
		return r.readXLS(path)
	default:
		return nil, fmt.Errorf("%w: %q (only .xls and .xlsx are accepted)", core.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func (r *GridReader) readXLSX(path string) (sheet.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewFormatError(fmt.Sprintf("open xlsx: %v", err))
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, core.NewFormatError("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, core.NewFormatError(fmt.Sprintf("read sheet %q: %v", sheetName, err))
	}

	return toGrid(rows)
}

func (r *GridReader) readXLS(path string) (sheet.Grid, error) {
	book, err := xls.OpenFile(path)
	if err != nil {
		return nil, core.NewFormatError(fmt.Sprintf("open xls: %v", err))
	}

	ws, err := book.GetSheet(0)
	if err != nil || ws == nil {
		return nil, core.NewFormatError("workbook has no sheets")
	}

	var rows [][]string
	for _, row := range ws.GetRows() {
		var cells []string
		for _, col := range row.GetCols() {
			cells = append(cells, col.GetString())
		}
		rows = append(rows, cells)
	}

	return toGrid(rows)
}

// toGrid validates the row set and pads ragged rows so that missing cells
// read as empty strings rather than being absent.
func toGrid(rows [][]string) (sheet.Grid, error) {
	if len(rows) < 2 {
		return nil, core.NewFormatError("sheet has fewer than 2 rows")
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make(sheet.Grid, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		grid[i] = cells
	}

	return grid, nil
}
