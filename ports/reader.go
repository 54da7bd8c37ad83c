package ports

import "messtrack/domain/sheet"

// GridReader opens a spreadsheet file and yields its first sheet as a
// rectangular cell grid.
type GridReader interface {
	ReadGrid(path string) (sheet.Grid, error)
}
