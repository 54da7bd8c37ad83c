// Package sheet holds the spreadsheet normalization pipeline: pure functions
// over a cell grid, independent of file format and storage, so every branch
// can be tested against synthetic grids.
package sheet

// Grid is a rectangular view of a spreadsheet: rows of cell text. Missing
// cells are empty strings, never absent.
type Grid [][]string

// Meta holds the sheet-level month/year labels found near the top of a grid.
type Meta struct {
	Month string
	Year  int
}

// Header holds the resolved column indices for the student data block.
// Row is the index of the header row; the sub-header row sits directly
// below it.
type Header struct {
	Row        int
	NameCol    int
	RollCol    int
	PresentCol int
	AbsentCol  int
	AmountCol  int
}

// ParsedRow is the normalized per-student value set extracted from one data
// row. It is pipeline-internal and never persisted as-is.
type ParsedRow struct {
	RollNo      string
	StudentName string
	DaysPresent int
	TotalAmount float64
}
