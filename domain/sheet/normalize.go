package sheet

import (
	"strconv"
	"strings"
)

// NormalizeRows walks the data rows below the header block and extracts one
// ParsedRow per student.
//
// Data starts two rows below the header (the header and sub-header rows are
// skipped). Rows too short to cover every consumed column are malformed and
// skipped, as are rows whose name or roll cell is empty after trimming
// (blank and summary rows). Name and roll are uppercased; query lookups rely
// on that. Unparseable attendance or amount cells default to zero rather
// than rejecting the row - a student with zero attendance and zero amount is
// still a valid record.
func NormalizeRows(g Grid, h Header) []ParsedRow {
	maxCol := h.NameCol
	for _, c := range []int{h.RollCol, h.PresentCol, h.AmountCol} {
		if c > maxCol {
			maxCol = c
		}
	}

	var rows []ParsedRow
	for r := h.Row + 2; r < len(g); r++ {
		row := g[r]
		if len(row) <= maxCol {
			continue
		}

		name := strings.TrimSpace(row[h.NameCol])
		roll := strings.TrimSpace(row[h.RollCol])
		if name == "" || roll == "" {
			continue
		}

		parsed := ParsedRow{
			RollNo:      strings.ToUpper(roll),
			StudentName: strings.ToUpper(name),
		}
		if days, err := strconv.Atoi(strings.TrimSpace(row[h.PresentCol])); err == nil {
			parsed.DaysPresent = days
		}
		if amount, err := strconv.ParseFloat(strings.TrimSpace(row[h.AmountCol]), 64); err == nil {
			parsed.TotalAmount = amount
		}

		rows = append(rows, parsed)
	}

	return rows
}
