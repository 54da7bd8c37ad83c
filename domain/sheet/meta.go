package sheet

import (
	"strconv"
	"strings"
	"time"
)

// Metadata labels live near the top of the sheet; scanning the whole grid
// would risk matching stray text in the data block.
const metaScanLimit = 100

// ExtractMeta scans the first metaScanLimit rows for "Month"/"Year" label
// cells and reads their values from the same row.
//
// The month value is the first non-empty cell right of the label, taken
// as-is: sheets carry arbitrary text there and it is stored without
// validation. The year value is the first cell right of the label whose
// trimmed text parses as a base-10 integer. The first occurrence of each
// label wins; later occurrences never overwrite. Absent labels fall back to
// "Unknown" and the calendar year of now.
func ExtractMeta(g Grid, now time.Time) Meta {
	meta := Meta{Month: "Unknown", Year: now.Year()}

	limit := len(g)
	if limit > metaScanLimit {
		limit = metaScanLimit
	}

	monthFound := false
	yearFound := false
	for r := 0; r < limit; r++ {
		row := g[r]
		for c, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "month", "month:":
				if monthFound {
					continue
				}
				for j := c + 1; j < len(row); j++ {
					if v := strings.TrimSpace(row[j]); v != "" {
						meta.Month = v
						monthFound = true
						break
					}
				}
			case "year", "year:":
				if yearFound {
					continue
				}
				for j := c + 1; j < len(row); j++ {
					if y, err := strconv.Atoi(strings.TrimSpace(row[j])); err == nil {
						meta.Year = y
						yearFound = true
						break
					}
				}
			}
		}
		if monthFound && yearFound {
			break
		}
	}

	return meta
}
