package sheet

import (
	"strings"

	"messtrack/domain/core"
)

// LocateHeader finds the student header row and resolves the data column
// indices. Cells are compared case-insensitively after trimming.
//
// Two historical header layouts are recognized:
//   - legacy:  a row containing both "student name" and "roll no."
//   - current: a row containing both "name" and "enrollment no"
//
// The first row satisfying either layout is the header; the row directly
// below it is the sub-header holding the per-day columns, where "p" marks
// days present and "a" days absent.
//
// Column search policy: name, roll, present and absent are resolved by exact
// match within the header and sub-header rows. The total-amount column is
// resolved by scanning the entire grid for the first cell whose text contains
// "total amount" - older sheets label the cell outside the header block, and
// some append a currency suffix, so exact header-row matching misses them.
func LocateHeader(g Grid) (Header, error) {
	headerRow := -1
	for r, row := range g {
		var studentName, rollNo, name, enrollment bool
		for _, cell := range row {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "student name":
				studentName = true
			case "roll no.":
				rollNo = true
			case "name":
				name = true
			case "enrollment no":
				enrollment = true
			}
		}
		if (studentName && rollNo) || (name && enrollment) {
			headerRow = r
			break
		}
	}
	if headerRow < 0 {
		return Header{}, core.ErrHeaderNotFound
	}

	h := Header{
		Row:        headerRow,
		NameCol:    -1,
		RollCol:    -1,
		PresentCol: -1,
		AbsentCol:  -1,
		AmountCol:  -1,
	}

	for c, cell := range g[headerRow] {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "student name", "name":
			if h.NameCol < 0 {
				h.NameCol = c
			}
		case "roll no.", "enrollment no":
			if h.RollCol < 0 {
				h.RollCol = c
			}
		}
	}

	if headerRow+1 < len(g) {
		for c, cell := range g[headerRow+1] {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "p":
				if h.PresentCol < 0 {
					h.PresentCol = c
				}
			case "a":
				if h.AbsentCol < 0 {
					h.AbsentCol = c
				}
			}
		}
	}

amount:
	for _, row := range g {
		for c, cell := range row {
			if strings.Contains(strings.ToLower(strings.TrimSpace(cell)), "total amount") {
				h.AmountCol = c
				break amount
			}
		}
	}

	switch {
	case h.NameCol < 0:
		return Header{}, &core.MissingColumnError{Column: "name"}
	case h.RollCol < 0:
		return Header{}, &core.MissingColumnError{Column: "roll"}
	case h.PresentCol < 0:
		return Header{}, &core.MissingColumnError{Column: "present"}
	case h.AbsentCol < 0:
		return Header{}, &core.MissingColumnError{Column: "absent"}
	case h.AmountCol < 0:
		return Header{}, &core.MissingColumnError{Column: "total-amount"}
	}

	return h, nil
}
