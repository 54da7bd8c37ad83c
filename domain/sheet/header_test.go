package sheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messtrack/domain/core"
)

func TestLocateHeader_LegacyLayout(t *testing.T) {
	grid := Grid{
		{"Mess Attendance", "", "", "", ""},
		{"Student Name", "Roll No.", "", "", ""},
		{"", "", "P", "A", "Total Amount"},
	}

	h, err := LocateHeader(grid)
	require.NoError(t, err)

	assert.Equal(t, 1, h.Row)
	assert.Equal(t, 0, h.NameCol)
	assert.Equal(t, 1, h.RollCol)
	assert.Equal(t, 2, h.PresentCol)
	assert.Equal(t, 3, h.AbsentCol)
	assert.Equal(t, 4, h.AmountCol)
}

func TestLocateHeader_CurrentLayout(t *testing.T) {
	grid := Grid{
		{"Name", "Enrollment No", "", "", ""},
		{"", "", "P", "A", "Total Amount"},
	}

	h, err := LocateHeader(grid)
	require.NoError(t, err)

	assert.Equal(t, 0, h.Row)
	assert.Equal(t, 0, h.NameCol)
	assert.Equal(t, 1, h.RollCol)
	assert.Equal(t, 2, h.PresentCol)
	assert.Equal(t, 3, h.AbsentCol)
	assert.Equal(t, 4, h.AmountCol)
}

func TestLocateHeader_CaseAndWhitespaceInsensitive(t *testing.T) {
	grid := Grid{
		{"  name ", " ENROLLMENT NO "},
		{" p ", " a ", " Total Amount "},
	}

	h, err := LocateHeader(grid)
	require.NoError(t, err)

	assert.Equal(t, 0, h.NameCol)
	assert.Equal(t, 1, h.RollCol)
	assert.Equal(t, 0, h.PresentCol)
	assert.Equal(t, 1, h.AbsentCol)
	assert.Equal(t, 2, h.AmountCol)
}

func TestLocateHeader_FirstMatchingRowWins(t *testing.T) {
	grid := Grid{
		{"Name", "Enrollment No"},
		{"", "", "P", "A", "Total Amount"},
		{"Student Name", "Roll No."},
		{"", "", "P", "A"},
	}

	h, err := LocateHeader(grid)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Row)
}

func TestLocateHeader_NotFound(t *testing.T) {
	grid := Grid{
		// Partial label sets from either layout must not match.
		{"Name", "Roll No."},
		{"Student Name", "Enrollment No"},
	}

	_, err := LocateHeader(grid)
	assert.ErrorIs(t, err, core.ErrHeaderNotFound)
}

func TestLocateHeader_TotalAmountSubstringInHeaderRow(t *testing.T) {
	grid := Grid{
		{"Name", "Enrollment No"},
		{"", "", "P", "A", "Total Amount (Rs)"},
	}

	h, err := LocateHeader(grid)
	require.NoError(t, err)
	assert.Equal(t, 4, h.AmountCol)
}

func TestLocateHeader_TotalAmountFoundAnywhereInGrid(t *testing.T) {
	// Older sheets put the amount label outside the header block; the
	// whole-grid scan still resolves the column.
	grid := Grid{
		{"Name", "Enrollment No"},
		{"", "", "P", "A", ""},
		{"alice", "LIT01", "10", "2", ""},
		{"", "", "", "", "Total Amount"},
	}

	h, err := LocateHeader(grid)
	require.NoError(t, err)
	assert.Equal(t, 4, h.AmountCol)
}

func TestLocateHeader_MissingColumns(t *testing.T) {
	tests := []struct {
		name       string
		grid       Grid
		wantColumn string
	}{
		{
			name: "missing present",
			grid: Grid{
				{"Name", "Enrollment No"},
				{"", "", "", "A", "Total Amount"},
			},
			wantColumn: "present",
		},
		{
			name: "missing absent",
			grid: Grid{
				{"Name", "Enrollment No"},
				{"", "", "P", "", "Total Amount"},
			},
			wantColumn: "absent",
		},
		{
			name: "missing total amount",
			grid: Grid{
				{"Name", "Enrollment No"},
				{"", "", "P", "A", "Amount"},
			},
			wantColumn: "total-amount",
		},
		{
			name: "header on last row has no sub-header",
			grid: Grid{
				{"", "Total Amount"},
				{"Name", "Enrollment No"},
			},
			wantColumn: "present",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LocateHeader(tt.grid)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrMissingColumn)

			var missing *core.MissingColumnError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantColumn, missing.Column)
		})
	}
}
