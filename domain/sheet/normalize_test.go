package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentHeader() Header {
	return Header{Row: 0, NameCol: 0, RollCol: 1, PresentCol: 2, AbsentCol: 3, AmountCol: 4}
}

func TestNormalizeRows_UppercasesAndTrims(t *testing.T) {
	grid := Grid{
		{"Name", "Enrollment No", "", "", ""},
		{"", "", "P", "A", "Total Amount"},
		{"jane doe", "lit2024042", "20", "", "2500"},
		{"  John Smith  ", " lit2024043 ", "18", "12", "2210.50"},
	}

	rows := NormalizeRows(grid, currentHeader())
	require.Len(t, rows, 2)

	assert.Equal(t, ParsedRow{
		RollNo:      "LIT2024042",
		StudentName: "JANE DOE",
		DaysPresent: 20,
		TotalAmount: 2500,
	}, rows[0])
	assert.Equal(t, ParsedRow{
		RollNo:      "LIT2024043",
		StudentName: "JOHN SMITH",
		DaysPresent: 18,
		TotalAmount: 2210.50,
	}, rows[1])
}

func TestNormalizeRows_SkipsHeaderAndSubHeader(t *testing.T) {
	grid := Grid{
		{"Name", "Enrollment No", "", "", ""},
		{"", "", "P", "A", "Total Amount"},
		{"alice", "LIT01", "10", "2", "1200"},
	}

	rows := NormalizeRows(grid, currentHeader())
	require.Len(t, rows, 1)
	assert.Equal(t, "LIT01", rows[0].RollNo)
}

func TestNormalizeRows_SkipsMalformedAndBlankRows(t *testing.T) {
	grid := Grid{
		{"Name", "Enrollment No", "", "", ""},
		{"", "", "P", "A", "Total Amount"},
		{"short", "row"},                      // shorter than the amount column
		{"", "LIT02", "10", "", "900"},        // blank name
		{"bob", "   ", "10", "", "900"},       // blank roll
		{"", "", "", "", ""},                  // fully blank
		{"carol", "LIT03", "15", "5", "1800"}, // valid
	}

	rows := NormalizeRows(grid, currentHeader())
	require.Len(t, rows, 1)
	assert.Equal(t, "LIT03", rows[0].RollNo)
}

func TestNormalizeRows_ParseFailuresDefaultToZero(t *testing.T) {
	grid := Grid{
		{"Name", "Enrollment No", "", "", ""},
		{"", "", "P", "A", "Total Amount"},
		{"dan", "LIT04", "absent", "", "n/a"},
	}

	rows := NormalizeRows(grid, currentHeader())
	require.Len(t, rows, 1)

	assert.Equal(t, 0, rows[0].DaysPresent)
	assert.Equal(t, 0.0, rows[0].TotalAmount)
}

func TestNormalizeRows_ZeroValuesStillRecorded(t *testing.T) {
	grid := Grid{
		{"Name", "Enrollment No", "", "", ""},
		{"", "", "P", "A", "Total Amount"},
		{"eve", "LIT05", "0", "31", "0"},
	}

	rows := NormalizeRows(grid, currentHeader())
	require.Len(t, rows, 1)

	assert.Equal(t, 0, rows[0].DaysPresent)
	assert.Equal(t, 0.0, rows[0].TotalAmount)
}

func TestNormalizeRows_FullPipelineOnSyntheticSheet(t *testing.T) {
	grid := Grid{
		{"Mess Register", "", "", "", ""},
		{"Month", "January", "", "Year", "2025"},
		{"Name", "Enrollment No", "", "", ""},
		{"", "", "P", "A", "Total Amount"},
		{"jane doe", "lit2024042", "20", "", "2500"},
	}

	h, err := LocateHeader(grid)
	require.NoError(t, err)

	rows := NormalizeRows(grid, h)
	require.Len(t, rows, 1)
	assert.Equal(t, "LIT2024042", rows[0].RollNo)
	assert.Equal(t, "JANE DOE", rows[0].StudentName)
	assert.Equal(t, 20, rows[0].DaysPresent)
	assert.Equal(t, 2500.0, rows[0].TotalAmount)
}
