package attendance

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one student's attendance for one month on one mess.
// RollNo and StudentName are stored uppercase and trimmed; query lookups
// rely on that normalization.
type Record struct {
	ID          uuid.UUID `db:"id" json:"id"`
	RollNo      string    `db:"roll_no" json:"roll_no"`
	StudentName string    `db:"student_name" json:"student_name"`
	Month       string    `db:"month" json:"month"`
	Year        int       `db:"year" json:"year"`
	Mess        string    `db:"mess" json:"mess"`
	DaysPresent int       `db:"days_present" json:"days_present"`
	TotalAmount float64   `db:"total_amount" json:"total_amount"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Key returns the natural key of the record. The tuple is unique in storage;
// re-uploading the same tuple overwrites, never duplicates.
func (r *Record) Key() SheetKey {
	return SheetKey{Month: r.Month, Year: r.Year, Mess: r.Mess}
}

// Filter narrows record lookups. Zero values mean "no constraint".
type Filter struct {
	RollNo string
	Month  string
	Year   int
	Mess   string
}

// SheetKey identifies one uploaded sheet: a (month, year, mess) triple.
type SheetKey struct {
	Month string `db:"month" json:"month"`
	Year  int    `db:"year" json:"year"`
	Mess  string `db:"mess" json:"mess"`
}

// monthRank maps month labels to calendar order for sorting. Month is stored
// as free text, so unrecognized labels rank 0 and sort first.
var monthRank = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// MonthRank returns the calendar position of a month label, or 0 when the
// label is not a recognized month name.
func MonthRank(month string) int {
	return monthRank[strings.ToLower(strings.TrimSpace(month))]
}
