package app

import (
	"context"
	"sort"
	"strings"

	"messtrack/domain/attendance"
	"messtrack/domain/core"
	"messtrack/ports"
)

// AttendanceReport is the aggregate answer for an attendance query: the
// matching per-month records plus their totals.
type AttendanceReport struct {
	RollNo      string              `json:"roll_no,omitempty"`
	StudentName string              `json:"student_name,omitempty"`
	TotalDays   int                 `json:"total_days_present"`
	TotalAmount float64             `json:"total_amount"`
	Records     []attendance.Record `json:"records"`
}

// QueryService is the read path over stored attendance records.
type QueryService struct {
	repo ports.AttendanceRepository
}

// NewQueryService creates a new query service
func NewQueryService(repo ports.AttendanceRepository) *QueryService {
	return &QueryService{repo: repo}
}

// Attendance looks up records by roll number and/or year and/or mess and
// aggregates days present and amount over the match set. At least a roll
// number or a year is required; mess alone would sweep the whole table.
func (s *QueryService) Attendance(ctx context.Context, f attendance.Filter) (*AttendanceReport, error) {
	f.RollNo = strings.ToUpper(strings.TrimSpace(f.RollNo))
	f.Mess = strings.TrimSpace(f.Mess)
	if f.RollNo == "" && f.Year == 0 {
		return nil, core.NewInputMissingError("roll number or year filter required")
	}

	records, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrNotFound
	}

	// Newest year first; months in calendar order within a year, with
	// unrecognized month labels ranked 0.
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year > records[j].Year
		}
		return attendance.MonthRank(records[i].Month) < attendance.MonthRank(records[j].Month)
	})

	report := &AttendanceReport{Records: records}
	for _, rec := range records {
		report.TotalDays += rec.DaysPresent
		report.TotalAmount += rec.TotalAmount
	}
	if f.RollNo != "" {
		report.RollNo = f.RollNo
		report.StudentName = records[0].StudentName
	}

	return report, nil
}

// Sheets lists the distinct (month, year, mess) triples currently stored.
// An empty list is a valid answer, not an error.
func (s *QueryService) Sheets(ctx context.Context) ([]attendance.SheetKey, error) {
	return s.repo.ListSheets(ctx)
}

// DeleteSheet removes every record of one uploaded sheet and returns the
// count removed. Deleting a sheet that holds nothing is a not-found error.
func (s *QueryService) DeleteSheet(ctx context.Context, key attendance.SheetKey) (int64, error) {
	key.Month = strings.TrimSpace(key.Month)
	key.Mess = strings.TrimSpace(key.Mess)
	if key.Month == "" || key.Year == 0 || key.Mess == "" {
		return 0, core.NewInputMissingError("month, year and mess are all required")
	}

	deleted, err := s.repo.DeleteSheet(ctx, key)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, core.ErrNotFound
	}

	return deleted, nil
}
