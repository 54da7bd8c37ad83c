package ports

import (
	"context"

	"messtrack/domain/attendance"
)

// AttendanceRepository is the persistence port for attendance records.
// Implementations guarantee upsert semantics on the natural key
// (roll_no, month, year, mess): a re-upload overwrites student_name,
// days_present and total_amount and preserves created_at.
type AttendanceRepository interface {
	Upsert(ctx context.Context, rec *attendance.Record) error
	Find(ctx context.Context, f attendance.Filter) ([]attendance.Record, error)
	ListSheets(ctx context.Context) ([]attendance.SheetKey, error)
	DeleteSheet(ctx context.Context, key attendance.SheetKey) (int64, error)
}
