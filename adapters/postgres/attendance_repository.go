package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"messtrack/domain/attendance"
	"messtrack/domain/core"
	"messtrack/ports"
)

// AttendanceRepositoryImpl implements AttendanceRepository for PostgreSQL
type AttendanceRepositoryImpl struct {
	db *sqlx.DB
}

// NewAttendanceRepository creates a new PostgreSQL attendance repository
func NewAttendanceRepository(db *sqlx.DB) ports.AttendanceRepository {
	return &AttendanceRepositoryImpl{db: db}
}

// Upsert writes one record keyed by (roll_no, month, year, mess). On
// conflict the student name, attendance and amount are overwritten;
// created_at keeps the value from the first insert.
func (r *AttendanceRepositoryImpl) Upsert(ctx context.Context, rec *attendance.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO attendance_records
			(id, roll_no, student_name, month, year, mess, days_present, total_amount, created_at, updated_at)
		VALUES
			(:id, :roll_no, :student_name, :month, :year, :mess, :days_present, :total_amount, NOW(), NOW())
		ON CONFLICT (roll_no, month, year, mess) DO UPDATE SET
			student_name = EXCLUDED.student_name,
			days_present = EXCLUDED.days_present,
			total_amount = EXCLUDED.total_amount,
			updated_at = NOW()
	`, rec)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("%w: upsert %s/%s/%d/%s: %s", core.ErrPersistence, rec.RollNo, rec.Month, rec.Year, rec.Mess, pqErr.Message)
		}
		return fmt.Errorf("%w: upsert %s/%s/%d/%s: %v", core.ErrPersistence, rec.RollNo, rec.Month, rec.Year, rec.Mess, err)
	}

	return nil
}

// Find retrieves all records matching the filter, newest year first. Month
// ordering within a year is applied by the caller: month is free text and
// calendar order needs the rank table, not SQL collation.
func (r *AttendanceRepositoryImpl) Find(ctx context.Context, f attendance.Filter) ([]attendance.Record, error) {
	query := `
		SELECT id, roll_no, student_name, month, year, mess, days_present, total_amount, created_at, updated_at
		FROM attendance_records`

	var conds []string
	var args []interface{}
	if f.RollNo != "" {
		args = append(args, f.RollNo)
		conds = append(conds, fmt.Sprintf("roll_no = $%d", len(args)))
	}
	if f.Month != "" {
		args = append(args, f.Month)
		conds = append(conds, fmt.Sprintf("month = $%d", len(args)))
	}
	if f.Year != 0 {
		args = append(args, f.Year)
		conds = append(conds, fmt.Sprintf("year = $%d", len(args)))
	}
	if f.Mess != "" {
		args = append(args, f.Mess)
		conds = append(conds, fmt.Sprintf("mess = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY year DESC, roll_no"

	var records []attendance.Record
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("%w: find: %v", core.ErrPersistence, err)
	}

	return records, nil
}

// ListSheets returns the distinct (month, year, mess) triples in storage.
func (r *AttendanceRepositoryImpl) ListSheets(ctx context.Context) ([]attendance.SheetKey, error) {
	var sheets []attendance.SheetKey
	err := r.db.SelectContext(ctx, &sheets, `
		SELECT month, year, mess
		FROM attendance_records
		GROUP BY month, year, mess
		ORDER BY year DESC, month, mess
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: list sheets: %v", core.ErrPersistence, err)
	}

	return sheets, nil
}

// DeleteSheet removes every record for one (month, year, mess) triple and
// reports how many rows went away.
func (r *AttendanceRepositoryImpl) DeleteSheet(ctx context.Context, key attendance.SheetKey) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM attendance_records
		WHERE month = $1 AND year = $2 AND mess = $3
	`, key.Month, key.Year, key.Mess)
	if err != nil {
		return 0, fmt.Errorf("%w: delete sheet %s/%d/%s: %v", core.ErrPersistence, key.Month, key.Year, key.Mess, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: delete sheet %s/%d/%s: %v", core.ErrPersistence, key.Month, key.Year, key.Mess, err)
	}

	return deleted, nil
}
