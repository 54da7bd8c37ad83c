package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"messtrack/domain/attendance"
	"messtrack/domain/core"
)

// fakeRepo is an in-memory AttendanceRepository with the same upsert
// semantics as the Postgres adapter.
type fakeRepo struct {
	records   map[string]*attendance.Record
	failRolls map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		records:   make(map[string]*attendance.Record),
		failRolls: make(map[string]bool),
	}
}

func recordKey(rollNo, month string, year int, mess string) string {
	return fmt.Sprintf("%s|%s|%d|%s", rollNo, month, year, mess)
}

func (r *fakeRepo) Upsert(_ context.Context, rec *attendance.Record) error {
	if r.failRolls[rec.RollNo] {
		return fmt.Errorf("%w: simulated write failure", core.ErrPersistence)
	}

	key := recordKey(rec.RollNo, rec.Month, rec.Year, rec.Mess)
	if existing, ok := r.records[key]; ok {
		existing.StudentName = rec.StudentName
		existing.DaysPresent = rec.DaysPresent
		existing.TotalAmount = rec.TotalAmount
		existing.UpdatedAt = time.Now()
		return nil
	}

	stored := *rec
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.records[key] = &stored
	return nil
}

func (r *fakeRepo) Find(_ context.Context, f attendance.Filter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if f.RollNo != "" && rec.RollNo != f.RollNo {
			continue
		}
		if f.Month != "" && rec.Month != f.Month {
			continue
		}
		if f.Year != 0 && rec.Year != f.Year {
			continue
		}
		if f.Mess != "" && rec.Mess != f.Mess {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (r *fakeRepo) ListSheets(_ context.Context) ([]attendance.SheetKey, error) {
	seen := make(map[attendance.SheetKey]bool)
	var out []attendance.SheetKey
	for _, rec := range r.records {
		key := rec.Key()
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteSheet(_ context.Context, key attendance.SheetKey) (int64, error) {
	var deleted int64
	for k, rec := range r.records {
		if rec.Month == key.Month && rec.Year == key.Year && rec.Mess == key.Mess {
			delete(r.records, k)
			deleted++
		}
	}
	return deleted, nil
}
