package app

import (
	"context"
	"log"
	"time"

	"messtrack/domain/attendance"
	"messtrack/domain/sheet"
	"messtrack/ports"
)

// UploadedFile is one file of an upload batch, already spooled to disk.
type UploadedFile struct {
	Filename string
	Path     string
}

// FileResult reports the outcome of ingesting a single file. Error carries
// the failure reason for that file only; other files in the batch are
// unaffected.
type FileResult struct {
	Filename string `json:"filename"`
	Records  int    `json:"records"`
	Month    string `json:"month,omitempty"`
	Year     int    `json:"year,omitempty"`
	Error    string `json:"error,omitempty"`
}

// IngestService runs the spreadsheet ingestion pipeline: read grid, extract
// metadata, locate header, normalize rows, upsert each row.
type IngestService struct {
	reader ports.GridReader
	repo   ports.AttendanceRepository
	now    func() time.Time
}

// NewIngestService creates a new ingest service
func NewIngestService(reader ports.GridReader, repo ports.AttendanceRepository) *IngestService {
	return &IngestService{
		reader: reader,
		repo:   repo,
		now:    time.Now,
	}
}

// ProcessFile ingests one spreadsheet for one mess. It returns how many rows
// were persisted and the month/year detected in the sheet. A row whose
// upsert fails is logged and skipped; the batch never aborts on row errors.
func (s *IngestService) ProcessFile(ctx context.Context, path, mess string) (int, sheet.Meta, error) {
	grid, err := s.reader.ReadGrid(path)
	if err != nil {
		return 0, sheet.Meta{}, err
	}

	meta := sheet.ExtractMeta(grid, s.now())

	header, err := sheet.LocateHeader(grid)
	if err != nil {
		return 0, meta, err
	}

	processed := 0
	for _, row := range sheet.NormalizeRows(grid, header) {
		rec := &attendance.Record{
			RollNo:      row.RollNo,
			StudentName: row.StudentName,
			Month:       meta.Month,
			Year:        meta.Year,
			Mess:        mess,
			DaysPresent: row.DaysPresent,
			TotalAmount: row.TotalAmount,
		}
		if err := s.repo.Upsert(ctx, rec); err != nil {
			log.Printf("[ingest] skipping row %s (%s %d, %s): %v", row.RollNo, meta.Month, meta.Year, mess, err)
			continue
		}
		processed++
	}

	return processed, meta, nil
}

// ProcessBatch ingests files one at a time, in submission order. Each file
// gets its own result; a format or header failure in one file does not stop
// the rest.
func (s *IngestService) ProcessBatch(ctx context.Context, files []UploadedFile, mess string) []FileResult {
	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		result := FileResult{Filename: f.Filename}

		processed, meta, err := s.ProcessFile(ctx, f.Path, mess)
		if err != nil {
			log.Printf("[ingest] file %s failed: %v", f.Filename, err)
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Records = processed
		result.Month = meta.Month
		result.Year = meta.Year
		results = append(results, result)
	}

	return results
}
