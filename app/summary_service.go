package app

import (
	"context"
	"strings"

	"github.com/montanaflynn/stats"

	"messtrack/domain/attendance"
	"messtrack/domain/core"
	"messtrack/ports"
)

// DistributionStats are summary statistics over one numeric column of a
// sheet.
type DistributionStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	P90    float64 `json:"p90"`
}

// SheetSummary describes one uploaded sheet in aggregate.
type SheetSummary struct {
	Month       string            `json:"month"`
	Year        int               `json:"year"`
	Mess        string            `json:"mess"`
	Students    int               `json:"students"`
	DaysPresent DistributionStats `json:"days_present"`
	Amount      DistributionStats `json:"amount"`
	TotalAmount float64           `json:"total_amount"`
}

// SummaryService computes per-sheet distribution statistics for operators
// sanity-checking an upload.
type SummaryService struct {
	repo ports.AttendanceRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(repo ports.AttendanceRepository) *SummaryService {
	return &SummaryService{repo: repo}
}

// SheetSummary aggregates one (month, year, mess) sheet.
func (s *SummaryService) SheetSummary(ctx context.Context, key attendance.SheetKey) (*SheetSummary, error) {
	key.Month = strings.TrimSpace(key.Month)
	key.Mess = strings.TrimSpace(key.Mess)
	if key.Month == "" || key.Year == 0 || key.Mess == "" {
		return nil, core.NewInputMissingError("month, year and mess are all required")
	}

	records, err := s.repo.Find(ctx, attendance.Filter{Month: key.Month, Year: key.Year, Mess: key.Mess})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrNotFound
	}

	days := make([]float64, len(records))
	amounts := make([]float64, len(records))
	for i, rec := range records {
		days[i] = float64(rec.DaysPresent)
		amounts[i] = rec.TotalAmount
	}

	summary := &SheetSummary{
		Month:    key.Month,
		Year:     key.Year,
		Mess:     key.Mess,
		Students: len(records),
	}
	if summary.DaysPresent, err = describe(days); err != nil {
		return nil, err
	}
	if summary.Amount, err = describe(amounts); err != nil {
		return nil, err
	}
	if summary.TotalAmount, err = stats.Sum(amounts); err != nil {
		return nil, err
	}

	return summary, nil
}

func describe(data []float64) (DistributionStats, error) {
	var d DistributionStats
	var err error

	if d.Mean, err = stats.Mean(data); err != nil {
		return d, err
	}
	if d.Median, err = stats.Median(data); err != nil {
		return d, err
	}
	if d.StdDev, err = stats.StandardDeviation(data); err != nil {
		return d, err
	}
	if d.P90, err = stats.Percentile(data, 90); err != nil {
		return d, err
	}

	return d, nil
}
