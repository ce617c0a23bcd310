package report

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/drizz21/rental-tes/internal/repository"
)

type ReportUseCase interface {
	Revenue(ctx context.Context, period string) (*domain.RevenueReport, error)
}

// reportStatuses: only accepted bookings count as revenue. Pending intake
// never shows up in the numbers.
var reportStatuses = []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusCompleted}

type ReportService struct {
	bookings repository.BookingRepository
	now      func() time.Time
}

type ReportServiceOption func(*ReportService)

// WithClock replaces the wall clock, used by tests to pin the period math.
func WithClock(now func() time.Time) ReportServiceOption {
	return func(s *ReportService) {
		s.now = now
	}
}

func NewReportService(bookings repository.BookingRepository, opts ...ReportServiceOption) *ReportService {
	service := &ReportService{bookings: bookings, now: time.Now}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Revenue aggregates confirmed/completed bookings over the selected period.
// 1-hari is midnight-to-midnight of today, 7-hari a rolling week, 1-bulan
// the same day of the previous calendar month until now. Any other period
// value skips the date filter and reports over the full history; the
// frontend relies on that fallback, do not turn it into an error.
func (s *ReportService) Revenue(ctx context.Context, period string) (*domain.RevenueReport, error) {
	now := s.now()

	var (
		from, to time.Time
		bounded  = true
	)
	switch period {
	case domain.PeriodDay:
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 0, 1)
	case domain.PeriodWeek:
		from = now.Add(-7 * 24 * time.Hour)
		to = now
	case domain.PeriodMonth:
		from = now.AddDate(0, -1, 0)
		to = now
	default:
		bounded = false
	}

	bookings, err := s.bookings.ListByStatusInRange(ctx, reportStatuses, from, to, bounded)
	if err != nil {
		return nil, err
	}

	total := 0
	perDay := make(map[string]int)
	for _, b := range bookings {
		total += b.TotalPrice
		day := b.CreatedAt.UTC().Format("2006-01-02")
		perDay[day] += b.TotalPrice
	}

	average := 0
	if len(bookings) > 0 {
		average = int(math.Round(float64(total) / float64(len(bookings))))
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	daily := make([]domain.DailyRevenue, 0, len(days))
	for _, day := range days {
		daily = append(daily, domain.DailyRevenue{Date: day, Revenue: perDay[day]})
	}

	return &domain.RevenueReport{
		Period:                period,
		TotalRevenue:          total,
		TotalTransactions:     len(bookings),
		AveragePerTransaction: average,
		DailyRevenue:          daily,
		Bookings:              bookings,
	}, nil
}

var _ ReportUseCase = (*ReportService)(nil)
