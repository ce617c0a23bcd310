package report

import (
	"context"
	"testing"
	"time"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking, markRented bool) error {
	args := m.Called(ctx, b, markRented)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByStatusInRange(ctx context.Context, statuses []domain.BookingStatus, from, to time.Time, bounded bool) ([]domain.Booking, error) {
	args := m.Called(ctx, statuses, from, to, bounded)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var fixedNow = time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

func newService(repo *MockBookingRepository) *ReportService {
	return NewReportService(repo, WithClock(func() time.Time { return fixedNow }))
}

func TestReportService_Revenue_DayPeriodRange(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo)

	midnight := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	mockRepo.On("ListByStatusInRange", mock.Anything, reportStatuses, midnight, midnight.AddDate(0, 0, 1), true).
		Return([]domain.Booking{}, nil)

	laporan, err := service.Revenue(context.Background(), domain.PeriodDay)

	assert.NoError(t, err)
	assert.Equal(t, domain.PeriodDay, laporan.Period)
	mockRepo.AssertExpectations(t)
}

func TestReportService_Revenue_WeekPeriodRange(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo)

	mockRepo.On("ListByStatusInRange", mock.Anything, reportStatuses, fixedNow.Add(-7*24*time.Hour), fixedNow, true).
		Return([]domain.Booking{}, nil)

	_, err := service.Revenue(context.Background(), domain.PeriodWeek)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestReportService_Revenue_MonthPeriodRange(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo)

	mockRepo.On("ListByStatusInRange", mock.Anything, reportStatuses, fixedNow.AddDate(0, -1, 0), fixedNow, true).
		Return([]domain.Booking{}, nil)

	_, err := service.Revenue(context.Background(), domain.PeriodMonth)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// Неизвестный период означает отчёт без фильтра по дате, за всю историю.
func TestReportService_Revenue_UnknownPeriodUnbounded(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo)

	mockRepo.On("ListByStatusInRange", mock.Anything, reportStatuses, mock.Anything, mock.Anything, false).
		Return([]domain.Booking{}, nil)

	laporan, err := service.Revenue(context.Background(), "90-hari")

	assert.NoError(t, err)
	assert.Equal(t, "90-hari", laporan.Period)
	mockRepo.AssertExpectations(t)
}

func TestReportService_Revenue_Empty(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo)

	mockRepo.On("ListByStatusInRange", mock.Anything, reportStatuses, mock.Anything, mock.Anything, true).
		Return([]domain.Booking{}, nil)

	laporan, err := service.Revenue(context.Background(), domain.PeriodDay)

	assert.NoError(t, err)
	assert.Equal(t, 0, laporan.TotalRevenue)
	assert.Equal(t, 0, laporan.TotalTransactions)
	assert.Equal(t, 0, laporan.AveragePerTransaction)
	assert.Empty(t, laporan.DailyRevenue)
	assert.Empty(t, laporan.Bookings)
}

func TestReportService_Revenue_Aggregation(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo)

	bookings := []domain.Booking{
		{ID: "b-1", TotalPrice: 300000, Status: domain.BookingStatusConfirmed, CreatedAt: time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)},
		{ID: "b-2", TotalPrice: 200000, Status: domain.BookingStatusCompleted, CreatedAt: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)},
		{ID: "b-3", TotalPrice: 100000, Status: domain.BookingStatusConfirmed, CreatedAt: time.Date(2026, 8, 27, 18, 0, 0, 0, time.UTC)},
	}
	mockRepo.On("ListByStatusInRange", mock.Anything, reportStatuses, mock.Anything, mock.Anything, true).
		Return(bookings, nil)

	laporan, err := service.Revenue(context.Background(), domain.PeriodWeek)

	assert.NoError(t, err)
	assert.Equal(t, 600000, laporan.TotalRevenue)
	assert.Equal(t, 3, laporan.TotalTransactions)
	assert.Equal(t, 200000, laporan.AveragePerTransaction)
	// Дневной ряд отсортирован хронологически.
	assert.Equal(t, []domain.DailyRevenue{
		{Date: "2026-08-26", Revenue: 200000},
		{Date: "2026-08-27", Revenue: 400000},
	}, laporan.DailyRevenue)
	assert.Len(t, laporan.Bookings, 3)
}

func TestReportService_Revenue_RoundsAverage(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := newService(mockRepo)

	bookings := []domain.Booking{
		{ID: "b-1", TotalPrice: 100, CreatedAt: fixedNow},
		{ID: "b-2", TotalPrice: 101, CreatedAt: fixedNow},
	}
	mockRepo.On("ListByStatusInRange", mock.Anything, reportStatuses, mock.Anything, mock.Anything, true).
		Return(bookings, nil)

	laporan, err := service.Revenue(context.Background(), domain.PeriodDay)

	assert.NoError(t, err)
	assert.Equal(t, 101, laporan.AveragePerTransaction) // 100.5 округляется вверх
}

func TestReportStatuses_ExcludePending(t *testing.T) {
	assert.NotContains(t, reportStatuses, domain.BookingStatusPending)
	assert.Contains(t, reportStatuses, domain.BookingStatusConfirmed)
	assert.Contains(t, reportStatuses, domain.BookingStatusCompleted)
}
