package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReportUseCase struct {
	mock.Mock
}

func (m *MockReportUseCase) Revenue(ctx context.Context, period string) (*domain.RevenueReport, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueReport), args.Error(1)
}

func getReport(t *testing.T, target string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return w, c
}

func TestReportHandler_defaultPeriod(t *testing.T) {
	mockService := &MockReportUseCase{}
	handler := NewReportHandler(mockService)

	w, c := getReport(t, "/laporan-keuangan")

	mockService.On("Revenue", c.Request.Context(), "1-hari").Return(&domain.RevenueReport{
		Period:       "1-hari",
		DailyRevenue: []domain.DailyRevenue{},
		Bookings:     []domain.Booking{},
	}, nil)

	handler.revenue(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1-hari", resp["periode"])
	// Пустой отчёт сериализуется как [], а не null.
	assert.Equal(t, []interface{}{}, resp["pendapatan_harian"])
	assert.Equal(t, []interface{}{}, resp["detail_booking"])
}

func TestReportHandler_explicitPeriod(t *testing.T) {
	mockService := &MockReportUseCase{}
	handler := NewReportHandler(mockService)

	w, c := getReport(t, "/laporan-keuangan?periode=7-hari")

	mockService.On("Revenue", c.Request.Context(), "7-hari").Return(&domain.RevenueReport{
		Period:            "7-hari",
		TotalRevenue:      600000,
		TotalTransactions: 3,
	}, nil)

	handler.revenue(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_pendapatan":600000`)
	mockService.AssertExpectations(t)
}
