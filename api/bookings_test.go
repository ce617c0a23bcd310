package api

import (
	"bytes"
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

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input map[string]interface{}) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func postJSON(t *testing.T, target string, payload interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(payload)
	c.Request = httptest.NewRequest("POST", target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	input := map[string]interface{}{
		"kendaraan_id": "veh-1",
		"nama_penyewa": "Budi",
		"no_hp":        "0812345678",
		"tanggal_sewa": "2026-08-28",
		"durasi":       float64(3),
	}
	w, c := postJSON(t, "/booking", input)

	created := &domain.Booking{
		ID:        "b-1",
		VehicleID: "veh-1",
		Status:    domain.BookingStatusPending,
	}
	mockService.On("CreateBooking", c.Request.Context(), input).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, domain.BookingStatusPending, resp.Status)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_missingFields(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	input := map[string]interface{}{"nama_penyewa": "Budi"}
	w, c := postJSON(t, "/booking", input)

	mockService.On("CreateBooking", c.Request.Context(), input).
		Return(nil, &domain.ValidationError{Fields: []string{"kendaraan_id", "no_hp", "tanggal_sewa", "durasi"}})

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field wajib tidak diisi: kendaraan_id, no_hp, tanggal_sewa, durasi")
}

func TestBookingHandler_create_vehicleNotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	input := map[string]interface{}{"kendaraan_id": "missing"}
	w, c := postJSON(t, "/booking", input)

	mockService.On("CreateBooking", c.Request.Context(), input).Return(nil, domain.ErrVehicleNotFound)

	handler.create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Kendaraan tidak ditemukan")
}

func TestBookingHandler_create_vehicleUnavailable(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	input := map[string]interface{}{"kendaraan_id": "veh-1"}
	w, c := postJSON(t, "/booking", input)

	mockService.On("CreateBooking", c.Request.Context(), input).Return(nil, domain.ErrVehicleUnavailable)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Kendaraan tidak tersedia")
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/booking", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.Booking{{ID: "b-1"}}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b-1")
}
