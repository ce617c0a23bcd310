package booking

import (
	"context"
	"log"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/drizz21/rental-tes/internal/kafka"
	"github.com/drizz21/rental-tes/internal/repository"
	"github.com/drizz21/rental-tes/internal/validation"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	List(ctx context.Context) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, input map[string]interface{}) (*domain.Booking, error)
}

type Cache interface {
	InvalidateVehicles(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	eventsTopic        string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	eventsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		cache:       cache,
		producer:    producer,
		eventsTopic: eventsTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// CreateBooking validates the intake form, then lets the repository run the
// availability check, insert and optional vehicle flip in one transaction.
// Status is always forced to Pending no matter what the caller sent; the
// confirm_booking flag only decides whether the vehicle moves to Disewa.
func (s *BookingService) CreateBooking(ctx context.Context, input map[string]interface{}) (*domain.Booking, error) {
	if missing := validation.MissingFields(input, validation.BookingRequired); len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	confirm := validation.Bool(input["confirm_booking"])

	booking := &domain.Booking{
		ID:            uuid.NewString(),
		VehicleID:     validation.String(input["kendaraan_id"], ""),
		RenterName:    validation.String(input["nama_penyewa"], ""),
		Phone:         validation.String(input["no_hp"], ""),
		Email:         validation.String(input["email"], ""),
		StartDate:     validation.Date(input["tanggal_sewa"]),
		Duration:      validation.Int(input["durasi"]),
		RentalType:    domain.RentalType(validation.String(input["tipe_sewa"], string(domain.RentalTypeDaily))),
		WithDriver:    validation.Bool(input["dengan_sopir"]),
		PickupAddress: validation.String(input["alamat_jemput"], ""),
		Notes:         validation.String(input["catatan"], ""),
		Status:        domain.BookingStatusPending,
		TotalPrice:    validation.Int(input["total_harga"]),
	}

	if err := s.bookings.Create(ctx, booking, confirm); err != nil {
		return nil, err
	}

	if confirm && s.cache != nil {
		_ = s.cache.InvalidateVehicles(ctx)
	}

	s.publish(ctx, "booking_created", booking)
	if confirm {
		s.publish(ctx, "booking_confirmed", booking)
	}
	return booking, nil
}

// publish is best-effort: a broker outage must never fail the booking.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		VehicleID:  booking.VehicleID,
		RenterName: booking.RenterName,
		Phone:      booking.Phone,
		Email:      booking.Email,
		Status:     string(booking.Status),
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, booking.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, booking.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, booking.ID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
