package vehicles

import (
	"context"
	"log"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/drizz21/rental-tes/internal/repository"
	"github.com/drizz21/rental-tes/internal/validation"
	"github.com/google/uuid"
)

type VehicleUseCase interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, input map[string]interface{}) (*domain.Vehicle, error)
	Update(ctx context.Context, id string, input map[string]interface{}) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

type Cache interface {
	GetVehicles(ctx context.Context) ([]domain.Vehicle, error)
	SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error
	InvalidateVehicles(ctx context.Context) error
}

type VehicleService struct {
	vehicles repository.VehicleRepository
	bookings repository.BookingRepository
	cache    Cache
}

func NewVehicleService(vehicles repository.VehicleRepository, bookings repository.BookingRepository, cache Cache) *VehicleService {
	return &VehicleService{vehicles: vehicles, bookings: bookings, cache: cache}
}

func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetVehicles(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetVehicles(ctx, vehicles)
	}
	return vehicles, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *VehicleService) Create(ctx context.Context, input map[string]interface{}) (*domain.Vehicle, error) {
	if missing := validation.MissingFields(input, validation.VehicleRequired); len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	status := domain.VehicleStatus(validation.String(input["status"], string(domain.VehicleStatusAvailable)))
	if !domain.ValidVehicleStatus(status) {
		return nil, domain.ErrInvalidVehicleStatus
	}

	vehicle := &domain.Vehicle{
		ID:           uuid.NewString(),
		Name:         validation.String(input["nama"], ""),
		Make:         validation.String(input["merek"], ""),
		PlateNumber:  validation.String(input["plat_nomor"], ""),
		Category:     validation.String(input["kategori"], ""),
		DailyRate:    validation.Int(input["harga_harian"]),
		MonthlyRate:  validation.Int(input["harga_bulanan"]),
		Capacity:     validation.Int(input["kapasitas"]),
		Transmission: validation.String(input["transmisi"], ""),
		FuelType:     validation.String(input["bahan_bakar"], ""),
		Status:       status,
		Description:  validation.String(input["deskripsi"], ""),
		Photo:        validation.String(input["foto"], ""),
	}

	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return vehicle, nil
}

// Update takes the raw request body as a partial field map. The id keys are
// stripped here; the repository whitelists the rest.
func (s *VehicleService) Update(ctx context.Context, id string, input map[string]interface{}) (*domain.Vehicle, error) {
	delete(input, "id")
	delete(input, "_id")
	delete(input, "created_at")
	delete(input, "updated_at")

	if raw, ok := input["status"]; ok {
		status := domain.VehicleStatus(validation.String(raw, ""))
		if !domain.ValidVehicleStatus(status) {
			return nil, domain.ErrInvalidVehicleStatus
		}
	}
	if raw, ok := input["harga_harian"]; ok {
		input["harga_harian"] = validation.Int(raw)
	}
	if raw, ok := input["harga_bulanan"]; ok {
		input["harga_bulanan"] = validation.Int(raw)
	}
	if raw, ok := input["kapasitas"]; ok {
		input["kapasitas"] = validation.Int(raw)
	}

	vehicle, err := s.vehicles.UpdateFields(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if err := s.vehicles.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *VehicleService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	totalVehicles, err := s.vehicles.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	available, err := s.vehicles.CountByStatus(ctx, domain.VehicleStatusAvailable)
	if err != nil {
		return nil, err
	}
	rented, err := s.vehicles.CountByStatus(ctx, domain.VehicleStatusRented)
	if err != nil {
		return nil, err
	}

	return &domain.Statistics{
		TotalVehicles:     totalVehicles,
		TotalBookings:     totalBookings,
		VehiclesAvailable: available,
		VehiclesRented:    rented,
	}, nil
}

func (s *VehicleService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateVehicles(ctx); err != nil {
		log.Printf("invalidate vehicle cache: %v", err)
	}
}

var _ VehicleUseCase = (*VehicleService)(nil)
