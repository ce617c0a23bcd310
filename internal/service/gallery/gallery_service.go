package gallery

import (
	"context"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/drizz21/rental-tes/internal/repository"
	"github.com/drizz21/rental-tes/internal/validation"
	"github.com/google/uuid"
)

type GalleryUseCase interface {
	List(ctx context.Context) ([]domain.GalleryItem, error)
	Create(ctx context.Context, input map[string]interface{}) (*domain.GalleryItem, error)
}

type GalleryService struct {
	gallery repository.GalleryRepository
}

func NewGalleryService(gallery repository.GalleryRepository) *GalleryService {
	return &GalleryService{gallery: gallery}
}

func (s *GalleryService) List(ctx context.Context) ([]domain.GalleryItem, error) {
	return s.gallery.List(ctx)
}

func (s *GalleryService) Create(ctx context.Context, input map[string]interface{}) (*domain.GalleryItem, error) {
	if missing := validation.MissingFields(input, validation.GalleryRequired); len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	item := &domain.GalleryItem{
		ID:          uuid.NewString(),
		Title:       validation.String(input["judul"], ""),
		Description: validation.String(input["deskripsi"], ""),
		Photo:       validation.String(input["foto"], ""),
		Category:    validation.String(input["kategori"], "kendaraan"),
	}

	if err := s.gallery.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

var _ GalleryUseCase = (*GalleryService)(nil)
