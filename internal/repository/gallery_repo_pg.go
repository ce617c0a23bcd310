package repository

import (
	"context"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GalleryRepository interface {
	List(ctx context.Context) ([]domain.GalleryItem, error)
	Create(ctx context.Context, item *domain.GalleryItem) error
}

type PGGalleryRepository struct {
	db *pgxpool.Pool
}

func NewGalleryRepository(db *pgxpool.Pool) GalleryRepository {
	return &PGGalleryRepository{db: db}
}

func (r *PGGalleryRepository) List(ctx context.Context) ([]domain.GalleryItem, error) {
	rows, err := r.db.Query(ctx, `SELECT id, judul, deskripsi, foto, kategori, created_at, updated_at FROM gallery ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.GalleryItem, 0)
	for rows.Next() {
		var it domain.GalleryItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.Photo, &it.Category, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PGGalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	return r.db.QueryRow(ctx, `INSERT INTO gallery (id, judul, deskripsi, foto, kategori)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		item.ID, item.Title, item.Description, item.Photo, item.Category).
		Scan(&item.CreatedAt, &item.UpdatedAt)
}

var _ GalleryRepository = (*PGGalleryRepository)(nil)
