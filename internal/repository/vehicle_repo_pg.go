package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.VehicleStatus) (int64, error)
}

type PGVehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) VehicleRepository {
	return &PGVehicleRepository{db: db}
}

const vehicleColumns = `id, nama, merek, plat_nomor, kategori, harga_harian, harga_bulanan, kapasitas, transmisi, bahan_bakar, status, deskripsi, foto, created_at, updated_at`

// updatableVehicleColumns whitelists the columns a partial update may touch.
// The id and created_at never change; updated_at is stamped by the query.
var updatableVehicleColumns = []string{"nama", "merek", "plat_nomor", "kategori", "harga_harian", "harga_bulanan", "kapasitas", "transmisi", "bahan_bakar", "status", "deskripsi", "foto"}

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := row.Scan(&v.ID, &v.Name, &v.Make, &v.PlateNumber, &v.Category, &v.DailyRate, &v.MonthlyRate, &v.Capacity, &v.Transmission, &v.FuelType, &v.Status, &v.Description, &v.Photo, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PGVehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vehicleColumns+` FROM kendaraan ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]domain.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *PGVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := scanVehicle(r.db.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM kendaraan WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *PGVehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	return r.db.QueryRow(ctx, `INSERT INTO kendaraan (id, nama, merek, plat_nomor, kategori, harga_harian, harga_bulanan, kapasitas, transmisi, bahan_bakar, status, deskripsi, foto)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`,
		v.ID, v.Name, v.Make, v.PlateNumber, v.Category, v.DailyRate, v.MonthlyRate, v.Capacity, v.Transmission, v.FuelType, v.Status, v.Description, v.Photo).
		Scan(&v.CreatedAt, &v.UpdatedAt)
}

// UpdateFields applies a partial column map and returns the row as it exists
// after the write. Unknown keys are dropped, so callers may pass the request
// body through after stripping nothing but their own bookkeeping.
func (r *PGVehicleRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*domain.Vehicle, error) {
	set := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for _, col := range updatableVehicleColumns {
		if val, ok := fields[col]; ok {
			args = append(args, val)
			set = append(set, fmt.Sprintf("%s=$%d", col, len(args)))
		}
	}
	set = append(set, "updated_at=now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE kendaraan SET %s WHERE id=$%d RETURNING `+vehicleColumns, strings.Join(set, ", "), len(args))
	v, err := scanVehicle(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *PGVehicleRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM kendaraan WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *PGVehicleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM kendaraan`).Scan(&n)
	return n, err
}

func (r *PGVehicleRepository) CountByStatus(ctx context.Context, status domain.VehicleStatus) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM kendaraan WHERE status=$1`, status).Scan(&n)
	return n, err
}

var _ VehicleRepository = (*PGVehicleRepository)(nil)
