package repository

import (
	"context"
	"errors"
	"time"

	"github.com/drizz21/rental-tes/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking, markRented bool) error
	ListByStatusInRange(ctx context.Context, statuses []domain.BookingStatus, from, to time.Time, bounded bool) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, kendaraan_id, nama_penyewa, no_hp, email, tanggal_sewa, durasi, tipe_sewa, dengan_sopir, alamat_jemput, catatan, status, total_harga, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.VehicleID, &b.RenterName, &b.Phone, &b.Email, &b.StartDate, &b.Duration, &b.RentalType, &b.WithDriver, &b.PickupAddress, &b.Notes, &b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM booking ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// Create inserts the booking and, when markRented is set, flips the vehicle
// to Disewa — all in one transaction. The row lock on kendaraan keeps two
// concurrent bookings from both passing the availability check.
func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking, markRented bool) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var status domain.VehicleStatus
	err = tx.QueryRow(ctx, `SELECT status FROM kendaraan WHERE id=$1 FOR UPDATE`, b.VehicleID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrVehicleNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.VehicleStatusAvailable {
		return domain.ErrVehicleUnavailable
	}

	b.Status = domain.BookingStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO booking (id, kendaraan_id, nama_penyewa, no_hp, email, tanggal_sewa, durasi, tipe_sewa, dengan_sopir, alamat_jemput, catatan, status, total_harga)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`,
		b.ID, b.VehicleID, b.RenterName, b.Phone, b.Email, b.StartDate, b.Duration, b.RentalType, b.WithDriver, b.PickupAddress, b.Notes, b.Status, b.TotalPrice).
		Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return err
	}

	if markRented {
		if _, err := tx.Exec(ctx, `UPDATE kendaraan SET status=$1, updated_at=now() WHERE id=$2`, domain.VehicleStatusRented, b.VehicleID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListByStatusInRange feeds the revenue report. With bounded=false the
// created_at filter is skipped entirely (the all-history fallback for
// unrecognized periods).
func (r *PGBookingRepository) ListByStatusInRange(ctx context.Context, statuses []domain.BookingStatus, from, to time.Time, bounded bool) ([]domain.Booking, error) {
	in := make([]string, len(statuses))
	for i, s := range statuses {
		in[i] = string(s)
	}

	var (
		rows pgx.Rows
		err  error
	)
	if bounded {
		rows, err = r.db.Query(ctx, `SELECT `+bookingColumns+` FROM booking WHERE status = ANY($1) AND created_at >= $2 AND created_at < $3`, in, from, to)
	} else {
		rows, err = r.db.Query(ctx, `SELECT `+bookingColumns+` FROM booking WHERE status = ANY($1)`, in)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM booking`).Scan(&n)
	return n, err
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
