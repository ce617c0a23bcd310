package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Dikonfirmasi"
	BookingStatusCompleted BookingStatus = "Selesai"
)

type RentalType string

const (
	RentalTypeDaily   RentalType = "harian"
	RentalTypeMonthly RentalType = "bulanan"
)

type Booking struct {
	ID            string        `json:"id"`
	VehicleID     string        `json:"kendaraan_id"`
	RenterName    string        `json:"nama_penyewa"`
	Phone         string        `json:"no_hp"`
	Email         string        `json:"email"`
	StartDate     time.Time     `json:"tanggal_sewa"`
	Duration      int           `json:"durasi"`
	RentalType    RentalType    `json:"tipe_sewa"`
	WithDriver    bool          `json:"dengan_sopir"`
	PickupAddress string        `json:"alamat_jemput"`
	Notes         string        `json:"catatan"`
	Status        BookingStatus `json:"status"`
	TotalPrice    int           `json:"total_harga"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
