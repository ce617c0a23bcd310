package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Tersedia"
	VehicleStatusRented    VehicleStatus = "Disewa"
	VehicleStatusRepair    VehicleStatus = "Perbaikan"
)

// ValidVehicleStatus reports whether s is one of the three allowed values.
func ValidVehicleStatus(s VehicleStatus) bool {
	return s == VehicleStatusAvailable || s == VehicleStatusRented || s == VehicleStatusRepair
}

// Vehicle keeps the Indonesian wire names the frontend already speaks as its
// JSON tags.
type Vehicle struct {
	ID           string        `json:"id"`
	Name         string        `json:"nama"`
	Make         string        `json:"merek"`
	PlateNumber  string        `json:"plat_nomor"`
	Category     string        `json:"kategori"`
	DailyRate    int           `json:"harga_harian"`
	MonthlyRate  int           `json:"harga_bulanan"`
	Capacity     int           `json:"kapasitas"`
	Transmission string        `json:"transmisi"`
	FuelType     string        `json:"bahan_bakar"`
	Status       VehicleStatus `json:"status"`
	Description  string        `json:"deskripsi"`
	Photo        string        `json:"foto"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
