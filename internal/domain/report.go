package domain

// Report periods accepted by /laporan-keuangan. Any other value falls back
// to an unbounded range (full history); the frontend depends on that.
const (
	PeriodDay   = "1-hari"
	PeriodWeek  = "7-hari"
	PeriodMonth = "1-bulan"
)

type DailyRevenue struct {
	Date    string `json:"tanggal"`
	Revenue int    `json:"pendapatan"`
}

type RevenueReport struct {
	Period                string         `json:"periode"`
	TotalRevenue          int            `json:"total_pendapatan"`
	TotalTransactions     int            `json:"total_transaksi"`
	AveragePerTransaction int            `json:"rata_rata_per_transaksi"`
	DailyRevenue          []DailyRevenue `json:"pendapatan_harian"`
	Bookings              []Booking      `json:"detail_booking"`
}

type Statistics struct {
	TotalVehicles     int64 `json:"total_kendaraan"`
	TotalBookings     int64 `json:"total_booking"`
	VehiclesAvailable int64 `json:"kendaraan_tersedia"`
	VehiclesRented    int64 `json:"kendaraan_disewa"`
}
