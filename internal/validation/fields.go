// Package validation implements the shared required-field check used by every
// create endpoint, plus the loose coercions the JSON bodies need (numbers and
// booleans may arrive as strings, dates in more than one layout).
package validation

import (
	"strconv"
	"strings"
	"time"
)

// Required-field lists per entity. These are the single source of truth for
// the missing-field error message.
var (
	VehicleRequired = []string{"nama", "merek", "plat_nomor", "kategori", "harga_harian", "harga_bulanan", "kapasitas", "transmisi", "bahan_bakar"}
	BookingRequired = []string{"kendaraan_id", "nama_penyewa", "no_hp", "tanggal_sewa", "durasi"}
	GalleryRequired = []string{"judul", "foto"}
)

// MissingFields returns the required fields absent from input, in declared
// order. Empty strings, zero numbers and false count as missing, matching
// what the frontend was built against.
func MissingFields(input map[string]interface{}, required []string) []string {
	var missing []string
	for _, field := range required {
		if isEmpty(input[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	default:
		return false
	}
}

// Int coerces a decoded JSON value to an integer. Strings are parsed,
// fractional numbers truncated, anything else becomes 0.
func Int(v interface{}) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool coerces a decoded JSON value to a boolean.
func Bool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "1"
	case float64:
		return t != 0
	default:
		return false
	}
}

// String returns v if it is a string, otherwise the fallback.
func String(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Date parses a rental date from the layouts the frontend sends. An
// unparseable value yields the zero time rather than an error.
func Date(v interface{}) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
