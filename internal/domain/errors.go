package domain

import (
	"errors"
	"strings"
)

var (
	// ErrVehicleUnavailable rejects a booking against a vehicle that is not
	// Tersedia. Maps to 400.
	ErrVehicleUnavailable = errors.New("Kendaraan tidak tersedia")

	// ErrInvalidCredentials maps to 401.
	ErrInvalidCredentials = errors.New("Username atau password salah")

	// ErrInvalidVehicleStatus rejects status values outside the three-value
	// enum. Maps to 400.
	ErrInvalidVehicleStatus = errors.New("Status kendaraan tidak valid")
)

// NotFoundError carries the resource-specific message shown to the caller.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

var ErrVehicleNotFound = &NotFoundError{Message: "Kendaraan tidak ditemukan"}

// ValidationError names every offending field, in the order of the declared
// required-field list.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Field wajib tidak diisi: " + strings.Join(e.Fields, ", ")
}
