// Package repository contains the data access layer: one repository per
// collection, each a thin struct over *sql.DB with hand-written SQL.
// Sentinel errors defined here let handlers map storage outcomes onto the
// API's small error taxonomy (404 not-found, 400 duplicate, 500 everything
// else) without inspecting driver errors themselves.
package repository

import (
	"errors"
	"strings"
)

var (
	// ErrBookingNotFound indicates the booking id did not resolve.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrKostNotFound indicates the listing id did not resolve.
	ErrKostNotFound = errors.New("kost not found")

	// ErrFavoritNotFound indicates the favorite id did not resolve.
	ErrFavoritNotFound = errors.New("favorite not found")

	// ErrNotifikasiNotFound indicates the notification id did not resolve.
	ErrNotifikasiNotFound = errors.New("notification not found")

	// ErrAlreadyFavorited is returned when inserting a (user, kost) pair
	// that already exists. The unique index makes the check atomic, so two
	// concurrent identical requests cannot both insert.
	ErrAlreadyFavorited = errors.New("already in favorites")

	// ErrEmailExists is returned when registering an email already in use.
	ErrEmailExists = errors.New("email already exists")
)

// duplicateKey reports whether err is a MySQL duplicate-entry violation
// (error 1062) without importing the driver's error types everywhere.
func duplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "1062")
}
