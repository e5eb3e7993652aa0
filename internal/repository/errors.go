// Package repository implements persistence for the catalog entities on
// top of database/sql. Sentinel errors defined here let handlers map
// failure modes onto HTTP statuses without inspecting SQL details.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when an id does not resolve to a row.
// Handlers translate this into a 404 response.
var ErrNotFound = errors.New("not found")

// ErrInsufficientFunds is returned by the purchase transaction when the
// client's balance is below the ticket price. No state changes occur.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrTicketSold is returned when a purchase targets a ticket whose
// client reference is already set. Handlers translate this into 409.
var ErrTicketSold = errors.New("ticket already sold")

// ErrInvalidAmount is returned by AddFunds for zero, negative or
// over-precision amounts. No partial credit is ever applied.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUsernameExists is returned when registration hits the unique
// username index.
var ErrUsernameExists = errors.New("username already exists")

// ErrDuplicateShowing is returned when a second showing is created for
// the same (theater, performance) pair. The uniqueness lives in the
// storage layer; this sentinel is the mapped application-level outcome.
var ErrDuplicateShowing = errors.New("showing already exists for this theater and performance")

// isDuplicate reports whether err is a MySQL duplicate-key violation.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
