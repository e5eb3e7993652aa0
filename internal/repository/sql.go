package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// toDecimal parses a DECIMAL column scanned as raw bytes.
func toDecimal(b []byte) (decimal.Decimal, error) {
	if len(b) == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(b))
}

// toUUIDPtr parses a nullable CHAR(36) column into a *uuid.UUID.
func toUUIDPtr(ns sql.NullString) (*uuid.UUID, error) {
	if !ns.Valid {
		return nil, nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
