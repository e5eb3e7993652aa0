package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkravets/theater-tickets/internal/validate"
)

// Client is the ticket-buying account: a one-to-one wrapper around a
// user identity plus a stored-value balance. Username, first/last name
// and email are view-only projections of the linked user, read via a
// join and never stored on the clients row.
type Client struct {
	Meta
	UserID uuid.UUID       `json:"user_id"`
	Money  decimal.Decimal `json:"money"`

	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Validate checks the client invariants on create and save.
func (c Client) Validate() error {
	if err := c.Meta.Validate(); err != nil {
		return err
	}
	if c.UserID == uuid.Nil {
		return &validate.Error{Field: "user_id", Reason: "must reference a user", Value: c.UserID}
	}
	return validate.NonNegative("money", c.Money)
}

func (c Client) String() string {
	return fmt.Sprintf("%s %s %s", c.Username, c.FirstName, c.LastName)
}
