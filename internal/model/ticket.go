package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkravets/theater-tickets/internal/validate"
)

// Ticket is a sellable seat. Both references are nullable: a ticket may
// exist unscheduled (no showing) and unsold (no client). Listings order
// by place.
//
// Fields:
//
//	Price     - decimal, two fractional digits, non-negative, default 0.
//	Time      - time of day of the seat, HH:MM:SS, required.
//	Place     - seat label, non-empty.
//	ShowingID - scheduled showing, nil when unscheduled.
//	ClientID  - owning client, nil while unsold.
type Ticket struct {
	Meta
	Price     decimal.Decimal `json:"price"`
	Time      string          `json:"time"`
	Place     string          `json:"place"`
	ShowingID *uuid.UUID      `json:"showing_id"`
	ClientID  *uuid.UUID      `json:"client_id"`

	// Populated by repository joins for display; never written back.
	Showing *Showing `json:"showing,omitempty"`
}

// Validate checks all ticket invariants on create and save.
func (t Ticket) Validate() error {
	if err := t.Meta.Validate(); err != nil {
		return err
	}
	if err := validate.NonNegative("price", t.Price); err != nil {
		return err
	}
	if err := validate.TimeOfDay("time", t.Time); err != nil {
		return err
	}
	return validate.Required("place", t.Place)
}

func (t Ticket) String() string {
	showing := "unscheduled"
	if t.Showing != nil {
		showing = t.Showing.String()
	}
	return fmt.Sprintf("%s, %s, %s, %s", showing, t.Price, t.Time, t.Place)
}
