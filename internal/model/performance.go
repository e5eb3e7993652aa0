package model

import (
	"fmt"
	"time"

	"github.com/mkravets/theater-tickets/internal/validate"
)

// Performance represents a show or production that can be scheduled at
// any number of theaters through Showing rows. Listings order by title.
//
// Fields:
//
//	Title       - production title, non-empty.
//	Description - production description, non-empty.
//	Date        - calendar date; must not lie in the past at write time.
type Performance struct {
	Meta
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Validate checks all performance invariants on create and save.
func (p Performance) Validate() error {
	if err := p.Meta.Validate(); err != nil {
		return err
	}
	if err := validate.Required("title", p.Title); err != nil {
		return err
	}
	if err := validate.Required("description", p.Description); err != nil {
		return err
	}
	return validate.NotPast("date", p.Date)
}

func (p Performance) String() string {
	return fmt.Sprintf("%q, %s", p.Title, p.Description)
}
