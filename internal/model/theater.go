package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mkravets/theater-tickets/internal/validate"
)

// Rating bounds for theaters. The column is DECIMAL(3,2).
var (
	ratingMin = decimal.Zero
	ratingMax = decimal.NewFromInt(5)
)

// DefaultRating is assigned when a theater is created without one.
var DefaultRating = decimal.NewFromInt(5)

// Theater represents a venue. Theaters relate to performances
// many-to-many through Showing rows. Listings order by
// (rating, title, address) ascending.
//
// Fields:
//
//	Title   - venue name, non-empty.
//	Address - street address, non-empty.
//	Rating  - decimal in [0, 5], two fractional digits, default 5.
type Theater struct {
	Meta
	Title   string          `json:"title"`
	Address string          `json:"address"`
	Rating  decimal.Decimal `json:"rating"`
}

// Validate checks all theater invariants. It runs on create and on
// every subsequent save.
func (t Theater) Validate() error {
	if err := t.Meta.Validate(); err != nil {
		return err
	}
	if err := validate.Required("title", t.Title); err != nil {
		return err
	}
	if err := validate.Required("address", t.Address); err != nil {
		return err
	}
	return validate.Within("rating", t.Rating, ratingMin, ratingMax)
}

func (t Theater) String() string {
	return fmt.Sprintf("%q, %s, rating - %s", t.Title, t.Address, t.Rating)
}
