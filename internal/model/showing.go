package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mkravets/theater-tickets/internal/validate"
)

// Showing links one performance to one theater: a scheduled run of the
// performance at that venue. The (theater, performance) pair is unique
// at the storage layer; a showing is immutable once created and carries
// no modified stamp.
type Showing struct {
	CreatedOnly
	TheaterID     uuid.UUID `json:"theater_id"`
	PerformanceID uuid.UUID `json:"performance_id"`

	// Populated by repository joins for display; never written back.
	Theater     *Theater     `json:"theater,omitempty"`
	Performance *Performance `json:"performance,omitempty"`
}

// Validate checks the showing invariants at creation time.
func (s Showing) Validate() error {
	if err := s.CreatedOnly.Validate(); err != nil {
		return err
	}
	if s.TheaterID == uuid.Nil {
		return &validate.Error{Field: "theater_id", Reason: "must reference a theater", Value: s.TheaterID}
	}
	if s.PerformanceID == uuid.Nil {
		return &validate.Error{Field: "performance_id", Reason: "must reference a performance", Value: s.PerformanceID}
	}
	return nil
}

func (s Showing) String() string {
	if s.Theater != nil && s.Performance != nil {
		return fmt.Sprintf("%s - %s", s.Theater, s.Performance)
	}
	return fmt.Sprintf("%s - %s", s.TheaterID, s.PerformanceID)
}
