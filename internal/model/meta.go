// Package model defines the persisted entity shapes of the ticketing
// catalog and their invariant checks. Shared field groups are composed
// by struct embedding; no entity overrides behavior of another.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/theater-tickets/internal/validate"
)

// Meta is the field group embedded by every mutable entity: a random
// globally-unique identifier assigned at creation and immutable
// afterwards, plus created/modified stamps.
type Meta struct {
	ID       uuid.UUID `json:"id"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// NewMeta assigns a fresh UUID and sets both stamps to the current time.
func NewMeta() Meta {
	now := validate.Now()
	return Meta{ID: uuid.New(), Created: now, Modified: now}
}

// Touch advances the modified stamp. Called before every update.
func (m *Meta) Touch() { m.Modified = validate.Now() }

// Validate enforces the temporal invariants on both stamps. A created
// or modified time strictly in the future is rejected on every save.
func (m Meta) Validate() error {
	if err := validate.NotFuture("created", m.Created); err != nil {
		return err
	}
	return validate.NotFuture("modified", m.Modified)
}

// CreatedOnly is the field group for immutable association rows: a
// UUID key and a creation stamp, no modified column.
type CreatedOnly struct {
	ID      uuid.UUID `json:"id"`
	Created time.Time `json:"created"`
}

// NewCreatedOnly assigns a fresh UUID and the current creation stamp.
func NewCreatedOnly() CreatedOnly {
	return CreatedOnly{ID: uuid.New(), Created: validate.Now()}
}

// Validate enforces the temporal invariant on the creation stamp.
func (m CreatedOnly) Validate() error {
	return validate.NotFuture("created", m.Created)
}
