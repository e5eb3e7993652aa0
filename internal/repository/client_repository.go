package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkravets/theater-tickets/internal/config"
	"github.com/mkravets/theater-tickets/internal/model"
	"github.com/mkravets/theater-tickets/internal/validate"
)

// ClientRepo persists client accounts. Username, first/last name and
// email are projected from the joined users row on every read; they are
// never written through this repository.
type ClientRepo struct{ db *sql.DB }

// NewClientRepo returns a ClientRepo bound to the given database.
func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{db: db} }

const clientJoin = `SELECT c.id, c.user_id, c.money, c.created, c.modified,
       u.username, u.first_name, u.last_name, u.email
FROM clients c
JOIN users u ON u.id = c.user_id`

// Create validates and inserts a client row.
func (r *ClientRepo) Create(ctx context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.Meta = model.NewMeta()
	}
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO clients (id, user_id, money, created, modified) VALUES (?,?,?,?,?)",
		c.ID.String(), c.UserID.String(), c.Money.StringFixed(2), c.Created, c.Modified)
	return err
}

// GetByID fetches a client with its derived identity fields.
func (r *ClientRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Client, error) {
	row := r.db.QueryRowContext(ctx, clientJoin+" WHERE c.id=? LIMIT 1", id.String())
	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return model.Client{}, ErrNotFound
	}
	return c, err
}

// GetByUserID fetches the client bound to a user identity.
func (r *ClientRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Client, error) {
	row := r.db.QueryRowContext(ctx, clientJoin+" WHERE c.user_id=? LIMIT 1", userID.String())
	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return model.Client{}, ErrNotFound
	}
	return c, err
}

// AddFunds credits the client balance. The amount must be strictly
// positive and within the configured digit limits; anything else fails
// with ErrInvalidAmount and leaves the balance untouched. The credit is
// a single storage-level increment so concurrent top-ups never lose an
// update.
func (r *ClientRepo) AddFunds(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal) error {
	if err := validate.Amount("money", amount, config.MoneyMaxDigits, config.MoneyDecimalPlaces); err != nil {
		ve, _ := validate.AsError(err)
		return fmt.Errorf("%w: %s", ErrInvalidAmount, ve.Reason)
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE clients SET money = money + ?, modified = UTC_TIMESTAMP() WHERE id = ?",
		amount.StringFixed(2), clientID.String())
	if err != nil {
		return err
	}
	return mustAffect(res)
}

func scanClient(s scanner) (model.Client, error) {
	var c model.Client
	var id, userID string
	var money []byte
	err := s.Scan(&id, &userID, &money, &c.Created, &c.Modified,
		&c.Username, &c.FirstName, &c.LastName, &c.Email)
	if err != nil {
		return model.Client{}, err
	}
	if c.ID, err = uuid.Parse(id); err != nil {
		return model.Client{}, err
	}
	if c.UserID, err = uuid.Parse(userID); err != nil {
		return model.Client{}, err
	}
	if c.Money, err = toDecimal(money); err != nil {
		return model.Client{}, err
	}
	return c, nil
}
