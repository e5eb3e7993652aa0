package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkravets/theater-tickets/internal/model"
)

// TicketRepo persists tickets and implements the purchase transaction,
// the single place in the system where two rows are mutated as one unit.
type TicketRepo struct{ db *sql.DB }

// NewTicketRepo returns a TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

const ticketColumns = "id, price, time, place, showing_id, client_id, created, modified"

// Create validates and inserts a ticket. Both references may be nil: a
// ticket can exist unsold and unscheduled.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	if t.ID == uuid.Nil {
		t.Meta = model.NewMeta()
	}
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tickets (id, price, time, place, showing_id, client_id, created, modified) VALUES (?,?,?,?,?,?,?,?)",
		t.ID.String(), t.Price.StringFixed(2), t.Time, t.Place,
		uuidArg(t.ShowingID), uuidArg(t.ClientID), t.Created, t.Modified)
	return err
}

// Update re-validates every invariant before persisting.
func (r *TicketRepo) Update(ctx context.Context, t *model.Ticket) error {
	t.Touch()
	if err := t.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE tickets SET price=?, time=?, place=?, showing_id=?, client_id=?, modified=? WHERE id=?",
		t.Price.StringFixed(2), t.Time, t.Place,
		uuidArg(t.ShowingID), uuidArg(t.ClientID), t.Modified, t.ID.String())
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// Delete removes a ticket.
func (r *TicketRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tickets WHERE id=?", id.String())
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// GetByID fetches a single ticket or ErrNotFound.
func (r *TicketRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Ticket, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+ticketColumns+" FROM tickets WHERE id=? LIMIT 1", id.String())
	t, err := scanTicket(row)
	if err == sql.ErrNoRows {
		return model.Ticket{}, ErrNotFound
	}
	return t, err
}

// List returns one page of tickets ordered by place.
func (r *TicketRepo) List(ctx context.Context, page int) (Page[model.Ticket], error) {
	total, err := r.Count(ctx)
	if err != nil {
		return Page[model.Ticket]{}, err
	}
	page, pages := ClampPage(page, total, DefaultPageSize)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+ticketColumns+" FROM tickets ORDER BY place LIMIT ? OFFSET ?",
		DefaultPageSize, (page-1)*DefaultPageSize)
	if err != nil {
		return Page[model.Ticket]{}, err
	}
	defer rows.Close()
	items := make([]model.Ticket, 0, DefaultPageSize)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return Page[model.Ticket]{}, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return Page[model.Ticket]{}, err
	}
	return Page[model.Ticket]{Items: items, Number: page, TotalPages: pages, TotalItems: total}, nil
}

// FreeByPerformance collects, for every showing of the performance, the
// tickets referencing that showing whose client reference is unset.
func (r *TicketRepo) FreeByPerformance(ctx context.Context, performanceID uuid.UUID) ([]model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.price, t.time, t.place, t.showing_id, t.client_id, t.created, t.modified
		 FROM tickets t
		 JOIN showings s ON s.id = t.showing_id
		 WHERE s.performance_id = ? AND t.client_id IS NULL`,
		performanceID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// ListByClient returns the tickets owned by a client, ordered by place.
func (r *TicketRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+ticketColumns+" FROM tickets WHERE client_id=? ORDER BY place", clientID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// Count returns the number of tickets.
func (r *TicketRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tickets").Scan(&n)
	return n, err
}

// Purchase binds the ticket to the client and debits the price from the
// client balance inside one transaction. Both row locks are taken with
// SELECT ... FOR UPDATE so concurrent purchasers of the same ticket are
// serialized by the store; either both mutations commit or neither does.
//
// Outcomes: ErrNotFound when either row is missing, ErrTicketSold when
// the ticket already has an owner, ErrInsufficientFunds when the balance
// is below the price. On every failure the transaction rolls back and
// no state change is observable.
func (r *TicketRepo) Purchase(ctx context.Context, ticketID, clientID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var price []byte
	var owner sql.NullString
	err = tx.QueryRowContext(ctx,
		"SELECT price, client_id FROM tickets WHERE id = ? FOR UPDATE",
		ticketID.String()).Scan(&price, &owner)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if owner.Valid {
		return ErrTicketSold
	}

	var money []byte
	err = tx.QueryRowContext(ctx,
		"SELECT money FROM clients WHERE id = ? FOR UPDATE",
		clientID.String()).Scan(&money)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	ticketPrice, err := toDecimal(price)
	if err != nil {
		return err
	}
	balance, err := toDecimal(money)
	if err != nil {
		return err
	}
	if balance.LessThan(ticketPrice) {
		return ErrInsufficientFunds
	}

	if _, err = tx.ExecContext(ctx,
		"UPDATE tickets SET client_id = ?, modified = UTC_TIMESTAMP() WHERE id = ?",
		clientID.String(), ticketID.String()); err != nil {
		return fmt.Errorf("assign ticket: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		"UPDATE clients SET money = money - ?, modified = UTC_TIMESTAMP() WHERE id = ?",
		ticketPrice.StringFixed(2), clientID.String()); err != nil {
		return fmt.Errorf("debit client: %w", err)
	}
	return tx.Commit()
}

// uuidArg converts an optional UUID reference into a driver argument.
func uuidArg(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func scanTicket(s scanner) (model.Ticket, error) {
	var t model.Ticket
	var id string
	var price, timeOfDay []byte
	var showingID, clientID sql.NullString
	err := s.Scan(&id, &price, &timeOfDay, &t.Place, &showingID, &clientID, &t.Created, &t.Modified)
	if err != nil {
		return model.Ticket{}, err
	}
	if t.ID, err = uuid.Parse(id); err != nil {
		return model.Ticket{}, err
	}
	if t.Price, err = toDecimal(price); err != nil {
		return model.Ticket{}, err
	}
	t.Time = string(timeOfDay)
	if t.ShowingID, err = toUUIDPtr(showingID); err != nil {
		return model.Ticket{}, err
	}
	if t.ClientID, err = toUUIDPtr(clientID); err != nil {
		return model.Ticket{}, err
	}
	return t, nil
}
