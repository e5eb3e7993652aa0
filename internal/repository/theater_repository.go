package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mkravets/theater-tickets/internal/model"
)

// TheaterRepo provides CRUD and listing access to the theaters table.
type TheaterRepo struct{ db *sql.DB }

// NewTheaterRepo returns a TheaterRepo bound to the given database.
func NewTheaterRepo(db *sql.DB) *TheaterRepo { return &TheaterRepo{db: db} }

const theaterColumns = "id, title, address, rating, created, modified"

// Create validates and inserts a theater. A zero Meta is populated with
// a fresh UUID and current stamps.
func (r *TheaterRepo) Create(ctx context.Context, t *model.Theater) error {
	if t.ID == uuid.Nil {
		t.Meta = model.NewMeta()
	}
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO theaters (id, title, address, rating, created, modified) VALUES (?,?,?,?,?,?)",
		t.ID.String(), t.Title, t.Address, t.Rating.StringFixed(2), t.Created, t.Modified)
	return err
}

// Update re-validates every invariant and persists the row. Saving an
// entity that became invalid through editing fails here, not only at
// creation.
func (r *TheaterRepo) Update(ctx context.Context, t *model.Theater) error {
	t.Touch()
	if err := t.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE theaters SET title=?, address=?, rating=?, modified=? WHERE id=?",
		t.Title, t.Address, t.Rating.StringFixed(2), t.Modified, t.ID.String())
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// Delete removes a theater; its showings cascade at the storage layer.
func (r *TheaterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM theaters WHERE id=?", id.String())
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// GetByID fetches a single theater or ErrNotFound.
func (r *TheaterRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Theater, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+theaterColumns+" FROM theaters WHERE id=? LIMIT 1", id.String())
	t, err := scanTheater(row)
	if err == sql.ErrNoRows {
		return model.Theater{}, ErrNotFound
	}
	return t, err
}

// List returns one page of theaters ordered by rating, title, address.
// Out-of-range page numbers clamp to the nearest valid page.
func (r *TheaterRepo) List(ctx context.Context, page int) (Page[model.Theater], error) {
	total, err := r.Count(ctx)
	if err != nil {
		return Page[model.Theater]{}, err
	}
	page, pages := ClampPage(page, total, DefaultPageSize)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+theaterColumns+" FROM theaters ORDER BY rating, title, address LIMIT ? OFFSET ?",
		DefaultPageSize, (page-1)*DefaultPageSize)
	if err != nil {
		return Page[model.Theater]{}, err
	}
	defer rows.Close()
	items := make([]model.Theater, 0, DefaultPageSize)
	for rows.Next() {
		t, err := scanTheater(rows)
		if err != nil {
			return Page[model.Theater]{}, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return Page[model.Theater]{}, err
	}
	return Page[model.Theater]{Items: items, Number: page, TotalPages: pages, TotalItems: total}, nil
}

// Count returns the number of theaters, used by the homepage.
func (r *TheaterRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM theaters").Scan(&n)
	return n, err
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanTheater(s scanner) (model.Theater, error) {
	var t model.Theater
	var id string
	var rating []byte
	if err := s.Scan(&id, &t.Title, &t.Address, &rating, &t.Created, &t.Modified); err != nil {
		return model.Theater{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return model.Theater{}, err
	}
	t.ID = parsed
	if t.Rating, err = toDecimal(rating); err != nil {
		return model.Theater{}, err
	}
	return t, nil
}

// mustAffect maps a zero-row result onto ErrNotFound.
func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
