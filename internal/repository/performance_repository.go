package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mkravets/theater-tickets/internal/model"
)

// PerformanceRepo provides CRUD and listing access to performances.
type PerformanceRepo struct{ db *sql.DB }

// NewPerformanceRepo returns a PerformanceRepo bound to the database.
func NewPerformanceRepo(db *sql.DB) *PerformanceRepo { return &PerformanceRepo{db: db} }

const performanceColumns = "id, title, description, date, created, modified"

// Create validates and inserts a performance.
func (r *PerformanceRepo) Create(ctx context.Context, p *model.Performance) error {
	if p.ID == uuid.Nil {
		p.Meta = model.NewMeta()
	}
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO performances (id, title, description, date, created, modified) VALUES (?,?,?,?,?,?)",
		p.ID.String(), p.Title, p.Description, p.Date.Format("2006-01-02"), p.Created, p.Modified)
	return err
}

// Update re-validates all invariants before persisting; the past-date
// rule applies to updates exactly as it does to creation.
func (r *PerformanceRepo) Update(ctx context.Context, p *model.Performance) error {
	p.Touch()
	if err := p.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE performances SET title=?, description=?, date=?, modified=? WHERE id=?",
		p.Title, p.Description, p.Date.Format("2006-01-02"), p.Modified, p.ID.String())
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// Delete removes a performance; its showings cascade.
func (r *PerformanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM performances WHERE id=?", id.String())
	if err != nil {
		return err
	}
	return mustAffect(res)
}

// GetByID fetches a single performance or ErrNotFound.
func (r *PerformanceRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Performance, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+performanceColumns+" FROM performances WHERE id=? LIMIT 1", id.String())
	p, err := scanPerformance(row)
	if err == sql.ErrNoRows {
		return model.Performance{}, ErrNotFound
	}
	return p, err
}

// List returns one page of performances ordered by title.
func (r *PerformanceRepo) List(ctx context.Context, page int) (Page[model.Performance], error) {
	total, err := r.Count(ctx)
	if err != nil {
		return Page[model.Performance]{}, err
	}
	page, pages := ClampPage(page, total, DefaultPageSize)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+performanceColumns+" FROM performances ORDER BY title LIMIT ? OFFSET ?",
		DefaultPageSize, (page-1)*DefaultPageSize)
	if err != nil {
		return Page[model.Performance]{}, err
	}
	defer rows.Close()
	items := make([]model.Performance, 0, DefaultPageSize)
	for rows.Next() {
		p, err := scanPerformance(rows)
		if err != nil {
			return Page[model.Performance]{}, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return Page[model.Performance]{}, err
	}
	return Page[model.Performance]{Items: items, Number: page, TotalPages: pages, TotalItems: total}, nil
}

// Count returns the number of performances.
func (r *PerformanceRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM performances").Scan(&n)
	return n, err
}

func scanPerformance(s scanner) (model.Performance, error) {
	var p model.Performance
	var id string
	if err := s.Scan(&id, &p.Title, &p.Description, &p.Date, &p.Created, &p.Modified); err != nil {
		return model.Performance{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return model.Performance{}, err
	}
	p.ID = parsed
	return p, nil
}
