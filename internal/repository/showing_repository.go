package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mkravets/theater-tickets/internal/model"
)

// ShowingRepo persists the theater-performance association rows.
// Showings are immutable once created; there is no update path.
type ShowingRepo struct{ db *sql.DB }

// NewShowingRepo returns a ShowingRepo bound to the given database.
func NewShowingRepo(db *sql.DB) *ShowingRepo { return &ShowingRepo{db: db} }

// Create validates and inserts a showing. The (theater, performance)
// pair is not pre-checked in application code: the unique index decides,
// and a duplicate-key failure surfaces as ErrDuplicateShowing.
func (r *ShowingRepo) Create(ctx context.Context, s *model.Showing) error {
	if s.ID == uuid.Nil {
		s.CreatedOnly = model.NewCreatedOnly()
	}
	if err := s.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO showings (id, theater_id, performance_id, created) VALUES (?,?,?,?)",
		s.ID.String(), s.TheaterID.String(), s.PerformanceID.String(), s.Created)
	if isDuplicate(err) {
		return ErrDuplicateShowing
	}
	return err
}

// Delete removes a showing; dependent tickets cascade.
func (r *ShowingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM showings WHERE id=?", id.String())
	if err != nil {
		return err
	}
	return mustAffect(res)
}

const showingJoin = `SELECT s.id, s.theater_id, s.performance_id, s.created,
       t.id, t.title, t.address, t.rating, t.created, t.modified,
       p.id, p.title, p.description, p.date, p.created, p.modified
FROM showings s
JOIN theaters t ON t.id = s.theater_id
JOIN performances p ON p.id = s.performance_id`

// GetByID fetches a showing together with its theater and performance
// for display, or ErrNotFound.
func (r *ShowingRepo) GetByID(ctx context.Context, id uuid.UUID) (model.Showing, error) {
	row := r.db.QueryRowContext(ctx, showingJoin+" WHERE s.id=? LIMIT 1", id.String())
	s, err := scanShowing(row)
	if err == sql.ErrNoRows {
		return model.Showing{}, ErrNotFound
	}
	return s, err
}

// ListByPerformance returns every showing that schedules the given
// performance, with theaters loaded for display.
func (r *ShowingRepo) ListByPerformance(ctx context.Context, performanceID uuid.UUID) ([]model.Showing, error) {
	rows, err := r.db.QueryContext(ctx, showingJoin+" WHERE s.performance_id=?", performanceID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	showings := make([]model.Showing, 0)
	for rows.Next() {
		s, err := scanShowing(rows)
		if err != nil {
			return nil, err
		}
		showings = append(showings, s)
	}
	return showings, rows.Err()
}

func scanShowing(sc scanner) (model.Showing, error) {
	var s model.Showing
	var sid, tid, pid string
	var theater model.Theater
	var performance model.Performance
	var theaterID, performanceID string
	var rating []byte
	err := sc.Scan(&sid, &tid, &pid, &s.Created,
		&theaterID, &theater.Title, &theater.Address, &rating, &theater.Created, &theater.Modified,
		&performanceID, &performance.Title, &performance.Description, &performance.Date,
		&performance.Created, &performance.Modified)
	if err != nil {
		return model.Showing{}, err
	}
	if s.ID, err = uuid.Parse(sid); err != nil {
		return model.Showing{}, err
	}
	if s.TheaterID, err = uuid.Parse(tid); err != nil {
		return model.Showing{}, err
	}
	if s.PerformanceID, err = uuid.Parse(pid); err != nil {
		return model.Showing{}, err
	}
	theater.ID = s.TheaterID
	performance.ID = s.PerformanceID
	if theater.Rating, err = toDecimal(rating); err != nil {
		return model.Showing{}, err
	}
	s.Theater = &theater
	s.Performance = &performance
	return s, nil
}
