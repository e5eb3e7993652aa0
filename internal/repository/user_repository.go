package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkravets/theater-tickets/internal/model"
	"github.com/mkravets/theater-tickets/internal/utils"
)

// UserRepo persists authentication identities and handles registration,
// which creates the user and its client account in one transaction.
type UserRepo struct{ db *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = "id, username, first_name, last_name, email, password_hash, role, created_at, updated_at"

// Register creates a user identity plus its bound client with a zero
// balance. Both inserts run in one transaction; hitting the unique
// username index rolls everything back with ErrUsernameExists.
func (r *UserRepo) Register(ctx context.Context, u *model.User, password string, cost int) (model.Client, error) {
	u.Username = strings.TrimSpace(u.Username)
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if err := u.Validate(); err != nil {
		return model.Client{}, err
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.Client{}, err
	}
	u.PasswordHash = hash

	client := model.Client{Meta: model.NewMeta(), UserID: u.ID, Money: decimal.Zero}
	if err := client.Validate(); err != nil {
		return model.Client{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Client{}, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO users (id, username, first_name, last_name, email, password_hash, role) VALUES (?,?,?,?,?,?,?)",
		u.ID.String(), u.Username, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role)
	if isDuplicate(err) {
		return model.Client{}, ErrUsernameExists
	}
	if err != nil {
		return model.Client{}, err
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO clients (id, user_id, money, created, modified) VALUES (?,?,?,?,?)",
		client.ID.String(), client.UserID.String(), client.Money.StringFixed(2),
		client.Created, client.Modified)
	if err != nil {
		return model.Client{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Client{}, err
	}
	client.Username = u.Username
	client.FirstName = u.FirstName
	client.LastName = u.LastName
	client.Email = u.Email
	return client, nil
}

// GetByUsername fetches a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username=? LIMIT 1", strings.TrimSpace(username))
	return scanUser(row)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id.String())
	return scanUser(row)
}

func scanUser(s scanner) (model.User, error) {
	var u model.User
	var id string
	err := s.Scan(&id, &u.Username, &u.FirstName, &u.LastName, &u.Email,
		&u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	if u.ID, err = uuid.Parse(id); err != nil {
		return model.User{}, err
	}
	return u, nil
}
