package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkravets/theater-tickets/internal/model"
)

func TestRegister(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO clients").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u := model.User{Username: "jdoe", FirstName: "John", LastName: "Doe", Email: "jdoe@example.com"}
	client, err := repo.Register(context.Background(), &u, "s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, model.RoleUser, u.Role, "default role is USER")
	assert.NotEmpty(t, u.PasswordHash)
	assert.Equal(t, u.ID, client.UserID)
	assert.True(t, client.Money.IsZero(), "new accounts start with a zero balance")
	assert.Equal(t, "jdoe", client.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'jdoe'"))
	mock.ExpectRollback()

	u := model.User{Username: "jdoe"}
	_, err := repo.Register(context.Background(), &u, "s3cret-pass", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrUsernameExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterClientInsertFailureRollsBack(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO clients").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	u := model.User{Username: "jdoe"}
	_, err := repo.Register(context.Background(), &u, "s3cret-pass", bcrypt.MinCost)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "no client without its user")
}
