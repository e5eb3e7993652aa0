package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const creditClient = "UPDATE clients SET money = money + ?, modified = UTC_TIMESTAMP() WHERE id = ?"

func timeNow() time.Time { return time.Now().UTC() }

func TestAddFunds(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepo(db)
	clientID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(creditClient)).
		WithArgs("50.00", clientID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddFunds(context.Background(), clientID, decimal.NewFromInt(50))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFundsRejectsBadAmounts(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepo(db)
	clientID := uuid.New()

	for _, raw := range []string{"0", "-10", "1.005", "123456789.01"} {
		amount, err := decimal.NewFromString(raw)
		require.NoError(t, err)

		err = repo.AddFunds(context.Background(), clientID, amount)
		assert.ErrorIs(t, err, ErrInvalidAmount, raw)
	}
	// No SQL was issued for any rejected amount.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFundsUnknownClient(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepo(db)
	clientID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(creditClient)).
		WithArgs("25.50", clientID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AddFunds(context.Background(), clientID, decimal.NewFromFloat(25.50))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepo(db)
	clientID, userID := uuid.New(), uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "money", "created", "modified",
		"username", "first_name", "last_name", "email",
	}).AddRow(clientID.String(), userID.String(), []byte("13.37"),
		timeNow(), timeNow(), "jdoe", "John", "Doe", "jdoe@example.com")

	mock.ExpectQuery("SELECT c\\.id, c\\.user_id, c\\.money").
		WithArgs(userID.String()).
		WillReturnRows(rows)

	c, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, clientID, c.ID)
	assert.Equal(t, userID, c.UserID)
	assert.True(t, c.Money.Equal(decimal.NewFromFloat(13.37)))
	assert.Equal(t, "jdoe John Doe", c.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
