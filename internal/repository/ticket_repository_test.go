package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/theater-tickets/internal/model"
)

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func ticketRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "price", "time", "place", "showing_id", "client_id", "created", "modified",
	})
}

func TestFreeByPerformance(t *testing.T) {
	db, mock := newMock(t)
	repo := NewTicketRepo(db)
	performanceID := uuid.New()
	showingID := uuid.New()
	now := time.Now().UTC()

	rows := ticketRows().
		AddRow(uuid.NewString(), []byte("25.00"), []byte("19:30:00"), "A1", showingID.String(), nil, now, now).
		AddRow(uuid.NewString(), []byte("30.00"), []byte("19:30:00"), "A2", showingID.String(), nil, now, now)

	mock.ExpectQuery("WHERE s\\.performance_id = \\? AND t\\.client_id IS NULL").
		WithArgs(performanceID.String()).
		WillReturnRows(rows)

	tickets, err := repo.FreeByPerformance(context.Background(), performanceID)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	for _, tk := range tickets {
		assert.Nil(t, tk.ClientID, "free tickets have no owner")
		require.NotNil(t, tk.ShowingID)
		assert.Equal(t, showingID, *tk.ShowingID)
	}
	assert.Equal(t, "A1", tickets[0].Place)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFreeByPerformanceEmpty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewTicketRepo(db)
	performanceID := uuid.New()

	mock.ExpectQuery("WHERE s\\.performance_id = \\? AND t\\.client_id IS NULL").
		WithArgs(performanceID.String()).
		WillReturnRows(ticketRows())

	tickets, err := repo.FreeByPerformance(context.Background(), performanceID)
	require.NoError(t, err)
	assert.Empty(t, tickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketCreateValidates(t *testing.T) {
	db, _ := newMock(t)
	repo := NewTicketRepo(db)

	tk := model.Ticket{Price: decimalFrom(t, "-1"), Time: "19:30:00", Place: "A1"}
	assert.Error(t, repo.Create(context.Background(), &tk), "negative price never reaches the database")

	tk = model.Ticket{Time: "late evening", Place: "A1"}
	assert.Error(t, repo.Create(context.Background(), &tk))
}
