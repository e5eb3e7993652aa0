package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/theater-tickets/internal/validate"
)

func frozen(t *testing.T, at time.Time) {
	t.Helper()
	orig := validate.Now
	validate.Now = func() time.Time { return at }
	t.Cleanup(func() { validate.Now = orig })
}

func validTheater() Theater {
	return Theater{
		Meta:    NewMeta(),
		Title:   "Globe",
		Address: "21 New Globe Walk",
		Rating:  decimal.NewFromFloat(4.5),
	}
}

func TestMetaValidate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	frozen(t, now)

	m := NewMeta()
	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.NoError(t, m.Validate())

	m.Modified = now.Add(time.Minute)
	err := m.Validate()
	require.Error(t, err)
	ve, ok := validate.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "modified", ve.Field)
}

func TestMetaTouch(t *testing.T) {
	m := NewMeta()
	frozen(t, m.Created.Add(time.Hour))

	m.Touch()
	assert.Equal(t, m.Created.Add(time.Hour), m.Modified)
	assert.NoError(t, m.Validate(), "touched entity stays valid")
}

func TestTheaterValidate(t *testing.T) {
	assert.NoError(t, validTheater().Validate())

	t.Run("rating bounds", func(t *testing.T) {
		th := validTheater()
		th.Rating = decimal.Zero
		assert.NoError(t, th.Validate())
		th.Rating = decimal.NewFromInt(5)
		assert.NoError(t, th.Validate())
		th.Rating = decimal.NewFromFloat(5.5)
		assert.Error(t, th.Validate())
		th.Rating = decimal.NewFromInt(-1)
		assert.Error(t, th.Validate())
	})

	t.Run("required fields", func(t *testing.T) {
		th := validTheater()
		th.Title = " "
		assert.Error(t, th.Validate())

		th = validTheater()
		th.Address = ""
		assert.Error(t, th.Validate())
	})
}

func TestTheaterString(t *testing.T) {
	th := validTheater()
	assert.Equal(t, `"Globe", 21 New Globe Walk, rating - 4.5`, th.String())
}

func TestPerformanceValidate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	frozen(t, now)

	p := Performance{
		Meta:        NewMeta(),
		Title:       "Hamlet",
		Description: "The tragedy of the Prince of Denmark",
		Date:        time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, p.Validate())

	p.Date = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Error(t, p.Validate(), "past date is rejected")

	p.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, p.Validate(), "today is allowed")
}

func TestPerformanceString(t *testing.T) {
	p := Performance{Title: "Hamlet", Description: "A tragedy"}
	assert.Equal(t, `"Hamlet", A tragedy`, p.String())
}

func TestShowingValidate(t *testing.T) {
	s := Showing{
		CreatedOnly:   NewCreatedOnly(),
		TheaterID:     uuid.New(),
		PerformanceID: uuid.New(),
	}
	assert.NoError(t, s.Validate())

	s.TheaterID = uuid.Nil
	assert.Error(t, s.Validate())

	s.TheaterID = uuid.New()
	s.PerformanceID = uuid.Nil
	assert.Error(t, s.Validate())
}

func TestClientValidate(t *testing.T) {
	c := Client{Meta: NewMeta(), UserID: uuid.New(), Money: decimal.Zero}
	assert.NoError(t, c.Validate(), "zero balance is a valid starting state")

	c.Money = decimal.NewFromFloat(-0.01)
	assert.Error(t, c.Validate())

	c.Money = decimal.Zero
	c.UserID = uuid.Nil
	assert.Error(t, c.Validate())
}

func TestClientString(t *testing.T) {
	c := Client{Username: "jdoe", FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "jdoe John Doe", c.String())
}

func TestTicketValidate(t *testing.T) {
	tk := Ticket{
		Meta:  NewMeta(),
		Price: decimal.NewFromFloat(25.00),
		Time:  "19:30:00",
		Place: "A12",
	}
	assert.NoError(t, tk.Validate(), "unscheduled unsold ticket is valid")

	tk.Price = decimal.NewFromInt(-1)
	assert.Error(t, tk.Validate())

	tk.Price = decimal.Zero
	tk.Time = "19:30"
	assert.Error(t, tk.Validate())

	tk.Time = "19:30:00"
	tk.Place = ""
	assert.Error(t, tk.Validate())
}

func TestTicketString(t *testing.T) {
	tk := Ticket{Price: decimal.NewFromInt(25), Time: "19:30:00", Place: "A12"}
	assert.Equal(t, "unscheduled, 25, 19:30:00, A12", tk.String())

	tk.Showing = &Showing{
		Theater:     &Theater{Title: "Globe", Address: "London", Rating: decimal.NewFromInt(5)},
		Performance: &Performance{Title: "Hamlet", Description: "A tragedy"},
	}
	assert.Equal(t, `"Globe", London, rating - 5 - "Hamlet", A tragedy, 25, 19:30:00, A12`, tk.String())
}
