package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/mkravets/theater-tickets/internal/middleware"
	"github.com/mkravets/theater-tickets/internal/monitoring"
	"github.com/mkravets/theater-tickets/internal/repository"
)

type ProfileHandler struct {
	Clients *repository.ClientRepo
	Tickets *repository.TicketRepo
}

func NewProfileHandler(clients *repository.ClientRepo, tickets *repository.TicketRepo) *ProfileHandler {
	return &ProfileHandler{Clients: clients, Tickets: tickets}
}

type fundsRequest struct {
	Money decimal.Decimal `json:"money"`
}

// Show returns the caller's client account together with the tickets
// they own.
func (h *ProfileHandler) Show(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()

	client, err := h.Clients.GetByUserID(ctx, userID)
	if err != nil {
		return writeErr(c, err)
	}
	tickets, err := h.Tickets.ListByClient(ctx, client.ID)
	if err != nil {
		return writeErr(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"client":  client,
		"tickets": tickets,
	})
}

// AddFunds credits the caller's balance. The amount is validated and
// applied as a single atomic increment.
func (h *ProfileHandler) AddFunds(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req fundsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()

	client, err := h.Clients.GetByUserID(ctx, userID)
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.Clients.AddFunds(ctx, client.ID, req.Money); err != nil {
		monitoring.RecordFunding(fundingOutcome(err))
		return writeErr(c, err)
	}
	monitoring.RecordFunding(monitoring.OutcomeSuccess)

	client, err = h.Clients.GetByID(ctx, client.ID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"client": client})
}
