package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/theater-tickets/internal/middleware"
	"github.com/mkravets/theater-tickets/internal/monitoring"
	"github.com/mkravets/theater-tickets/internal/queue"
	"github.com/mkravets/theater-tickets/internal/repository"
	"github.com/mkravets/theater-tickets/internal/service"
)

// BuyHandler drives the two-step purchase flow: review the ticket,
// then commit the atomic assign-and-debit.
type BuyHandler struct {
	Tickets *repository.TicketRepo
	Clients *repository.ClientRepo
}

func NewBuyHandler(tickets *repository.TicketRepo, clients *repository.ClientRepo) *BuyHandler {
	return &BuyHandler{Tickets: tickets, Clients: clients}
}

// Show presents the ticket alongside the caller's balance so the
// client can confirm before committing.
func (h *BuyHandler) Show(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx := c.Request().Context()

	ticket, err := h.Tickets.GetByID(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}
	client, err := h.Clients.GetByUserID(ctx, userID)
	if err != nil {
		return writeErr(c, err)
	}

	sold := ticket.ClientID != nil
	owned := sold && *ticket.ClientID == client.ID
	return c.JSON(http.StatusOK, echo.Map{
		"ticket": ticket,
		"client": client,
		"sold":   sold,
		"owned":  owned,
	})
}

// Buy commits the purchase. The repository runs the whole exchange in
// one transaction; this handler only maps outcomes to status codes
// and emits the purchase event after commit.
func (h *BuyHandler) Buy(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx := c.Request().Context()

	client, err := h.Clients.GetByUserID(ctx, userID)
	if err != nil {
		return writeErr(c, err)
	}
	if err := h.Tickets.Purchase(ctx, id, client.ID); err != nil {
		monitoring.RecordPurchase(purchaseOutcome(err))
		return writeErr(c, err)
	}
	monitoring.RecordPurchase(monitoring.OutcomeSuccess)

	ticket, err := h.Tickets.GetByID(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}
	client, err = h.Clients.GetByID(ctx, client.ID)
	if err != nil {
		return writeErr(c, err)
	}

	event := queue.TicketPurchasedEvent{
		TicketID:    ticket.ID.String(),
		ClientID:    client.ID.String(),
		Username:    client.Username,
		Price:       ticket.Price.StringFixed(2),
		Place:       ticket.Place,
		Time:        ticket.Time,
		PurchasedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if ticket.ShowingID != nil {
		event.ShowingID = ticket.ShowingID.String()
	}
	// Best effort: the purchase is committed, a broker outage only
	// loses the notification.
	_ = service.PublishTicketPurchased(ctx, event)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "purchased",
		"ticket":  ticket,
		"client":  client,
	})
}
