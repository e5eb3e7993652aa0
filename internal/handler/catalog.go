package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/theater-tickets/internal/repository"
)

// CatalogHandler serves the browsable listings and detail pages that
// authenticated users see before buying.
type CatalogHandler struct {
	Theaters     *repository.TheaterRepo
	Performances *repository.PerformanceRepo
	Showings     *repository.ShowingRepo
	Tickets      *repository.TicketRepo
}

func NewCatalogHandler(
	theaters *repository.TheaterRepo,
	performances *repository.PerformanceRepo,
	showings *repository.ShowingRepo,
	tickets *repository.TicketRepo,
) *CatalogHandler {
	return &CatalogHandler{
		Theaters:     theaters,
		Performances: performances,
		Showings:     showings,
		Tickets:      tickets,
	}
}

// ListTheaters returns one page of theaters ordered by rating, title
// and address. Out-of-range ?page values are clamped, never 404.
func (h *CatalogHandler) ListTheaters(c echo.Context) error {
	page, err := h.Theaters.List(c.Request().Context(), pageParam(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) GetTheater(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	theater, err := h.Theaters.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, theater)
}

func (h *CatalogHandler) ListPerformances(c echo.Context) error {
	page, err := h.Performances.List(c.Request().Context(), pageParam(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetPerformance returns the performance with its showings and the
// tickets still available for it.
func (h *CatalogHandler) GetPerformance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx := c.Request().Context()

	performance, err := h.Performances.GetByID(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}
	showings, err := h.Showings.ListByPerformance(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}
	free, err := h.Tickets.FreeByPerformance(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"performance":  performance,
		"showings":     showings,
		"free_tickets": free,
	})
}

func (h *CatalogHandler) ListTickets(c echo.Context) error {
	page, err := h.Tickets.List(c.Request().Context(), pageParam(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *CatalogHandler) GetTicket(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ticket, err := h.Tickets.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, ticket)
}
