package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/theater-tickets/internal/repository"
)

type HomeHandler struct {
	Theaters     *repository.TheaterRepo
	Performances *repository.PerformanceRepo
	Tickets      *repository.TicketRepo
}

func NewHomeHandler(t *repository.TheaterRepo, p *repository.PerformanceRepo, tk *repository.TicketRepo) *HomeHandler {
	return &HomeHandler{Theaters: t, Performances: p, Tickets: tk}
}

// Index is the landing page: headline counts for the catalog.
func (h *HomeHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	theaters, err := h.Theaters.Count(ctx)
	if err != nil {
		return writeErr(c, err)
	}
	performances, err := h.Performances.Count(ctx)
	if err != nil {
		return writeErr(c, err)
	}
	tickets, err := h.Tickets.Count(ctx)
	if err != nil {
		return writeErr(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"theaters":     theaters,
		"performances": performances,
		"tickets":      tickets,
	})
}
