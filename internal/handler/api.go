package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/mkravets/theater-tickets/internal/model"
	"github.com/mkravets/theater-tickets/internal/repository"
)

// APIHandler is the role-gated REST surface. Read methods require any
// authenticated user; writes require the admin role, enforced by the
// route group's guard middleware.
type APIHandler struct {
	Theaters     *repository.TheaterRepo
	Performances *repository.PerformanceRepo
	Showings     *repository.ShowingRepo
	Tickets      *repository.TicketRepo
}

func NewAPIHandler(
	theaters *repository.TheaterRepo,
	performances *repository.PerformanceRepo,
	showings *repository.ShowingRepo,
	tickets *repository.TicketRepo,
) *APIHandler {
	return &APIHandler{
		Theaters:     theaters,
		Performances: performances,
		Showings:     showings,
		Tickets:      tickets,
	}
}

type theaterRequest struct {
	Title   string           `json:"title"`
	Address string           `json:"address"`
	Rating  *decimal.Decimal `json:"rating"`
}

type performanceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type showingRequest struct {
	TheaterID     uuid.UUID `json:"theater_id"`
	PerformanceID uuid.UUID `json:"performance_id"`
}

type ticketRequest struct {
	Price     decimal.Decimal `json:"price"`
	Time      string          `json:"time"`
	Place     string          `json:"place"`
	ShowingID *uuid.UUID      `json:"showing_id"`
}

// --- theaters ---

func (h *APIHandler) CreateTheater(c echo.Context) error {
	var req theaterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t := model.Theater{Title: req.Title, Address: req.Address, Rating: model.DefaultRating}
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if err := h.Theaters.Create(c.Request().Context(), &t); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *APIHandler) UpdateTheater(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx := c.Request().Context()

	t, err := h.Theaters.GetByID(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}
	var req theaterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t.Title = req.Title
	t.Address = req.Address
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if err := h.Theaters.Update(ctx, &t); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *APIHandler) DeleteTheater(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err := h.Theaters.Delete(c.Request().Context(), id); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// --- performances ---

func (h *APIHandler) CreatePerformance(c echo.Context) error {
	var req performanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD", "field": "date"})
	}
	p := model.Performance{Title: req.Title, Description: req.Description, Date: date}
	if err := h.Performances.Create(c.Request().Context(), &p); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *APIHandler) UpdatePerformance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx := c.Request().Context()

	p, err := h.Performances.GetByID(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}
	var req performanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD", "field": "date"})
	}
	p.Title = req.Title
	p.Description = req.Description
	p.Date = date
	if err := h.Performances.Update(ctx, &p); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *APIHandler) DeletePerformance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err := h.Performances.Delete(c.Request().Context(), id); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// --- showings ---

func (h *APIHandler) CreateShowing(c echo.Context) error {
	var req showingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s := model.Showing{TheaterID: req.TheaterID, PerformanceID: req.PerformanceID}
	if err := h.Showings.Create(c.Request().Context(), &s); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *APIHandler) GetShowing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	s, err := h.Showings.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *APIHandler) DeleteShowing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err := h.Showings.Delete(c.Request().Context(), id); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// --- tickets ---

func (h *APIHandler) CreateTicket(c echo.Context) error {
	var req ticketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t := model.Ticket{Price: req.Price, Time: req.Time, Place: req.Place, ShowingID: req.ShowingID}
	if err := h.Tickets.Create(c.Request().Context(), &t); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// UpdateTicket edits schedule and pricing only. Ownership is changed
// through the purchase flow, never through the API.
func (h *APIHandler) UpdateTicket(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	ctx := c.Request().Context()

	t, err := h.Tickets.GetByID(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}
	var req ticketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t.Price = req.Price
	t.Time = req.Time
	t.Place = req.Place
	t.ShowingID = req.ShowingID
	if err := h.Tickets.Update(ctx, &t); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *APIHandler) DeleteTicket(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if err := h.Tickets.Delete(c.Request().Context(), id); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
