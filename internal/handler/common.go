// Package handler exposes the HTTP endpoints: public pages,
// registration and token exchange, profile and funding, catalog
// browsing, the purchase flow and the role-gated REST API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkravets/theater-tickets/internal/monitoring"
	"github.com/mkravets/theater-tickets/internal/repository"
	"github.com/mkravets/theater-tickets/internal/validate"
)

// writeErr translates repository and validation failures into JSON
// error responses. Validation failures carry the offending field so
// clients can re-render field-level messages.
func writeErr(c echo.Context, err error) error {
	if ve, ok := validate.AsError(err); ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Reason, "field": ve.Field})
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "field": "money"})
	case errors.Is(err, repository.ErrInsufficientFunds):
		return c.JSON(http.StatusPaymentRequired, echo.Map{"error": "insufficient funds"})
	case errors.Is(err, repository.ErrTicketSold),
		errors.Is(err, repository.ErrDuplicateShowing),
		errors.Is(err, repository.ErrUsernameExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// fundingOutcome labels a funding failure for the counter vector.
func fundingOutcome(err error) string {
	switch {
	case errors.Is(err, repository.ErrInvalidAmount):
		return monitoring.OutcomeInvalidAmount
	case errors.Is(err, repository.ErrNotFound):
		return monitoring.OutcomeNotFound
	}
	return monitoring.OutcomeError
}

// purchaseOutcome labels a purchase failure for the counter vector.
func purchaseOutcome(err error) string {
	switch {
	case errors.Is(err, repository.ErrTicketSold):
		return monitoring.OutcomeSold
	case errors.Is(err, repository.ErrInsufficientFunds):
		return monitoring.OutcomeInsufficientFunds
	case errors.Is(err, repository.ErrNotFound):
		return monitoring.OutcomeNotFound
	}
	return monitoring.OutcomeError
}

// pathID parses the :id route parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// pageParam reads the ?page query parameter, defaulting to 1. Invalid
// values fall back to 1; out-of-range values are clamped downstream.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
