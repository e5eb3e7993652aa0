// Package monitoring exposes Prometheus counters for the money-moving
// operations. Outcome labels cover both sides of each decision so
// rejected purchases and invalid top-ups stay visible.
package monitoring

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Purchase outcomes.
const (
	OutcomeSuccess           = "success"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeSold              = "sold"
	OutcomeNotFound          = "not_found"
	OutcomeInvalidAmount     = "invalid_amount"
	OutcomeError             = "error"
)

var (
	purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchases_total",
			Help: "Ticket purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	funding = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_funding_total",
			Help: "Account funding attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordPurchase counts one purchase attempt.
func RecordPurchase(outcome string) { purchases.WithLabelValues(outcome).Inc() }

// RecordFunding counts one funding attempt.
func RecordFunding(outcome string) { funding.WithLabelValues(outcome).Inc() }

// Handler serves the Prometheus scrape endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
