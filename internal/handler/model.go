package handler

import (
	"time"

	"github.com/fundsim/fund-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulationRequest is the JSON body of POST /simulate.
type SimulationRequest struct {
	HorizonMonths     int             `json:"horizon_months"`
	HorizonYears      int             `json:"horizon_years"`
	MonthlyDeposit    decimal.Decimal `json:"monthly_deposit"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TariffSeverity    string          `json:"tariff_severity"`
	ExtremeSeverity   string          `json:"extreme_severity"`

	// StartDate is optional; the server substitutes its wall clock when absent.
	StartDate *time.Time `json:"start_date,omitempty"`

	ExtraEvents []domain.ShockEvent `json:"extra_events,omitempty"`
}

// SimulationMetadata describes one handled simulation run.
type SimulationMetadata struct {
	SimulationID string `json:"simulation_id"`
	StartedAt    string `json:"started_at"`
	DurationMs   int64  `json:"duration_ms"`
}

// SimulationResponse is the JSON body returned by POST /simulate. The three
// series are aligned by index for direct charting.
type SimulationResponse struct {
	Metadata      SimulationMetadata  `json:"metadata"`
	StartDate     time.Time           `json:"start_date"`
	TotalDeposits decimal.Decimal     `json:"total_deposits"`
	FinalValue    decimal.Decimal     `json:"final_value"`
	Dates         []time.Time         `json:"dates"`
	Deposits      []decimal.Decimal   `json:"deposits"`
	Values        []decimal.Decimal   `json:"values"`
	ShocksApplied []domain.ShockEvent `json:"shocks_applied,omitempty"`
}

// ErrorResponse is the JSON body of any non-2xx answer.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
