package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed fire months for the two named shocks, counted from simulation start.
const (
	TariffFireMonth  = 24
	ExtremeFireMonth = 36
)

// ShockCatalog maps severity tiers to fractional drawdowns for one shock
// kind, together with the month at which that shock fires.
type ShockCatalog struct {
	FireMonth int                          `json:"fire_month" yaml:"fire_month"`
	Fractions map[Severity]decimal.Decimal `json:"fractions" yaml:"fractions"`
}

// Resolve returns the drawdown fraction for a severity. SeverityNone and
// severities missing from the catalog resolve to a zero fraction.
func (c ShockCatalog) Resolve(sev Severity) decimal.Decimal {
	if sev.IsNone() {
		return decimal.Zero
	}
	if f, ok := c.Fractions[sev]; ok {
		return f
	}
	return decimal.Zero
}

// ShockCatalogs holds the two independent shock catalogs.
type ShockCatalogs struct {
	Tariff  ShockCatalog `json:"tariff" yaml:"tariff"`
	Extreme ShockCatalog `json:"extreme" yaml:"extreme"`
}

// DefaultCatalogs returns the contract catalogs: tariff shocks of 5/10/15%
// firing at month 24 and extreme-event shocks of 15/25/35% firing at month 36.
func DefaultCatalogs() ShockCatalogs {
	return ShockCatalogs{
		Tariff: ShockCatalog{
			FireMonth: TariffFireMonth,
			Fractions: map[Severity]decimal.Decimal{
				SeverityLow:    decimal.NewFromFloat(0.05),
				SeverityMedium: decimal.NewFromFloat(0.10),
				SeverityHigh:   decimal.NewFromFloat(0.15),
			},
		},
		Extreme: ShockCatalog{
			FireMonth: ExtremeFireMonth,
			Fractions: map[Severity]decimal.Decimal{
				SeverityLow:    decimal.NewFromFloat(0.15),
				SeverityMedium: decimal.NewFromFloat(0.25),
				SeverityHigh:   decimal.NewFromFloat(0.35),
			},
		},
	}
}

// ShockEvent is a resolved one-time multiplicative drawdown applied to the
// fund value at a fixed month offset from simulation start.
type ShockEvent struct {
	Label    string          `json:"label" yaml:"label"`
	Month    int             `json:"month" yaml:"month"`
	Fraction decimal.Decimal `json:"fraction" yaml:"fraction"`
}

// SimulationParameters is the full input of one projection run. The caller
// owns it; the engine never mutates it.
type SimulationParameters struct {
	// StartDate anchors the calendar dates of the output series. Callers
	// that want "now" semantics pass time.Now() explicitly.
	StartDate         time.Time       `json:"start_date"`
	HorizonMonths     int             `json:"horizon_months"`
	MonthlyDeposit    decimal.Decimal `json:"monthly_deposit"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TariffSeverity    Severity        `json:"tariff_severity,omitempty"`
	ExtremeSeverity   Severity        `json:"extreme_severity,omitempty"`

	// ExtraEvents are additional shocks beyond the two catalog-driven ones.
	// Fractions must lie in (0, 1).
	ExtraEvents []ShockEvent `json:"extra_events,omitempty"`
}

// MonthlyRate converts the annual percentage rate to the per-month rate
// applied by the projection loop.
func (p SimulationParameters) MonthlyRate() decimal.Decimal {
	return p.AnnualRatePercent.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
}

// ProjectionPoint is the fund state at the end of one elapsed month.
type ProjectionPoint struct {
	Month     int             `json:"month"`
	Date      time.Time       `json:"date"`
	Deposits  decimal.Decimal `json:"deposits"`
	FundValue decimal.Decimal `json:"fund_value"`
}

// ProjectionResult is the complete output of one projection run.
type ProjectionResult struct {
	StartDate     time.Time         `json:"start_date"`
	TotalDeposits decimal.Decimal   `json:"total_deposits"`
	FinalValue    decimal.Decimal   `json:"final_value"`
	Points        []ProjectionPoint `json:"points"`
	ShocksApplied []ShockEvent      `json:"shocks_applied,omitempty"`
}

// Growth returns the final value minus total deposits. Negative when shocks
// or a negative rate ate into the contributions.
func (r *ProjectionResult) Growth() decimal.Decimal {
	return r.FinalValue.Sub(r.TotalDeposits)
}

// PointAt returns the point for a 1-based month, if within the horizon.
func (r *ProjectionResult) PointAt(month int) (ProjectionPoint, bool) {
	if month < 1 || month > len(r.Points) {
		return ProjectionPoint{}, false
	}
	return r.Points[month-1], true
}

// Dates returns the calendar axis of the series.
func (r *ProjectionResult) Dates() []time.Time {
	dates := make([]time.Time, len(r.Points))
	for i, p := range r.Points {
		dates[i] = p.Date
	}
	return dates
}

// DepositSeries returns the cumulative-deposit curve aligned with Dates.
func (r *ProjectionResult) DepositSeries() []decimal.Decimal {
	series := make([]decimal.Decimal, len(r.Points))
	for i, p := range r.Points {
		series[i] = p.Deposits
	}
	return series
}

// ValueSeries returns the fund-value curve aligned with Dates.
func (r *ProjectionResult) ValueSeries() []decimal.Decimal {
	series := make([]decimal.Decimal, len(r.Points))
	for i, p := range r.Points {
		series[i] = p.FundValue
	}
	return series
}
