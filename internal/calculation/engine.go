package calculation

import (
	"fmt"

	"github.com/fundsim/fund-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulationEngine runs fund growth projections. It holds the shock
// catalogs and a logger but no per-run state; a single engine is safe to
// share across concurrent Project calls.
type SimulationEngine struct {
	Catalogs domain.ShockCatalogs
	Logger   Logger
}

// NewSimulationEngine creates an engine with the default shock catalogs.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{
		Catalogs: domain.DefaultCatalogs(),
		Logger:   NopLogger{},
	}
}

// NewSimulationEngineWithCatalogs creates an engine with caller-supplied
// catalogs, for configurations that override the default magnitudes or
// fire months.
func NewSimulationEngineWithCatalogs(catalogs domain.ShockCatalogs) *SimulationEngine {
	return &SimulationEngine{
		Catalogs: catalogs,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (se *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		se.Logger = NopLogger{}
		return
	}
	se.Logger = l
}

// Project runs one month-by-month projection. It validates the parameters,
// resolves the configured severities against the catalogs, and returns the
// full ordered series plus totals. The input is never mutated and the
// result is independent per call.
func (se *SimulationEngine) Project(params domain.SimulationParameters) (*domain.ProjectionResult, error) {
	if err := se.validateParameters(params); err != nil {
		return nil, err
	}

	shocks := se.resolveShocks(params)
	se.Logger.Debugf("projecting %d months, deposit %s, annual rate %s%%, %d shock(s)",
		params.HorizonMonths, params.MonthlyDeposit.StringFixed(2),
		params.AnnualRatePercent.String(), len(shocks))

	return se.generateMonthlyProjection(params, shocks), nil
}

// validateParameters enforces the engine's input contract. The rate is
// deliberately unchecked: negative and zero rates are legal.
func (se *SimulationEngine) validateParameters(params domain.SimulationParameters) error {
	if params.HorizonMonths < 1 {
		return domain.NewParameterError("horizon_months", fmt.Sprintf("must be at least 1, got %d", params.HorizonMonths))
	}
	if params.MonthlyDeposit.IsNegative() {
		return domain.NewParameterError("monthly_deposit", fmt.Sprintf("cannot be negative, got %s", params.MonthlyDeposit.String()))
	}
	if params.StartDate.IsZero() {
		return domain.NewParameterError("start_date", "is required")
	}
	if !params.TariffSeverity.IsNone() {
		if _, err := domain.ParseSeverity(string(params.TariffSeverity)); err != nil {
			return domain.NewParameterError("tariff_severity", fmt.Sprintf("unknown severity %q", params.TariffSeverity))
		}
	}
	if !params.ExtremeSeverity.IsNone() {
		if _, err := domain.ParseSeverity(string(params.ExtremeSeverity)); err != nil {
			return domain.NewParameterError("extreme_severity", fmt.Sprintf("unknown severity %q", params.ExtremeSeverity))
		}
	}
	one := decimal.NewFromInt(1)
	for i, ev := range params.ExtraEvents {
		if ev.Month < 1 {
			return domain.NewParameterError("extra_events", fmt.Sprintf("event %d: month must be at least 1, got %d", i, ev.Month))
		}
		if !ev.Fraction.IsPositive() || ev.Fraction.GreaterThanOrEqual(one) {
			return domain.NewParameterError("extra_events", fmt.Sprintf("event %d: fraction must be in (0, 1), got %s", i, ev.Fraction.String()))
		}
	}
	return nil
}

// resolveShocks turns the severity selections and extra events into the
// flat event list the projection loop consumes. Absent severities resolve
// to no event at all.
func (se *SimulationEngine) resolveShocks(params domain.SimulationParameters) []domain.ShockEvent {
	var shocks []domain.ShockEvent

	if f := se.Catalogs.Tariff.Resolve(params.TariffSeverity); f.IsPositive() {
		shocks = append(shocks, domain.ShockEvent{
			Label:    "tariff",
			Month:    se.Catalogs.Tariff.FireMonth,
			Fraction: f,
		})
	}
	if f := se.Catalogs.Extreme.Resolve(params.ExtremeSeverity); f.IsPositive() {
		shocks = append(shocks, domain.ShockEvent{
			Label:    "extreme",
			Month:    se.Catalogs.Extreme.FireMonth,
			Fraction: f,
		})
	}
	shocks = append(shocks, params.ExtraEvents...)
	return shocks
}
