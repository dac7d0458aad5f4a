package calculation

import (
	"github.com/fundsim/fund-simulator/internal/domain"
	"github.com/fundsim/fund-simulator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// generateMonthlyProjection runs the accumulation loop over the horizon,
// carrying the fund value and cumulative deposits forward month by month.
// Each month: deposit first, then interest on the post-deposit balance,
// then any shocks firing that month, then the zero floor.
func (se *SimulationEngine) generateMonthlyProjection(params domain.SimulationParameters, shocks []domain.ShockEvent) *domain.ProjectionResult {
	monthlyRate := params.MonthlyRate()

	fundValue := decimal.Zero
	totalDeposits := decimal.Zero
	points := make([]domain.ProjectionPoint, 0, params.HorizonMonths)
	var applied []domain.ShockEvent

	for month := 1; month <= params.HorizonMonths; month++ {
		fundValue = fundValue.Add(params.MonthlyDeposit)
		totalDeposits = totalDeposits.Add(params.MonthlyDeposit)

		interest := fundValue.Mul(monthlyRate)
		fundValue = fundValue.Add(interest)

		for _, shock := range shocks {
			if shock.Month != month {
				continue
			}
			fundValue = fundValue.Mul(decimal.NewFromInt(1).Sub(shock.Fraction))
			applied = append(applied, shock)
			se.Logger.Debugf("month %d: %s shock of %s applied, fund value now %s",
				month, shock.Label, shock.Fraction.String(), fundValue.StringFixed(2))
		}

		// Floor: the fund cannot go negative from a shock or negative rate.
		if fundValue.IsNegative() {
			fundValue = decimal.Zero
		}

		points = append(points, domain.ProjectionPoint{
			Month:     month,
			Date:      dateutil.AddMonths(params.StartDate, month),
			Deposits:  totalDeposits,
			FundValue: fundValue,
		})
	}

	return &domain.ProjectionResult{
		StartDate:     params.StartDate,
		TotalDeposits: totalDeposits,
		FinalValue:    fundValue,
		Points:        points,
		ShocksApplied: applied,
	}
}
