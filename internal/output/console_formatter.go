package output

import (
	"bytes"
	"fmt"

	"github.com/fundsim/fund-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FUND GROWTH PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Start Date:      %s\n", result.StartDate.Format("2006-01-02"))
	fmt.Fprintf(&buf, "Horizon:         %d months\n", len(result.Points))
	fmt.Fprintf(&buf, "Total Deposits:  %s\n", FormatCurrency(result.TotalDeposits))
	fmt.Fprintf(&buf, "Final Value:     %s\n", FormatCurrency(result.FinalValue))
	fmt.Fprintf(&buf, "Growth:          %s\n", FormatCurrency(result.Growth()))
	if !result.TotalDeposits.IsZero() {
		pct := result.Growth().Div(result.TotalDeposits).Mul(decimal.NewFromInt(100))
		fmt.Fprintf(&buf, "Return:          %s\n", FormatPercentage(pct))
	}

	if len(result.ShocksApplied) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Shocks applied:")
		for _, shock := range result.ShocksApplied {
			fmt.Fprintf(&buf, "  month %d: %s -%s\n",
				shock.Month, shock.Label,
				FormatPercentage(shock.Fraction.Mul(decimal.NewFromInt(100))))
		}
	}

	// Year-end rows keep the table readable over long horizons.
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%-8s %-12s %15s %15s\n", "Month", "Date", "Deposits", "Value")
	for _, p := range result.Points {
		if p.Month%12 != 0 && p.Month != len(result.Points) {
			continue
		}
		fmt.Fprintf(&buf, "%-8d %-12s %15s %15s\n",
			p.Month, p.Date.Format("2006-01-02"),
			p.Deposits.StringFixed(2), p.FundValue.StringFixed(2))
	}
	return buf.Bytes(), nil
}
