package output

import (
	"bytes"
	"fmt"

	"github.com/fundsim/fund-simulator/internal/domain"
	"github.com/guptarohit/asciigraph"
	"github.com/shopspring/decimal"
)

const (
	chartHeight = 12
	chartWidth  = 80
)

// ChartFormatter renders the deposit and value curves as terminal plots.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "chart" }

func (c ChartFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	if len(result.Points) == 0 {
		return nil, fmt.Errorf("empty projection, nothing to chart")
	}

	values := make([]float64, len(result.Points))
	deposits := make([]float64, len(result.Points))
	for i, p := range result.Points {
		values[i] = p.FundValue.InexactFloat64()
		deposits[i] = p.Deposits.InexactFloat64()
	}

	var buf bytes.Buffer
	graph := asciigraph.Plot(values,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption(fmt.Sprintf("fund value over %d months", len(values))),
	)
	fmt.Fprintln(&buf, graph)
	fmt.Fprintln(&buf)

	graph = asciigraph.Plot(deposits,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("cumulative deposits"),
	)
	fmt.Fprintln(&buf, graph)

	for _, shock := range result.ShocksApplied {
		fmt.Fprintf(&buf, "\n* %s shock at month %d (-%s%%)", shock.Label, shock.Month,
			shock.Fraction.Mul(decimal.NewFromInt(100)).StringFixed(0))
	}
	if len(result.ShocksApplied) > 0 {
		fmt.Fprintln(&buf)
	}
	return buf.Bytes(), nil
}
