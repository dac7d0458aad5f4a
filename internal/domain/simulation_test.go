package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
	}{
		{"low", SeverityLow},
		{"Medium", SeverityMedium},
		{"HIGH", SeverityHigh},
		{" high ", SeverityHigh},
		{"", SeverityNone},
		{"none", SeverityNone},
		{"None", SeverityNone},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseSeverityRejectsUnknown(t *testing.T) {
	for _, input := range []string{"catastrophic", "med", "0.1", "lo w"} {
		_, err := ParseSeverity(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	}
}

func TestDefaultCatalogs(t *testing.T) {
	catalogs := DefaultCatalogs()

	assert.Equal(t, 24, catalogs.Tariff.FireMonth)
	assert.Equal(t, 36, catalogs.Extreme.FireMonth)

	assert.True(t, catalogs.Tariff.Resolve(SeverityLow).Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, catalogs.Tariff.Resolve(SeverityMedium).Equal(decimal.NewFromFloat(0.10)))
	assert.True(t, catalogs.Tariff.Resolve(SeverityHigh).Equal(decimal.NewFromFloat(0.15)))

	assert.True(t, catalogs.Extreme.Resolve(SeverityLow).Equal(decimal.NewFromFloat(0.15)))
	assert.True(t, catalogs.Extreme.Resolve(SeverityMedium).Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, catalogs.Extreme.Resolve(SeverityHigh).Equal(decimal.NewFromFloat(0.35)))
}

func TestResolveNoneIsZero(t *testing.T) {
	catalogs := DefaultCatalogs()
	assert.True(t, catalogs.Tariff.Resolve(SeverityNone).IsZero())
	assert.True(t, catalogs.Extreme.Resolve(Severity("unlisted")).IsZero())
}

func TestMonthlyRate(t *testing.T) {
	p := SimulationParameters{AnnualRatePercent: decimal.NewFromInt(12)}
	assert.True(t, p.MonthlyRate().Equal(decimal.NewFromFloat(0.01)))

	p = SimulationParameters{AnnualRatePercent: decimal.Zero}
	assert.True(t, p.MonthlyRate().IsZero())

	p = SimulationParameters{AnnualRatePercent: decimal.NewFromInt(-6)}
	assert.True(t, p.MonthlyRate().Equal(decimal.NewFromFloat(-0.005)))
}

func TestProjectionResultHelpers(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	result := &ProjectionResult{
		StartDate:     start,
		TotalDeposits: decimal.NewFromInt(200),
		FinalValue:    decimal.NewFromInt(180),
		Points: []ProjectionPoint{
			{Month: 1, Date: start.AddDate(0, 1, 0), Deposits: decimal.NewFromInt(100), FundValue: decimal.NewFromInt(100)},
			{Month: 2, Date: start.AddDate(0, 2, 0), Deposits: decimal.NewFromInt(200), FundValue: decimal.NewFromInt(180)},
		},
	}

	assert.True(t, result.Growth().Equal(decimal.NewFromInt(-20)))

	p, ok := result.PointAt(2)
	require.True(t, ok)
	assert.Equal(t, 2, p.Month)

	_, ok = result.PointAt(0)
	assert.False(t, ok)
	_, ok = result.PointAt(3)
	assert.False(t, ok)

	require.Len(t, result.Dates(), 2)
	require.Len(t, result.DepositSeries(), 2)
	require.Len(t, result.ValueSeries(), 2)
	assert.True(t, result.ValueSeries()[1].Equal(decimal.NewFromInt(180)))
}

func TestParameterError(t *testing.T) {
	err := NewParameterError("horizon_months", "must be at least 1")
	assert.EqualError(t, err, "invalid parameter horizon_months: must be at least 1")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
