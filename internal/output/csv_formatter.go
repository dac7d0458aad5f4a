package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/fundsim/fund-simulator/internal/domain"
)

// CSVFormatter emits one row per projected month.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "Date", "CumulativeDeposits", "FundValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range result.Points {
		row := []string{
			strconv.Itoa(p.Month),
			p.Date.Format("2006-01-02"),
			p.Deposits.StringFixed(2),
			p.FundValue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
