package handler

import (
	"testing"
	"time"

	"github.com/fundsim/fund-simulator/internal/calculation"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newTestHandler() *SimulationHandler {
	h := NewSimulationHandler(calculation.NewSimulationEngine())
	h.Now = func() time.Time {
		return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return h
}

func doRequest(t *testing.T, h *SimulationHandler, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h.Handle(ctx)
	return ctx
}

func TestSimulateSuccess(t *testing.T) {
	h := newTestHandler()
	body := `{
		"horizon_months": 24,
		"monthly_deposit": 100,
		"annual_rate_percent": 0,
		"tariff_severity": "medium"
	}`
	ctx := doRequest(t, h, fasthttp.MethodPost, "/simulate", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

	assert.Equal(t, "2400", resp.TotalDeposits.String())
	assert.Equal(t, "2160.00", resp.FinalValue.StringFixed(2))
	assert.Len(t, resp.Dates, 24)
	assert.Len(t, resp.Deposits, 24)
	assert.Len(t, resp.Values, 24)
	require.Len(t, resp.ShocksApplied, 1)
	assert.Equal(t, "tariff", resp.ShocksApplied[0].Label)
	assert.NotEmpty(t, resp.Metadata.SimulationID)
	assert.Equal(t, "2025-01-01T00:00:00Z", resp.Metadata.StartedAt)
}

func TestSimulateDefaultsStartDateToServerClock(t *testing.T) {
	h := newTestHandler()
	ctx := doRequest(t, h, fasthttp.MethodPost, "/simulate",
		`{"horizon_months": 1, "monthly_deposit": 1000, "annual_rate_percent": 12}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 2025, resp.StartDate.Year())
	assert.Equal(t, "1010.00", resp.FinalValue.StringFixed(2))
}

func TestSimulateExplicitStartDate(t *testing.T) {
	h := newTestHandler()
	ctx := doRequest(t, h, fasthttp.MethodPost, "/simulate",
		`{"horizon_months": 1, "monthly_deposit": 100, "start_date": "2030-06-15T00:00:00Z"}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 2030, resp.StartDate.Year())
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, time.July, resp.Dates[0].Month())
}

func TestSimulateHorizonYears(t *testing.T) {
	h := newTestHandler()
	ctx := doRequest(t, h, fasthttp.MethodPost, "/simulate",
		`{"horizon_years": 2, "monthly_deposit": 50}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var resp SimulationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Len(t, resp.Values, 24)
}

func TestSimulateValidationErrors(t *testing.T) {
	h := newTestHandler()
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"horizon_months": `},
		{"zero horizon", `{"horizon_months": 0, "monthly_deposit": 100}`},
		{"negative deposit", `{"horizon_months": 12, "monthly_deposit": -1}`},
		{"unknown severity", `{"horizon_months": 12, "monthly_deposit": 100, "tariff_severity": "apocalyptic"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(t, h, fasthttp.MethodPost, "/simulate", tt.body)
			assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
			assert.Equal(t, fasthttp.StatusBadRequest, resp.Status)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler()
	ctx := doRequest(t, h, fasthttp.MethodGet, "/simulate", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestUnknownRoute(t *testing.T) {
	h := newTestHandler()
	ctx := doRequest(t, h, fasthttp.MethodPost, "/other", "{}")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
