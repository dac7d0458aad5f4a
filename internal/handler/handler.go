package handler

import (
	"errors"
	"time"

	"github.com/fundsim/fund-simulator/internal/calculation"
	"github.com/fundsim/fund-simulator/internal/domain"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// SimulationHandler exposes the projection engine over HTTP.
type SimulationHandler struct {
	Engine *calculation.SimulationEngine

	// Now supplies the default start date; overridable in tests.
	Now func() time.Time
}

// NewSimulationHandler creates a handler around an engine.
func NewSimulationHandler(engine *calculation.SimulationEngine) *SimulationHandler {
	return &SimulationHandler{
		Engine: engine,
		Now:    time.Now,
	}
}

// Handle is the fasthttp request handler. Routes: POST /simulate.
func (h *SimulationHandler) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/simulate":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed, use POST")
			return
		}
		h.handleSimulate(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (h *SimulationHandler) handleSimulate(ctx *fasthttp.RequestCtx) {
	started := h.Now()
	begin := time.Now()

	var req SimulationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	params, err := h.buildParameters(&req)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Engine.Project(params)
	if err != nil {
		status := fasthttp.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidParameter) {
			status = fasthttp.StatusBadRequest
		}
		writeError(ctx, status, err.Error())
		return
	}

	resp := SimulationResponse{
		Metadata: SimulationMetadata{
			SimulationID: uuid.New().String(),
			StartedAt:    started.UTC().Format(time.RFC3339),
			DurationMs:   time.Since(begin).Milliseconds(),
		},
		StartDate:     result.StartDate,
		TotalDeposits: result.TotalDeposits,
		FinalValue:    result.FinalValue,
		Dates:         result.Dates(),
		Deposits:      result.DepositSeries(),
		Values:        result.ValueSeries(),
		ShocksApplied: result.ShocksApplied,
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// buildParameters translates the wire request into engine parameters,
// defaulting the start date to the server clock. This is the presentation
// boundary where "now" semantics live; the engine itself takes an explicit
// date.
func (h *SimulationHandler) buildParameters(req *SimulationRequest) (domain.SimulationParameters, error) {
	tariff, err := domain.ParseSeverity(req.TariffSeverity)
	if err != nil {
		return domain.SimulationParameters{}, err
	}
	extreme, err := domain.ParseSeverity(req.ExtremeSeverity)
	if err != nil {
		return domain.SimulationParameters{}, err
	}

	horizon := req.HorizonMonths
	if horizon <= 0 {
		horizon = req.HorizonYears * 12
	}

	start := h.Now()
	if req.StartDate != nil && !req.StartDate.IsZero() {
		start = *req.StartDate
	}

	return domain.SimulationParameters{
		StartDate:         start,
		HorizonMonths:     horizon,
		MonthlyDeposit:    req.MonthlyDeposit,
		AnnualRatePercent: req.AnnualRatePercent,
		TariffSeverity:    tariff,
		ExtremeSeverity:   extreme,
		ExtraEvents:       req.ExtraEvents,
	}, nil
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, err := json.Marshal(body)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"status":500,"message":"failed to encode response"}`)
		return
	}
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
