package sales

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/shop-tools/sales-atlas/pkg/adapters"
	"github.com/shop-tools/sales-atlas/pkg/models/api"
	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/server/middleware"
	"github.com/shop-tools/sales-atlas/pkg/services/ledger"
	"github.com/shop-tools/sales-atlas/pkg/services/source"
)

const dateLayout = "2006-01-02"

type Handler struct {
	ledger ledger.Service
}

func NewHandler(svc ledger.Service) *Handler {
	return &Handler{ledger: svc}
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.ledger.ListSources(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list sources")
		http.Error(w, "failed to list sources", http.StatusInternalServerError)
		return
	}

	response := make([]api.Source, 0, len(profiles))
	for _, profile := range profiles {
		response = append(response, adapters.MapSourceProfileDomainToApi(profile))
	}

	writeJSON(w, logger, response)
}

func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	sourceName := chi.URLParam(r, "source")

	status, err := h.ledger.Reload(ctx, middleware.SessionID(ctx), sourceName)
	if err != nil {
		writeLedgerError(w, logger, err)
		return
	}

	writeJSON(w, logger, adapters.MapReloadStatusDomainToApi(status))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	sourceName := chi.URLParam(r, "source")

	mode, from, to, ok := periodParams(w, r)
	if !ok {
		return
	}

	summary, insights, err := h.ledger.Summary(ctx, middleware.SessionID(ctx), sourceName, mode, from, to)
	if err != nil {
		writeLedgerError(w, logger, err)
		return
	}

	writeJSON(w, logger, api.SummaryResponse{
		Report:   adapters.MapSummaryReportDomainToApi(summary),
		Insights: insights,
	})
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	sourceName := chi.URLParam(r, "source")

	mode, from, to, ok := periodParams(w, r)
	if !ok {
		return
	}

	txs, err := h.ledger.Transactions(ctx, middleware.SessionID(ctx), sourceName, mode, from, to)
	if err != nil {
		writeLedgerError(w, logger, err)
		return
	}

	writeJSON(w, logger, adapters.MapTransactionsDomainToApi(txs))
}

// periodParams parses the mode/from/to query triple shared by the summary
// and transactions endpoints, writing a 400 on the first invalid value.
func periodParams(w http.ResponseWriter, r *http.Request) (domain.PeriodMode, time.Time, time.Time, bool) {
	mode, err := domain.ParsePeriodMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, "invalid 'mode'. Expected one of: daily, weekly, monthly", http.StatusBadRequest)
		return "", time.Time{}, time.Time{}, false
	}

	from, err := parseDateParam(r, "from")
	if err != nil {
		http.Error(w, "invalid 'from' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return "", time.Time{}, time.Time{}, false
	}

	to, err := parseDateParam(r, "to")
	if err != nil {
		http.Error(w, "invalid 'to' date format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return "", time.Time{}, time.Time{}, false
	}

	return mode, from, to, true
}

// parseDateParam reads an optional YYYY-MM-DD query parameter; an absent
// value stays zero so the period mode defaults apply.
func parseDateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}

func writeLedgerError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	if errors.Is(err, ledger.ErrUnknownSource) || errors.Is(err, ledger.ErrEmptySourceID) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var unavailable *source.UnavailableError
	if errors.As(err, &unavailable) {
		logger.Error().Err(err).Msg("source unavailable")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	logger.Error().Err(err).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
