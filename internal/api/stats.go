package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	statsDomain "github.com/vikions/opipolix-builder-dashboard/internal/domain/stats"
	"github.com/vikions/opipolix-builder-dashboard/pkg/errors"
	"github.com/vikions/opipolix-builder-dashboard/pkg/logger"
	"github.com/vikions/opipolix-builder-dashboard/pkg/timeframe"
)

// StatsHandler serves GET /api/stats.
type StatsHandler struct {
	usecase statsDomain.Usecase
	logger  logger.Interface
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(usecase statsDomain.Usecase, logger logger.Interface) *StatsHandler {
	return &StatsHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Error string `json:"error"`
}

// GetStats handles GET /api/stats?hours=N. A malformed hours parameter is
// corrected to the default, never rejected. Upstream failures map to gateway
// statuses; the handler never emits a partially populated snapshot.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hours, err := strconv.Atoi(r.URL.Query().Get("hours"))
	if err != nil {
		hours = timeframe.DefaultWindowHours
	}

	snapshot, err := h.usecase.Snapshot(ctx, hours)
	if err != nil {
		h.logger.ErrorContext(ctx, err, logger.NewField("hours", hours))
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})

		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// statusFor maps the upstream error taxonomy onto gateway statuses.
func statusFor(err error) int {
	switch errors.CodeOf(err) {
	case errors.UpstreamUnreachableError:
		return http.StatusGatewayTimeout
	case errors.UpstreamStatusError, errors.UpstreamParseError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
