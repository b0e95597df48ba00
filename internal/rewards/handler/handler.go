package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"packport/internal/platform/middleware"
	"packport/internal/rewards/models"
	"packport/pkg/platform/httputil"
)

// Service defines the rewards operations the handler needs.
type Service interface {
	Record(ctx context.Context, action models.Action) (models.LedgerEntry, error)
	Summary(ctx context.Context) (models.Summary, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the rewards endpoints. The caller places them behind the
// session gate.
func (h *Handler) Register(r chi.Router) {
	r.Get("/rewards", h.HandleSummary)
	r.Post("/rewards/activities", h.HandleRecord)
}

// HandleSummary handles GET /rewards requests.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "rewards summary failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

type recordRequest struct {
	Action string `json:"action"`
}

// HandleRecord handles POST /rewards/activities requests.
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[recordRequest](w, r)
	if !ok {
		return
	}
	entry, err := h.service.Record(ctx, models.Action(req.Action))
	if err != nil {
		h.logger.WarnContext(ctx, "rewards action rejected",
			"request_id", middleware.GetRequestID(ctx),
			"user_id", middleware.GetUserID(ctx),
			"action", req.Action,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, entry)
}
