package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"packport/internal/community"
	"packport/internal/platform/middleware"
	"packport/pkg/platform/httputil"
)

// Service defines the feed operations the handler needs.
type Service interface {
	Reviews(ctx context.Context, filter string) ([]community.FeedReview, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the community endpoints. The caller places them behind
// the session gate.
func (h *Handler) Register(r chi.Router) {
	r.Get("/community/reviews", h.HandleReviews)
}

type feedResponse struct {
	Filter  string                 `json:"filter"`
	Filters []string               `json:"filters"`
	Reviews []community.FeedReview `json:"reviews"`
}

// HandleReviews handles GET /community/reviews?filter= requests.
func (h *Handler) HandleReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := r.URL.Query().Get("filter")
	reviews, err := h.service.Reviews(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "review feed rejected",
			"request_id", middleware.GetRequestID(ctx),
			"filter", filter,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if filter == "" {
		filter = community.FilterNewest
	}
	httputil.WriteJSON(w, http.StatusOK, feedResponse{
		Filter:  filter,
		Filters: community.Filters(),
		Reviews: reviews,
	})
}
