// Package handler serves the product passport read endpoints.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"packport/internal/catalog/models"
	"packport/internal/catalog/store"
	"packport/internal/eco"
	"packport/internal/platform/middleware"
	id "packport/pkg/domain"
	dErrors "packport/pkg/domain-errors"
	"packport/pkg/platform/httputil"
	"packport/pkg/platform/sentinel"
)

type Handler struct {
	catalog store.Store
	dates   models.DateFormatter
	logger  *slog.Logger
}

func New(catalog store.Store, dates models.DateFormatter, logger *slog.Logger) *Handler {
	if dates == nil {
		dates = models.DefaultDateFormatter
	}
	return &Handler{catalog: catalog, dates: dates, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/catalog/products", h.HandleList)
	r.Get("/catalog/products/{productID}", h.HandleGet)
}

// display carries the pre-rendered labels so every surface shows the same
// text for the same product.
type display struct {
	Origin      string `json:"origin"`
	Organic     string `json:"organic"`
	Expiry      string `json:"expiry"`
	EcoScore    string `json:"ecoScore"`
	StatusLabel string `json:"statusLabel"`
}

type productDetail struct {
	models.Product
	Display display    `json:"display"`
	Eco     eco.Result `json:"eco"`
}

func (h *Handler) toDisplay(p models.Product) display {
	return display{
		Origin:      p.OriginLabel(),
		Organic:     p.OrganicLabel(),
		Expiry:      p.ExpiryLabel(h.dates),
		EcoScore:    eco.ScoreLabel(p.Sustainability),
		StatusLabel: p.Status.Label(),
	}
}

// HandleList handles GET /catalog/products requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products := h.catalog.List(ctx)
	out := make([]productDetail, 0, len(products))
	for _, p := range products {
		result, err := eco.Score(p.Sustainability)
		if err != nil {
			h.logger.ErrorContext(ctx, "scoring product failed",
				"request_id", middleware.GetRequestID(ctx),
				"product_id", p.ID,
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
		out = append(out, productDetail{Product: p, Display: h.toDisplay(p), Eco: result})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /catalog/products/{productID} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := id.ProductID(chi.URLParam(r, "productID"))
	p, err := h.catalog.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "product not found"))
			return
		}
		h.logger.ErrorContext(ctx, "product lookup failed",
			"request_id", middleware.GetRequestID(ctx),
			"product_id", productID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := eco.Score(p.Sustainability)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, productDetail{Product: p, Display: h.toDisplay(p), Eco: result})
}
