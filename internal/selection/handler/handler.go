// Package handler wires the selection and comparison endpoints to the
// session state.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"packport/internal/catalog/models"
	"packport/internal/catalog/store"
	"packport/internal/compare"
	"packport/internal/platform/middleware"
	"packport/internal/selection"
	"packport/internal/selection/metrics"
	id "packport/pkg/domain"
	"packport/pkg/platform/httputil"
)

// Handler serves the scan, selection and compare endpoints.
type Handler struct {
	session *selection.Session
	catalog store.Store
	builder *compare.Builder
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(session *selection.Session, catalog store.Store, builder *compare.Builder, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		session: session,
		catalog: catalog,
		builder: builder,
		logger:  logger,
		metrics: m,
	}
}

// Register mounts the open selection endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/scan", h.HandleScan)
	r.Get("/selection", h.HandleGetSelection)
	r.Post("/selection/focus", h.HandleSetFocus)
	r.Delete("/selection/products/{productID}", h.HandleRemove)
}

// RegisterCompare mounts the comparison endpoint. Mounted separately so the
// server can place it behind the session gate.
func (h *Handler) RegisterCompare(r chi.Router) {
	r.Get("/compare", h.HandleCompare)
}

// HandleScan handles POST /scan requests, adding the next catalog product
// to the selection. Scanning with the catalog exhausted is not an error.
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, added, err := h.session.AddNext(ctx, h.catalog)
	if err != nil {
		h.logger.ErrorContext(ctx, "scan failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if added {
		h.metrics.IncrementScans()
	}
	httputil.WriteJSON(w, http.StatusOK, scanResponse{
		Selection: toSelectionResponse(state),
		Added:     added,
	})
}

// HandleGetSelection handles GET /selection requests.
func (h *Handler) HandleGetSelection(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toSelectionResponse(h.session.Snapshot()))
}

// HandleSetFocus handles POST /selection/focus requests.
func (h *Handler) HandleSetFocus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[setFocusRequest](w, r)
	if !ok {
		return
	}
	state, err := h.session.SetFocus(req.FocusIndex)
	if err != nil {
		h.logger.WarnContext(ctx, "focus change rejected",
			"request_id", middleware.GetRequestID(ctx),
			"focus_index", req.FocusIndex,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.metrics.IncrementFocusChanges()
	httputil.WriteJSON(w, http.StatusOK, toSelectionResponse(state))
}

// HandleRemove handles DELETE /selection/products/{productID} requests.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := id.ProductID(chi.URLParam(r, "productID"))
	state, err := h.session.Remove(productID)
	if err != nil {
		h.logger.WarnContext(ctx, "selection remove rejected",
			"request_id", middleware.GetRequestID(ctx),
			"product_id", productID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSelectionResponse(state))
}

// HandleCompare handles GET /compare requests, rendering the comparison
// table for the current selection.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state := h.session.Snapshot()
	table, err := h.builder.BuildTable(state.Products, state.Focus)
	if err != nil {
		h.logger.ErrorContext(ctx, "comparison build failed",
			"request_id", middleware.GetRequestID(ctx),
			"products", len(state.Products),
			"focus_index", state.Focus,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	h.metrics.IncrementCompareBuilds()
	httputil.WriteJSON(w, http.StatusOK, table)
}

type setFocusRequest struct {
	FocusIndex int `json:"focusIndex"`
}

type scanResponse struct {
	Selection selectionResponse `json:"selection"`
	Added     bool              `json:"added"`
}

type selectionResponse struct {
	Products   []productSummary `json:"products"`
	FocusIndex int              `json:"focusIndex"`
}

type productSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Volume      string `json:"volume"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

func toSelectionResponse(state selection.State) selectionResponse {
	products := make([]productSummary, len(state.Products))
	for i, p := range state.Products {
		products[i] = toProductSummary(p)
	}
	return selectionResponse{Products: products, FocusIndex: state.Focus}
}

func toProductSummary(p models.Product) productSummary {
	return productSummary{
		ID:          p.ID.String(),
		Name:        p.Name,
		Brand:       p.Brand,
		Volume:      p.Volume,
		Image:       p.Image,
		Status:      string(p.Status),
		StatusLabel: p.Status.Label(),
	}
}
