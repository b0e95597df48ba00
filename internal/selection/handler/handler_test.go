package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"packport/internal/catalog/store"
	"packport/internal/compare"
	"packport/internal/selection"
)

func newSelectionRouter(t *testing.T) chi.Router {
	t.Helper()
	catalog, err := store.SeedEmbedded()
	if err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(selection.NewSession(), catalog, compare.NewBuilder(nil), logger, nil)

	r := chi.NewRouter()
	h.Register(r)
	h.RegisterCompare(r)
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshaling payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type selectionBody struct {
	Products []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		StatusLabel string `json:"statusLabel"`
	} `json:"products"`
	FocusIndex int `json:"focusIndex"`
}

func TestSelectionStartsEmpty(t *testing.T) {
	router := newSelectionRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/selection", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp selectionBody
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Products) != 0 || resp.FocusIndex != 0 {
		t.Fatalf("expected empty selection, got %+v", resp)
	}
}

func TestScanFillsSelectionThenNoOps(t *testing.T) {
	router := newSelectionRouter(t)

	for i := 1; i <= 3; i++ {
		rec := doJSON(t, router, http.MethodPost, "/scan", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("scan %d: expected 200, got %d", i, rec.Code)
		}
		var resp struct {
			Selection selectionBody `json:"selection"`
			Added     bool          `json:"added"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("scan %d: decoding response: %v", i, err)
		}
		if !resp.Added || len(resp.Selection.Products) != i {
			t.Fatalf("scan %d: expected %d products added, got %+v", i, i, resp)
		}
	}

	// Catalog exhausted: the fourth scan changes nothing.
	rec := doJSON(t, router, http.MethodPost, "/scan", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on exhausted scan, got %d", rec.Code)
	}
	var resp struct {
		Selection selectionBody `json:"selection"`
		Added     bool          `json:"added"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Added || len(resp.Selection.Products) != 3 {
		t.Fatalf("expected no-op scan, got %+v", resp)
	}
}

func TestSetFocusValidation(t *testing.T) {
	router := newSelectionRouter(t)
	doJSON(t, router, http.MethodPost, "/scan", nil)
	doJSON(t, router, http.MethodPost, "/scan", nil)

	rec := doJSON(t, router, http.MethodPost, "/selection/focus", map[string]int{"focusIndex": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp selectionBody
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.FocusIndex != 1 {
		t.Fatalf("expected focus 1, got %d", resp.FocusIndex)
	}

	rec = doJSON(t, router, http.MethodPost, "/selection/focus", map[string]int{"focusIndex": 5})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range focus, got %d", rec.Code)
	}
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if errResp.Error != "out_of_range" {
		t.Fatalf("expected out_of_range error, got %q", errResp.Error)
	}
}

func TestRemoveProduct(t *testing.T) {
	router := newSelectionRouter(t)
	doJSON(t, router, http.MethodPost, "/scan", nil)
	doJSON(t, router, http.MethodPost, "/scan", nil)

	rec := doJSON(t, router, http.MethodDelete, "/selection/products/milk-001", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp selectionBody
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].ID == "milk-001" {
		t.Fatalf("expected milk-001 removed, got %+v", resp.Products)
	}

	rec = doJSON(t, router, http.MethodDelete, "/selection/products/milk-001", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 removing absent product, got %d", rec.Code)
	}
}

func TestCompareRendersCurrentSelection(t *testing.T) {
	router := newSelectionRouter(t)

	// Empty selection compares to an empty table.
	rec := doJSON(t, router, http.MethodGet, "/compare", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var table struct {
		Headers []struct {
			ID string `json:"id"`
		} `json:"headers"`
		Rows []struct {
			Label            string   `json:"label"`
			Values           []string `json:"values"`
			DiffersFromFocus []bool   `json:"differsFromFocus"`
		} `json:"rows"`
		FocusIndex int `json:"focusIndex"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&table); err != nil {
		t.Fatalf("decoding table: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(table.Rows))
	}

	doJSON(t, router, http.MethodPost, "/scan", nil)
	doJSON(t, router, http.MethodPost, "/scan", nil)
	doJSON(t, router, http.MethodPost, "/scan", nil)
	doJSON(t, router, http.MethodPost, "/selection/focus", map[string]int{"focusIndex": 1})

	rec = doJSON(t, router, http.MethodGet, "/compare", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if err := json.NewDecoder(rec.Body).Decode(&table); err != nil {
		t.Fatalf("decoding table: %v", err)
	}
	if len(table.Rows) != compare.RowCount() {
		t.Fatalf("expected %d rows, got %d", compare.RowCount(), len(table.Rows))
	}
	if len(table.Headers) != 3 || table.FocusIndex != 1 {
		t.Fatalf("expected 3 columns focused on 1, got %d/%d", len(table.Headers), table.FocusIndex)
	}
	for _, row := range table.Rows {
		if len(row.Values) != 3 || len(row.DiffersFromFocus) != 3 {
			t.Fatalf("row %q: expected 3 cells, got %+v", row.Label, row)
		}
		if row.DiffersFromFocus[1] {
			t.Fatalf("row %q flagged the focus column", row.Label)
		}
	}
}
