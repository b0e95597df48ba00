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

	"packport/internal/rewards"
	"packport/internal/rewards/store"
)

func newRewardsRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(rewards.NewService(store.NewInMemory(), nil), logger)

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestRecordAndSummarize(t *testing.T) {
	router := newRewardsRouter(t)

	body, _ := json.Marshal(map[string]string{"action": "recycle"})
	req := httptest.NewRequest(http.MethodPost, "/rewards/activities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var entry struct {
		Label  string `json:"label"`
		Points int    `json:"points"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&entry); err != nil {
		t.Fatalf("decoding entry: %v", err)
	}
	if entry.Points != 20 || entry.Label != "Recycled Tetra Pak" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	req = httptest.NewRequest(http.MethodGet, "/rewards", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var summary struct {
		Total   int `json:"total"`
		Tickets int `json:"tickets"`
		Entries []struct {
			Action string `json:"action"`
		} `json:"entries"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
		t.Fatalf("decoding summary: %v", err)
	}
	if summary.Total != 20 || summary.Tickets != 0 || len(summary.Entries) != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestUnknownActionRejected(t *testing.T) {
	router := newRewardsRouter(t)

	body, _ := json.Marshal(map[string]string{"action": "littering"})
	req := httptest.NewRequest(http.MethodPost, "/rewards/activities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("decoding error: %v", err)
	}
	if errResp.Error != "invalid_input" {
		t.Fatalf("expected invalid_input, got %q", errResp.Error)
	}
}
