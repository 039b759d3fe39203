package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/rogerio-castellano/rocketshoes-cart/internal/http/handlers"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/repo"
)

func TestDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	shoe := mustCreateProduct(r, handler.ProductRequest{Title: "Tênis Métrica", Price: 120, Quantity: 2})
	sock := mustCreateProduct(r, handler.ProductRequest{Title: "Meia Métrica", Price: 15, Quantity: 10})

	addToCart(t, r, shoe.ID)
	addToCart(t, r, shoe.ID)
	addToCart(t, r, shoe.ID) // stock exceeded
	addToCart(t, r, sock.ID)
	updateAmount(t, r, sock.ID, 4)
	removeFromCart(t, r, 999) // not found

	req := httptest.NewRequest(http.MethodGet, "/metrics/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var metrics repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&metrics); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}

	if metrics.CartEntries != 2 {
		t.Errorf("expected 2 cart entries, got %d", metrics.CartEntries)
	}
	if metrics.CartUnits != 6 {
		t.Errorf("expected 6 cart units, got %d", metrics.CartUnits)
	}

	expected := map[string]map[string]int{
		"add":    {"ok": 3, "stock_exceeded": 1},
		"update": {"ok": 1},
		"remove": {"not_found": 1},
	}
	for op, byOutcome := range expected {
		for outcome, n := range byOutcome {
			if got := metrics.Operations[op][outcome]; got != n {
				t.Errorf("expected %s/%s = %d, got %d", op, outcome, n, got)
			}
		}
	}
}

func TestDashboardMetricsHandler_Empty(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var metrics repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&metrics); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}
	if metrics.CartEntries != 0 || metrics.CartUnits != 0 || len(metrics.Operations) != 0 {
		t.Errorf("expected empty metrics, got %+v", metrics)
	}
}
