package handlers_integrated_test_suite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/cart"
	api "github.com/rogerio-castellano/rocketshoes-cart/internal/http"
	handler "github.com/rogerio-castellano/rocketshoes-cart/internal/http/handlers"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/store"
)

func TestCartFlow_AgainstStockService(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter(testLog)

	p := mustCreateProduct(r, handler.ProductRequest{Title: "Tênis Integrado", Price: 199.9, Image: "https://img/int.jpg", Quantity: 2})

	w := doJSON(r, http.MethodPost, "/cart/items", handler.AddProductRequest{ProductID: p.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(r, http.MethodPost, "/cart/items", handler.AddProductRequest{ProductID: p.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/cart/items", handler.AddProductRequest{ProductID: p.ID})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	// more stock arrives, the cart sees it on the next request
	w = doJSON(r, http.MethodPost, fmt.Sprintf("/stock/%d/adjust", p.ID), handler.StockAdjustmentRequest{Delta: 3})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/cart/items/%d", p.ID), handler.UpdateAmountRequest{Amount: 5})
	res, err := decodeResult(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if res.Outcome != cart.OutcomeOK {
		t.Fatalf("expected ok, got %s", res.Outcome)
	}

	want := models.Product{ID: p.ID, Title: "Tênis Integrado", Price: 199.9, Image: "https://img/int.jpg", Amount: 5}
	if len(res.Cart) != 1 || res.Cart[0] != want {
		t.Errorf("expected cart [%+v], got %+v", want, res.Cart)
	}

	raw, err := rdb.Get(context.Background(), store.DefaultKey).Bytes()
	if err != nil {
		t.Fatalf("cart not persisted: %v", err)
	}
	var persisted []models.Product
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("persisted cart is not valid JSON: %v", err)
	}
	if len(persisted) != 1 || persisted[0] != want {
		t.Errorf("expected persisted cart [%+v], got %+v", want, persisted)
	}
}

func TestCartFlow_SurvivesRestart(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter(testLog)

	p := mustCreateProduct(r, handler.ProductRequest{Title: "Tênis Persistente", Price: 80, Quantity: 4})
	doJSON(r, http.MethodPost, "/cart/items", handler.AddProductRequest{ProductID: p.ID})
	doJSON(r, http.MethodPut, fmt.Sprintf("/cart/items/%d", p.ID), handler.UpdateAmountRequest{Amount: 3})

	if err := resetCart(); err != nil {
		t.Fatalf("could not restart cart: %v", err)
	}

	w := doJSON(r, http.MethodGet, "/cart", nil)
	var resp handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding cart: %v", err)
	}
	if len(resp.Cart) != 1 || resp.Cart[0].ID != p.ID || resp.Cart[0].Amount != 3 {
		t.Errorf("expected hydrated cart with 3 units of %d, got %+v", p.ID, resp.Cart)
	}
}

func TestCartFlow_StockServiceDown(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter(testLog)

	p := mustCreateProduct(r, handler.ProductRequest{Title: "Tênis Offline", Price: 80, Quantity: 4})

	stockServer.Close()
	t.Cleanup(func() {
		stockServer = newStockServer()
	})

	w := doJSON(r, http.MethodPost, "/cart/items", handler.AddProductRequest{ProductID: p.ID})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	res, err := decodeResult(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if res.Message != cart.MsgAddFailed {
		t.Errorf("expected message %q, got %q", cart.MsgAddFailed, res.Message)
	}
	if len(recorder.Drain()) != 1 {
		t.Errorf("expected exactly one notification")
	}
}

func TestAdjustStock_Concurrent(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter(testLog)

	p := mustCreateProduct(r, handler.ProductRequest{Title: "Tênis Concorrente", Price: 10, Quantity: 5})

	var wg sync.WaitGroup
	var mu sync.Mutex
	conflicts := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := doJSON(r, http.MethodPost, fmt.Sprintf("/stock/%d/adjust", p.ID), handler.StockAdjustmentRequest{Delta: -1})
			if w.Code == http.StatusConflict {
				mu.Lock()
				conflicts++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if conflicts != 5 {
		t.Errorf("expected 5 rejected adjustments, got %d", conflicts)
	}

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/stock/%d", p.ID), nil)
	var stock models.Stock
	if err := json.NewDecoder(w.Body).Decode(&stock); err != nil {
		t.Fatalf("error decoding stock: %v", err)
	}
	if stock.Amount != 0 {
		t.Errorf("expected stock 0, got %d", stock.Amount)
	}
}
