package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/cart"
	api "github.com/rogerio-castellano/rocketshoes-cart/internal/http"
	handler "github.com/rogerio-castellano/rocketshoes-cart/internal/http/handlers"
	rl "github.com/rogerio-castellano/rocketshoes-cart/internal/http/rate_limiter"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/inventory"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/notify"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/repo"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/store"
)

var (
	catalogRepo *repo.InMemoryCatalogRepository
	metricsRepo *repo.InMemoryMetricsRepository
	cartStore   *store.MemoryStore
	recorder    *notify.Recorder
	engine      *cart.Engine
	testLog     = logrus.New()
)

func init() {
	testLog.SetLevel(logrus.PanicLevel)
	handler.SetLogger(testLog)
	rl.Configure(1000, 1000)
	setupTestRepos()
}

func setupTestRepos() {
	catalogRepo = repo.NewInMemoryCatalogRepository()
	handler.SetCatalogRepo(catalogRepo)

	metricsRepo = repo.NewInMemoryMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)

	resetCart(nil)
}

func newRouter() http.Handler {
	return api.NewRouter(testLog)
}

// resetCart starts a fresh engine whose store holds initial.
func resetCart(initial []models.Product) {
	cartStore = store.NewMemoryStore()
	if initial != nil {
		if err := cartStore.Save(context.Background(), initial); err != nil {
			panic(err)
		}
	}
	startEngine(inventory.NewLocalClient(catalogRepo), cartStore)
}

func startEngine(inv cart.Inventory, st cart.Store) {
	recorder = notify.NewRecorder(50)

	var err error
	engine, err = cart.NewEngine(context.Background(), inv, st, recorder, testLog)
	if err != nil {
		panic(fmt.Sprintf("error starting cart engine: %v", err))
	}
	handler.SetCartEngine(engine)
	handler.SetNotificationRecorder(recorder)
	metricsRepo.SetCartReader(engine)
}

// brokenStore loads an empty cart and refuses every save.
type brokenStore struct{}

func (brokenStore) Load(context.Context) ([]models.Product, error) { return []models.Product{}, nil }

func (brokenStore) Save(context.Context, []models.Product) error {
	return errors.New("cart storage unavailable")
}

func clearAll() {
	catalogRepo.Clear()
	metricsRepo.Clear()
	rl.CleanupAllVisitors()
	resetCart(nil)
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) models.CatalogProduct {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product creation failed: %d %s", w.Code, w.Body.String()))
	}
	var created models.CatalogProduct
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		panic(err)
	}
	return created
}

func adjustStock(r http.Handler, productID int, adj handler.StockAdjustmentRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(adj)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/stock/%d/adjust", productID), bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResult(w *httptest.ResponseRecorder) (handler.CartOperationResult, error) {
	var res handler.CartOperationResult
	err := json.NewDecoder(w.Body).Decode(&res)
	return res, err
}

func drainMessages() []string {
	var out []string
	for _, m := range recorder.Drain() {
		out = append(out, m.Text)
	}
	return out
}
