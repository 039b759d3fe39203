package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/cart"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/db"
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
	database    *sql.DB
	catalogRepo *repo.PostgresCatalogRepository
	stockServer *httptest.Server
	redisServer *miniredis.Miniredis
	rdb         *redis.Client
	recorder    *notify.Recorder
	testLog     = logrus.New()
)

// setup connects to the database named by DATABASE_URL. It returns false when the variable
// is unset so the suite can be skipped on machines without Postgres.
func setup() (bool, error) {
	dbUrl := os.Getenv("DATABASE_URL")
	if dbUrl == "" {
		return false, nil
	}
	testLog.SetLevel(logrus.PanicLevel)
	handler.SetLogger(testLog)
	rl.Configure(1000, 1000)

	var err error
	database, err = db.Connect(context.Background(), dbUrl)
	if err != nil {
		return false, fmt.Errorf("could not connect to database: %w", err)
	}
	catalogRepo = repo.NewPostgresCatalogRepository(database)
	handler.SetCatalogRepo(catalogRepo)
	handler.SetMetricsRepo(repo.NewInMemoryMetricsRepository())

	stockServer = newStockServer()

	redisServer, err = miniredis.Run()
	if err != nil {
		return false, fmt.Errorf("could not start redis: %w", err)
	}
	rdb = redis.NewClient(&redis.Options{Addr: redisServer.Addr()})

	return true, resetCart()
}

// newStockServer serves the same router, so the cart reaches the catalog through the stock
// service's own REST surface.
func newStockServer() *httptest.Server {
	return httptest.NewServer(api.NewRouter(testLog))
}

func teardown() {
	if stockServer != nil {
		stockServer.Close()
	}
	if rdb != nil {
		rdb.Close()
	}
	if redisServer != nil {
		redisServer.Close()
	}
	if database != nil {
		database.Close()
	}
}

// resetCart builds a new engine over whatever the Redis key currently holds.
func resetCart() error {
	inv, err := inventory.NewHTTPClient(stockServer.URL, 2*time.Second)
	if err != nil {
		return err
	}
	recorder = notify.NewRecorder(50)
	engine, err := cart.NewEngine(context.Background(), inv, store.NewRedisStore(rdb, store.DefaultKey), recorder, testLog)
	if err != nil {
		return err
	}
	handler.SetCartEngine(engine)
	handler.SetNotificationRecorder(recorder)
	return nil
}

func clearAll() {
	if _, err := database.Exec("TRUNCATE products RESTART IDENTITY"); err != nil {
		panic(fmt.Sprintf("error clearing products: %v", err))
	}
	redisServer.FlushAll()
	rl.CleanupAllVisitors()
	if err := resetCart(); err != nil {
		panic(fmt.Sprintf("error resetting cart: %v", err))
	}
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

func mustCreateProduct(r http.Handler, p handler.ProductRequest) models.CatalogProduct {
	w := doJSON(r, http.MethodPost, "/products", p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product creation failed: %d %s", w.Code, w.Body.String()))
	}
	var created models.CatalogProduct
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		panic(err)
	}
	return created
}

func decodeResult(w *httptest.ResponseRecorder) (handler.CartOperationResult, error) {
	var res handler.CartOperationResult
	err := json.NewDecoder(w.Body).Decode(&res)
	return res, err
}
