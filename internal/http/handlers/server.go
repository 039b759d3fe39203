package handlers

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/cart"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/notify"
	repo "github.com/rogerio-castellano/rocketshoes-cart/internal/repo"
)

var (
	catalogRepo repo.CatalogRepository
	metricsRepo repo.MetricsRepository

	cartEngine *cart.Engine
	// cartMu keeps cart mutations to one at a time; the engine expects a single caller.
	cartMu   sync.Mutex
	recorder *notify.Recorder

	log logrus.FieldLogger = logrus.StandardLogger()
)

func SetCatalogRepo(r repo.CatalogRepository) {
	catalogRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetCartEngine(e *cart.Engine) {
	cartEngine = e
}

func SetNotificationRecorder(r *notify.Recorder) {
	recorder = r
}

func SetLogger(l logrus.FieldLogger) {
	log = l
}
