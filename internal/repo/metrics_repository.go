package repo

import "github.com/rogerio-castellano/rocketshoes-cart/internal/models"

type Metrics struct {
	CartEntries int                       `json:"cart_entries"`
	CartUnits   int                       `json:"cart_units"`
	Operations  map[string]map[string]int `json:"operations"`
}

// CartReader exposes the current cart snapshot.
type CartReader interface {
	Cart() []models.Product
}

type MetricsRepository interface {
	Record(op, outcome string)
	GetDashboardMetrics() (Metrics, error)
}
