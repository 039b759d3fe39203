package cart

import (
	"context"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

// Inventory is the source of authoritative stock and product data.
type Inventory interface {
	GetStock(ctx context.Context, productID int) (models.Stock, error)
	GetProduct(ctx context.Context, productID int) (models.ProductMetadata, error)
}

// Store persists the cart between sessions.
type Store interface {
	Load(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, cart []models.Product) error
}

// Notifier surfaces user-facing failure messages. It is fire-and-forget.
type Notifier interface {
	Notify(message string)
}
