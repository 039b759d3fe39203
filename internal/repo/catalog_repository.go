package repo

import (
	"context"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

// CatalogRepository defines the data operations of the stock service.
type CatalogRepository interface {
	Create(ctx context.Context, product models.CatalogProduct) (models.CatalogProduct, error)
	GetAll(ctx context.Context) ([]models.CatalogProduct, error)
	GetByID(ctx context.Context, id int) (models.CatalogProduct, error)
	AdjustQuantity(ctx context.Context, id int, delta int) (models.CatalogProduct, error)
}
