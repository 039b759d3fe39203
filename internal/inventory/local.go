package inventory

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/repo"
)

// LocalClient serves stock lookups straight from a catalog repository, for deployments
// where the stock service lives in the same process.
type LocalClient struct {
	catalog repo.CatalogRepository
}

func NewLocalClient(catalog repo.CatalogRepository) *LocalClient {
	return &LocalClient{catalog: catalog}
}

func (c *LocalClient) GetStock(ctx context.Context, productID int) (models.Stock, error) {
	p, err := c.lookup(ctx, productID)
	if err != nil {
		return models.Stock{}, err
	}
	return p.Stock(), nil
}

func (c *LocalClient) GetProduct(ctx context.Context, productID int) (models.ProductMetadata, error) {
	p, err := c.lookup(ctx, productID)
	if err != nil {
		return models.ProductMetadata{}, err
	}
	return p.Metadata(), nil
}

func (c *LocalClient) lookup(ctx context.Context, productID int) (models.CatalogProduct, error) {
	p, err := c.catalog.GetByID(ctx, productID)
	if errors.Is(err, repo.ErrProductNotFound) {
		return models.CatalogProduct{}, errors.Wrapf(ErrNotFound, "product %d", productID)
	}
	if err != nil {
		return models.CatalogProduct{}, &TransportError{Op: "catalog", Err: err}
	}
	return p, nil
}
