package inventory

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/repo"
)

func TestLocalClient(t *testing.T) {
	catalog := repo.NewInMemoryCatalogRepository()
	created, err := catalog.Create(context.Background(), models.CatalogProduct{
		Title: "Tênis VR Caminhada", Price: 139.9, Image: "https://img/2.jpg", Quantity: 4,
	})
	require.NoError(t, err)

	c := NewLocalClient(catalog)

	stock, err := c.GetStock(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Stock{ProductID: created.ID, Amount: 4}, stock)

	meta, err := c.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductMetadata{ID: created.ID, Title: "Tênis VR Caminhada", Price: 139.9, Image: "https://img/2.jpg"}, meta)

	_, err = c.GetStock(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrNotFound))
}
