package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

func TestInMemoryCatalogRepository_Create(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryCatalogRepository()

	first, err := r.Create(ctx, models.CatalogProduct{Title: "Tênis A", Price: 10, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.NotEmpty(t, first.CreatedAt)

	explicit, err := r.Create(ctx, models.CatalogProduct{ID: 10, Title: "Tênis B", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, explicit.ID)

	next, err := r.Create(ctx, models.CatalogProduct{Title: "Tênis C", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 11, next.ID)

	_, err = r.Create(ctx, models.CatalogProduct{Title: "TÊNIS A", Price: 10})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	_, err = r.Create(ctx, models.CatalogProduct{ID: 10, Title: "Outro", Price: 10})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInMemoryCatalogRepository_AdjustQuantity(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryCatalogRepository()
	p, err := r.Create(ctx, models.CatalogProduct{Title: "Tênis", Price: 10, Quantity: 2})
	require.NoError(t, err)

	got, err := r.AdjustQuantity(ctx, p.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)

	_, err = r.AdjustQuantity(ctx, p.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantityChange)

	_, err = r.AdjustQuantity(ctx, 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	stored, err := r.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Quantity)
}

func TestInMemoryCatalogRepository_Clear(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryCatalogRepository()
	_, err := r.Create(ctx, models.CatalogProduct{Title: "Tênis", Price: 10})
	require.NoError(t, err)

	r.Clear()

	_, err = r.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
	p, err := r.Create(ctx, models.CatalogProduct{Title: "Tênis", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
}
