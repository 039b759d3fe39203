// Package store persists the cart between sessions as a single serialized blob.
package store

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

// DefaultKey is the storage key the storefront has always used for the cart.
const DefaultKey = "@RocketShoes:cart"

func encode(cart []models.Product) ([]byte, error) {
	if cart == nil {
		cart = []models.Product{}
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return nil, errors.Wrap(err, "encode cart")
	}
	return data, nil
}

func decode(data []byte) ([]models.Product, error) {
	if len(data) == 0 {
		return []models.Product{}, nil
	}
	var cart []models.Product
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, errors.Wrap(err, "decode cart")
	}
	if cart == nil {
		cart = []models.Product{}
	}
	return cart, nil
}
