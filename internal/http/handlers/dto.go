package handlers

import (
	"github.com/rogerio-castellano/rocketshoes-cart/internal/cart"
	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

type ProductRequest struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

type StockAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type AddProductRequest struct {
	ProductID int `json:"productId"`
}

type UpdateAmountRequest struct {
	Amount int `json:"amount"`
}

type CartResponse struct {
	Cart []models.Product `json:"cart"`
}

// CartOperationResult is returned by every cart mutation.
type CartOperationResult struct {
	Outcome cart.Outcome     `json:"outcome"`
	Message string           `json:"message,omitempty"`
	Cart    []models.Product `json:"cart"`
}

type NotificationsResponse struct {
	Data any `json:"data"`
}
