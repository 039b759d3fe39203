package cart

import (
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

type LineSummary struct {
	models.Product
	Subtotal decimal.Decimal `json:"subTotal"`
}

// Summary is the cart with per-line subtotals and the grand total, unformatted.
type Summary struct {
	Items []LineSummary   `json:"items"`
	Units int             `json:"units"`
	Total decimal.Decimal `json:"total"`
}

func Summarize(cart []models.Product) Summary {
	s := Summary{Items: make([]LineSummary, 0, len(cart)), Total: decimal.Zero}
	for _, p := range cart {
		sub := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Amount)))
		s.Items = append(s.Items, LineSummary{Product: p, Subtotal: sub})
		s.Units += p.Amount
		s.Total = s.Total.Add(sub)
	}
	return s
}
