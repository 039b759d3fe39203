package models

// Product is an entry of the shopping cart. Amount is the quantity selected and is never
// below 1 while the entry exists.
type Product struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Amount int     `json:"amount"`
}

// ProductMetadata is the catalog view of a product as served by the stock service.
type ProductMetadata struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Stock is the number of units currently available for a product.
type Stock struct {
	ProductID int `json:"id"`
	Amount    int `json:"amount"`
}

// CartEntry builds a cart entry from catalog metadata.
func (m ProductMetadata) CartEntry(amount int) Product {
	return Product{
		ID:     m.ID,
		Title:  m.Title,
		Price:  m.Price,
		Image:  m.Image,
		Amount: amount,
	}
}
