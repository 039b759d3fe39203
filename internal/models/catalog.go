package models

// CatalogProduct is a product record owned by the stock service.
type CatalogProduct struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

func (p CatalogProduct) Metadata() ProductMetadata {
	return ProductMetadata{ID: p.ID, Title: p.Title, Price: p.Price, Image: p.Image}
}

func (p CatalogProduct) Stock() Stock {
	return Stock{ProductID: p.ID, Amount: p.Quantity}
}
