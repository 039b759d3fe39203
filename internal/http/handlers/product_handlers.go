package handlers

import (
	"errors"
	"net/http"

	models "github.com/rogerio-castellano/rocketshoes-cart/internal/models"
	repo "github.com/rogerio-castellano/rocketshoes-cart/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product with its initial stock to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.CatalogProduct
// @Failure 400 {object} []ProductValidationError
// @Failure 409 {string} string "Duplicated title"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := catalogRepo.Create(r.Context(), models.CatalogProduct{
		Title:    req.Title,
		Price:    req.Price,
		Image:    req.Image,
		Quantity: req.Quantity,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create product: product title duplicated", http.StatusConflict)
			return
		}
		log.WithError(err).Error("could not create product")
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductMetadata
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogRepo.GetAll(r.Context())
	if err != nil {
		log.WithError(err).Error("could not fetch products")
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	response := make([]models.ProductMetadata, len(products))
	for i, p := range products {
		response[i] = p.Metadata()
	}
	respond(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product metadata by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductMetadata
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := lookupProduct(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, product.Metadata())
}

// GetStockHandler godoc
// @Summary Get available stock of a product
// @Tags stock
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Stock
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /stock/{id} [get]
func GetStockHandler(w http.ResponseWriter, r *http.Request) {
	product, ok := lookupProduct(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, product.Stock())
}

// AdjustStockHandler godoc
// @Summary Adjust the stock of a product
// @Tags stock
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Quantity change"
// @Success 200 {object} models.Stock
// @Failure 400 {string} string "Invalid adjustment"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Stock would become negative"
// @Failure 500 {string} string "Internal error"
// @Router /stock/{id}/adjust [post]
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req StockAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := catalogRepo.AdjustQuantity(r.Context(), id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantityChange):
			http.Error(w, "quantity cannot be negative", http.StatusConflict)
		default:
			log.WithError(err).WithField("product_id", id).Error("could not update quantity")
			http.Error(w, "could not update quantity", http.StatusInternalServerError)
		}
		return
	}

	if product.Quantity == 0 {
		log.WithField("product_id", product.ID).Warn("product is out of stock")
	}
	respond(w, http.StatusOK, product.Stock())
}

func lookupProduct(w http.ResponseWriter, r *http.Request) (models.CatalogProduct, bool) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return models.CatalogProduct{}, false
	}

	product, err := catalogRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return models.CatalogProduct{}, false
		}
		log.WithError(err).WithField("product_id", id).Error("could not fetch product")
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return models.CatalogProduct{}, false
	}
	return product, true
}
