package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/cart"
)

// GetCartHandler godoc
// @Summary Current cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, CartResponse{Cart: cartEngine.Cart()})
}

// GetCartSummaryHandler godoc
// @Summary Cart with line subtotals and total
// @Tags cart
// @Produce json
// @Success 200 {object} cart.Summary
// @Router /cart/summary [get]
func GetCartSummaryHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, cart.Summarize(cartEngine.Cart()))
}

// AddProductHandler godoc
// @Summary Add one unit of a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param product body AddProductRequest true "Product to add"
// @Success 200 {object} CartOperationResult
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {object} CartOperationResult "Stock exceeded"
// @Failure 500 {object} CartOperationResult "Cart storage failure"
// @Failure 502 {object} CartOperationResult "Stock service failure"
// @Router /cart/items [post]
func AddProductHandler(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := readJSON(w, r, &req); err != nil || req.ProductID <= 0 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	ctx, failure := cart.TrackFailure(r.Context())
	outcome := cartEngine.AddProduct(ctx, req.ProductID)
	writeOutcome(w, cart.OpAdd, outcome, *failure)
}

// RemoveProductHandler godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} CartOperationResult
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} CartOperationResult "Product not in cart"
// @Router /cart/items/{id} [delete]
func RemoveProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	ctx, failure := cart.TrackFailure(r.Context())
	outcome := cartEngine.RemoveProduct(ctx, id)
	writeOutcome(w, cart.OpRemove, outcome, *failure)
}

// UpdateProductAmountHandler godoc
// @Summary Set the amount of a product in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param amount body UpdateAmountRequest true "New amount"
// @Success 200 {object} CartOperationResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {object} CartOperationResult "Product not in cart"
// @Failure 409 {object} CartOperationResult "Stock exceeded"
// @Router /cart/items/{id} [put]
func UpdateProductAmountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req UpdateAmountRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()
	ctx, failure := cart.TrackFailure(r.Context())
	outcome := cartEngine.UpdateProductAmount(ctx, cart.UpdateProductAmount{ProductID: id, Amount: req.Amount})
	writeOutcome(w, cart.OpUpdate, outcome, *failure)
}

// IncrementProductHandler godoc
// @Summary Add one unit to a product already in the cart
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} CartOperationResult
// @Router /cart/items/{id}/increment [post]
func IncrementProductHandler(w http.ResponseWriter, r *http.Request) {
	stepAmount(w, r, 1)
}

// DecrementProductHandler godoc
// @Summary Remove one unit of a product, never going below one
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} CartOperationResult
// @Router /cart/items/{id}/decrement [post]
func DecrementProductHandler(w http.ResponseWriter, r *http.Request) {
	stepAmount(w, r, -1)
}

func stepAmount(w http.ResponseWriter, r *http.Request, delta int) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	cartMu.Lock()
	defer cartMu.Unlock()

	current := 0
	for _, p := range cartEngine.Cart() {
		if p.ID == id {
			current = p.Amount
			break
		}
	}

	// the storefront disables decrement at one unit
	if delta < 0 && current+delta < 1 {
		writeOutcome(w, cart.OpUpdate, cart.OutcomeNoop, cart.FailureNone)
		return
	}

	ctx, failure := cart.TrackFailure(r.Context())
	outcome := cartEngine.UpdateProductAmount(ctx, cart.UpdateProductAmount{ProductID: id, Amount: current + delta})
	writeOutcome(w, cart.OpUpdate, outcome, *failure)
}

func writeOutcome(w http.ResponseWriter, op cart.Operation, outcome cart.Outcome, failure cart.Failure) {
	if metricsRepo != nil {
		metricsRepo.Record(string(op), outcome.String())
	}
	respond(w, outcomeStatus(outcome, failure), CartOperationResult{
		Outcome: outcome,
		Message: cart.Message(op, outcome),
		Cart:    cartEngine.Cart(),
	})
}

// outcomeStatus maps a failed operation to 502 only when the stock service is to blame; a
// cart that could not be saved is our own 500.
func outcomeStatus(o cart.Outcome, failure cart.Failure) int {
	switch o {
	case cart.OutcomeOK, cart.OutcomeNoop:
		return http.StatusOK
	case cart.OutcomeStockExceeded:
		return http.StatusConflict
	case cart.OutcomeNotFound:
		return http.StatusNotFound
	}
	if failure == cart.FailureStore {
		return http.StatusInternalServerError
	}
	return http.StatusBadGateway
}

// GetNotificationsHandler godoc
// @Summary Drain pending cart notifications
// @Tags cart
// @Produce json
// @Success 200 {object} NotificationsResponse
// @Router /notifications [get]
func GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	if recorder == nil {
		respond(w, http.StatusOK, NotificationsResponse{Data: []any{}})
		return
	}
	respond(w, http.StatusOK, NotificationsResponse{Data: recorder.Drain()})
}
