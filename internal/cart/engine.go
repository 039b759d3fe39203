// Package cart holds the cart engine: the single owner of the shopping cart, which checks
// every change against stock and keeps the persisted cart equal to the in-memory one.
package cart

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rogerio-castellano/rocketshoes-cart/internal/models"
)

var tracer = otel.Tracer("github.com/rogerio-castellano/rocketshoes-cart/internal/cart")

// UpdateProductAmount asks for an absolute quantity of a product already in the cart.
type UpdateProductAmount struct {
	ProductID int `json:"productId"`
	Amount    int `json:"amount"`
}

// Engine owns the cart. Its mutating operations are meant to be called from a single
// logical thread of control; Cart may be called from anywhere.
type Engine struct {
	inventory Inventory
	store     Store
	notifier  Notifier
	log       logrus.FieldLogger

	// snapshot is replaced as a whole on every commit, the slice it points to is never
	// modified afterwards.
	snapshot atomic.Pointer[[]models.Product]
}

// NewEngine hydrates the cart from store. Stored entries with a non-positive amount or a
// repeated id are dropped and the cleaned cart is written back.
func NewEngine(ctx context.Context, inventory Inventory, store Store, notifier Notifier, log logrus.FieldLogger) (*Engine, error) {
	e := &Engine{
		inventory: inventory,
		store:     store,
		notifier:  notifier,
		log:       log,
	}

	stored, err := store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "hydrate cart")
	}
	cart, dropped := sanitize(stored, log)
	if dropped > 0 {
		// the stored copy must not keep entries the snapshot no longer has
		if err := store.Save(ctx, cart); err != nil {
			return nil, errors.Wrap(err, "rewrite sanitized cart")
		}
	}
	e.snapshot.Store(&cart)
	log.WithField("entries", len(cart)).Info("cart hydrated")
	return e, nil
}

// Cart returns a copy of the current cart.
func (e *Engine) Cart() []models.Product {
	return clone(e.current())
}

// AddProduct puts one more unit of productID in the cart, fetching its metadata when the
// product is new to the cart.
func (e *Engine) AddProduct(ctx context.Context, productID int) Outcome {
	ctx, span := e.start(ctx, OpAdd, productID)
	outcome, err := e.addProduct(ctx, productID)
	return e.finish(ctx, span, OpAdd, productID, outcome, err)
}

func (e *Engine) addProduct(ctx context.Context, productID int) (Outcome, error) {
	current := e.current()
	idx := indexOf(current, productID)

	stock, err := e.inventory.GetStock(ctx, productID)
	if err != nil {
		return OutcomeFailed, inventoryFailure(err, "get stock")
	}

	currentAmount := 0
	if idx >= 0 {
		currentAmount = current[idx].Amount
	}
	desired := currentAmount + 1
	if desired > stock.Amount {
		return OutcomeStockExceeded, nil
	}

	var next []models.Product
	if idx >= 0 {
		next = withAmount(current, idx, desired)
	} else {
		meta, err := e.inventory.GetProduct(ctx, productID)
		if err != nil {
			return OutcomeFailed, inventoryFailure(err, "get product")
		}
		entry := meta.CartEntry(1)
		entry.ID = productID
		next = append(clone(current), entry)
	}

	if err := e.commit(ctx, next); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeOK, nil
}

// RemoveProduct drops productID from the cart.
func (e *Engine) RemoveProduct(ctx context.Context, productID int) Outcome {
	ctx, span := e.start(ctx, OpRemove, productID)
	outcome, err := e.removeProduct(ctx, productID)
	return e.finish(ctx, span, OpRemove, productID, outcome, err)
}

func (e *Engine) removeProduct(ctx context.Context, productID int) (Outcome, error) {
	current := e.current()
	idx := indexOf(current, productID)
	if idx < 0 {
		return OutcomeNotFound, nil
	}

	next := make([]models.Product, 0, len(current)-1)
	next = append(next, current[:idx]...)
	next = append(next, current[idx+1:]...)

	if err := e.commit(ctx, next); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeOK, nil
}

// UpdateProductAmount sets the quantity of a product already in the cart. A non-positive
// amount is ignored.
func (e *Engine) UpdateProductAmount(ctx context.Context, req UpdateProductAmount) Outcome {
	ctx, span := e.start(ctx, OpUpdate, req.ProductID)
	span.SetAttributes(attribute.Int("cart.amount", req.Amount))
	outcome, err := e.updateProductAmount(ctx, req)
	return e.finish(ctx, span, OpUpdate, req.ProductID, outcome, err)
}

func (e *Engine) updateProductAmount(ctx context.Context, req UpdateProductAmount) (Outcome, error) {
	if req.Amount <= 0 {
		return OutcomeNoop, nil
	}

	stock, err := e.inventory.GetStock(ctx, req.ProductID)
	if err != nil {
		return OutcomeFailed, inventoryFailure(err, "get stock")
	}
	if req.Amount > stock.Amount {
		return OutcomeStockExceeded, nil
	}

	current := e.current()
	idx := indexOf(current, req.ProductID)
	if idx < 0 {
		return OutcomeNotFound, nil
	}

	if err := e.commit(ctx, withAmount(current, idx, req.Amount)); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeOK, nil
}

// commit persists next and only then publishes it.
func (e *Engine) commit(ctx context.Context, next []models.Product) error {
	if err := e.store.Save(ctx, next); err != nil {
		return storeFailure(err, "save cart")
	}
	e.snapshot.Store(&next)
	return nil
}

func (e *Engine) current() []models.Product {
	return *e.snapshot.Load()
}

func (e *Engine) start(ctx context.Context, op Operation, productID int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "cart."+string(op), trace.WithAttributes(
		attribute.Int("product.id", productID),
	))
}

// finish is the single place where outcomes turn into notifications.
func (e *Engine) finish(ctx context.Context, span trace.Span, op Operation, productID int, outcome Outcome, err error) Outcome {
	defer span.End()
	span.SetAttributes(attribute.String("cart.outcome", outcome.String()))

	entry := e.log.WithFields(logrus.Fields{
		"op":         op,
		"product_id": productID,
		"outcome":    outcome.String(),
	})
	if err != nil {
		failure := failureOf(err)
		reportFailure(ctx, failure)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry = entry.WithError(err).WithField("collaborator", string(failure))
	}

	switch outcome {
	case OutcomeOK, OutcomeNoop:
		entry.Debug("cart operation")
	case OutcomeFailed:
		entry.Error("cart operation failed")
	default:
		entry.Info("cart operation rejected")
	}

	if msg := Message(op, outcome); msg != "" {
		e.notifier.Notify(msg)
	}
	return outcome
}

func indexOf(cart []models.Product, productID int) int {
	for i, p := range cart {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func clone(cart []models.Product) []models.Product {
	out := make([]models.Product, len(cart))
	copy(out, cart)
	return out
}

// withAmount returns a copy of cart with the entry at idx set to amount.
func withAmount(cart []models.Product, idx, amount int) []models.Product {
	next := clone(cart)
	entry := next[idx]
	entry.Amount = amount
	next[idx] = entry
	return next
}

func sanitize(stored []models.Product, log logrus.FieldLogger) ([]models.Product, int) {
	cart := make([]models.Product, 0, len(stored))
	seen := make(map[int]bool, len(stored))
	dropped := 0
	for _, p := range stored {
		if p.Amount < 1 || seen[p.ID] {
			log.WithFields(logrus.Fields{"product_id": p.ID, "amount": p.Amount}).
				Warn("dropping invalid stored cart entry")
			dropped++
			continue
		}
		seen[p.ID] = true
		cart = append(cart, p)
	}
	return cart, dropped
}
