package inventory

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when the stock service has no record for a product.
var ErrNotFound = errors.New("inventory: product not found")

// TransportError reports a network failure or an unexpected answer from the stock service.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("inventory: %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("inventory: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
