package cart

import (
	"context"

	"github.com/pkg/errors"
)

// Failure names the collaborator behind an OutcomeFailed.
type Failure string

const (
	FailureNone      Failure = ""
	FailureInventory Failure = "inventory"
	FailureStore     Failure = "store"
)

type collaboratorError struct {
	failure Failure
	err     error
}

func (e *collaboratorError) Error() string { return e.err.Error() }

func (e *collaboratorError) Unwrap() error { return e.err }

func inventoryFailure(err error, msg string) error {
	return &collaboratorError{failure: FailureInventory, err: errors.Wrap(err, msg)}
}

func storeFailure(err error, msg string) error {
	return &collaboratorError{failure: FailureStore, err: errors.Wrap(err, msg)}
}

func failureOf(err error) Failure {
	var ce *collaboratorError
	if errors.As(err, &ce) {
		return ce.failure
	}
	return FailureNone
}

type failureKey struct{}

// TrackFailure returns a context under which an engine operation records the collaborator
// that made it fail. The recorded value stays FailureNone for any other outcome.
func TrackFailure(ctx context.Context) (context.Context, *Failure) {
	f := new(Failure)
	return context.WithValue(ctx, failureKey{}, f), f
}

func reportFailure(ctx context.Context, f Failure) {
	if dst, ok := ctx.Value(failureKey{}).(*Failure); ok {
		*dst = f
	}
}
