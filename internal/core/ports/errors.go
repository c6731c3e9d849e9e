package ports

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/order"
)

// ErrConcurrentModification indicates a compare-and-swap update was
// rejected because another writer changed the order first.
var ErrConcurrentModification = errors.New("order was modified concurrently")

// ConcurrentModificationError reports a rejected guarded update, carrying
// the status the caller expected so it can re-read and retry.
type ConcurrentModificationError struct {
	OrderID        string
	ExpectedStatus order.Status
}

// NewConcurrentModificationError creates a ConcurrentModificationError
// for the given order and expected status.
func NewConcurrentModificationError(orderID string, expectedStatus order.Status) *ConcurrentModificationError {
	return &ConcurrentModificationError{OrderID: orderID, ExpectedStatus: expectedStatus}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: order %s is no longer in %s",
		ErrConcurrentModification, e.OrderID, e.ExpectedStatus)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
