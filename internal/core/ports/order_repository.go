// Package ports defines the persistence contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Updates use compare-and-swap semantics guarded by the top-level status:
// concurrent staff actions on the same order are the primary hazard, and
// the status read at load time is the guard value. The whole aggregate,
// stages included, is written in one guarded update so partial interleaved
// writes cannot occur.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, but only if
	// the stored status still equals expectedStatus (the value the caller
	// read before mutating). Returns a *ConcurrentModificationError on a
	// status mismatch; the caller must re-read and may retry once.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders not in a terminal status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
