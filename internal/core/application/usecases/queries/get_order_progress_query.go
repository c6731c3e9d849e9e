package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetOrderProgressQueryIsNotConstructed = errors.New(
		"GetOrderProgressQuery must be created via NewGetOrderProgressQuery constructor",
	)
)

// GetOrderProgressQuery retrieves the staged progress view of a single
// order, shaped for either a client or a staff viewer.
type GetOrderProgressQuery struct {
	orderID kernel.UUID
	role    services.ViewerRole

	guard guard.ConstructorGuard
}

// NewGetOrderProgressQuery creates a query for an order's progress view.
func NewGetOrderProgressQuery(
	orderID kernel.UUID,
	role services.ViewerRole,
) (GetOrderProgressQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderProgressQuery{}, err
	}

	return GetOrderProgressQuery{
		orderID: orderID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProgressQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to project.
func (q GetOrderProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Role returns the viewer role shaping the projection.
func (q GetOrderProgressQuery) Role() services.ViewerRole {
	return q.role
}
