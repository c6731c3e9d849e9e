package order

import "printshop/internal/core/domain/model/kernel"

// StatusChanged is the domain event recorded on every successful status
// transition. The engine does not deliver notifications itself; it only
// exposes the event so the caller can relay it after the transaction
// commits.
type StatusChanged struct {
	OrderID kernel.UUID
	From    Status
	To      Status
}
