package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order detail view straight from the
// database. The specification and stages columns are stored as JSON and
// decoded into the read model without passing through the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order detail
// queries. Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve an order's detail view.
// Returns *errs.ObjectNotFoundError when no order has the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			order_type,
			priority,
			designer_id,
			cancellation_reason,
			estimated_cost,
			specification,
			stages,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var status, orderType, priority int
	var designerID uuid.NullUUID
	var cancellationReason sql.NullString
	var specRaw, stagesRaw []byte

	err = rows.Scan(
		&id,
		&status,
		&orderType,
		&priority,
		&designerID,
		&cancellationReason,
		&resp.EstimatedCost,
		&specRaw,
		&stagesRaw,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()
	resp.OrderType = order.OrderType(orderType).String()
	resp.Priority = order.Priority(priority).String()

	if designerID.Valid {
		designer, idErr := kernel.UUIDFromBytes(designerID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.DesignerID = &designer
	}
	if cancellationReason.Valid {
		reason := cancellationReason.String
		resp.CancellationReason = &reason
	}

	if err = json.Unmarshal(specRaw, &resp.Specification); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = json.Unmarshal(stagesRaw, &resp.Stages); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
