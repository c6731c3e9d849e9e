// Package queries contains read operations implementing the query side
// of the CQRS architecture. Query handlers bypass the domain aggregates
// and read directly from the database with raw SQL, producing flat read
// models shaped for presentation.
package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full detail view of a single order.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's detail view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// SpecificationView is the read model of an order's print specification.
// Enumerations are rendered as their names; the thickness as millimeters.
type SpecificationView struct {
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	WidthRepeat  int      `json:"width_repeat"`
	HeightRepeat int      `json:"height_repeat"`
	Material     string   `json:"material"`
	ThicknessMM  float64  `json:"thickness_mm"`
	PrintingMode string   `json:"printing_mode"`
	Colors       []string `json:"colors"`
	CustomColors []string `json:"custom_colors"`
}

// DeliveryInfoView is the read model of an order's delivery arrangement.
// Fields other than Mode are populated per mode: the address fields for
// Direct and ClientCollection, the shipping company for ShippingCompany.
type DeliveryInfoView struct {
	Mode            string `json:"mode"`
	Street          string `json:"street,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	Country         string `json:"country,omitempty"`
	ShippingCompany string `json:"shipping_company,omitempty"`
}

// StagesView is the read model of an order's per-stage sub-state.
type StagesView struct {
	Design              string            `json:"design"`
	Prepress            string            `json:"prepress"`
	SubProcesses        map[string]string `json:"sub_processes"`
	Delivery            string            `json:"delivery"`
	DeliveryCompletedAt *time.Time        `json:"delivery_completed_at,omitempty"`
	DeliveryInfo        *DeliveryInfoView `json:"delivery_info,omitempty"`
}

// GetOrderQueryResponse is the full detail view of an order.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	Status             string
	OrderType          string
	Priority           string
	DesignerID         *kernel.UUID
	CancellationReason *string
	EstimatedCost      float64
	Specification      SpecificationView
	Stages             StagesView
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
