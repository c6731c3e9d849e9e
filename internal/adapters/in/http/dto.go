package http

import (
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SpecificationRequest is the wire form of a print specification.
// Enumerations travel by name and the thickness by its millimeter value.
type SpecificationRequest struct {
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

// toDomain parses and validates the wire specification.
func (r SpecificationRequest) toDomain() (order.Specification, error) {
	material, err := order.ParseMaterial(r.Material)
	if err != nil {
		return order.Specification{}, err
	}

	thickness, err := order.ParseThickness(r.ThicknessMM)
	if err != nil {
		return order.Specification{}, err
	}

	printingMode, err := order.ParsePrintingMode(r.PrintingMode)
	if err != nil {
		return order.Specification{}, err
	}

	colors := make([]order.Color, 0, len(r.Colors))
	for _, c := range r.Colors {
		colors = append(colors, order.Color(c))
	}

	return order.NewSpecification(
		r.Width,
		r.Height,
		r.WidthRepeat,
		r.HeightRepeat,
		material,
		thickness,
		printingMode,
		colors,
		r.CustomColors,
	)
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Specification SpecificationRequest `json:"specification"`
	OrderType     string               `json:"order_type"`
	Priority      string               `json:"priority"`
}

// CreateOrderResponse returns the identifier of a newly created order.
type CreateOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

// AddressRequest is the wire form of a delivery or collection address.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

func (r AddressRequest) toDomain() order.Address {
	return order.Address{
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// DeliveryRequest selects the delivery mode and carries exactly the
// fields that mode requires.
type DeliveryRequest struct {
	Mode            string          `json:"mode"`
	Destination     *AddressRequest `json:"destination,omitempty"`
	ShippingCompany string          `json:"shipping_company,omitempty"`
	Collection      *AddressRequest `json:"collection,omitempty"`
}

// toSelection parses the wire delivery payload into the dispatcher's
// input form.
func (r DeliveryRequest) toSelection() (services.ModeSelection, error) {
	mode, err := order.ParseDeliveryMode(r.Mode)
	if err != nil {
		return services.ModeSelection{}, err
	}

	selection := services.ModeSelection{
		Mode:            mode,
		ShippingCompany: r.ShippingCompany,
	}
	if r.Destination != nil {
		addr := r.Destination.toDomain()
		selection.Destination = &addr
	}
	if r.Collection != nil {
		addr := r.Collection.toDomain()
		selection.Collection = &addr
	}

	return selection, nil
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Target             string           `json:"target"`
	CancellationReason string           `json:"cancellation_reason,omitempty"`
	Delivery           *DeliveryRequest `json:"delivery,omitempty"`
}

// UpdatePrepressRequest is the body of PUT /api/v1/orders/:id/prepress/:process.
type UpdatePrepressRequest struct {
	Status string `json:"status"`
}

// AssignDesignerRequest is the body of POST /api/v1/orders/:id/designer.
type AssignDesignerRequest struct {
	DesignerID uuid.UUID `json:"designer_id"`
}

// OrderSummaryResponse is a work list entry for one active order.
type OrderSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	OrderType     string    `json:"order_type"`
	Priority      string    `json:"priority"`
	EstimatedCost float64   `json:"estimated_cost"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderDetailResponse is the full detail view of one order.
type OrderDetailResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Status             string               `json:"status"`
	OrderType          string               `json:"order_type"`
	Priority           string               `json:"priority"`
	DesignerID         *uuid.UUID           `json:"designer_id,omitempty"`
	CancellationReason *string              `json:"cancellation_reason,omitempty"`
	EstimatedCost      float64              `json:"estimated_cost"`
	Specification      SpecificationRequest `json:"specification"`
	Stages             StagesResponse       `json:"stages"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// StagesResponse is the wire form of the per-stage sub-state.
type StagesResponse struct {
	Design              string                `json:"design"`
	Prepress            string                `json:"prepress"`
	SubProcesses        map[string]string     `json:"sub_processes"`
	Delivery            string                `json:"delivery"`
	DeliveryCompletedAt *time.Time            `json:"delivery_completed_at,omitempty"`
	DeliveryInfo        *DeliveryInfoResponse `json:"delivery_info,omitempty"`
}

// DeliveryInfoResponse is the wire form of the attached delivery
// arrangement.
type DeliveryInfoResponse struct {
	Mode            string `json:"mode"`
	Street          string `json:"street,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	Country         string `json:"country,omitempty"`
	ShippingCompany string `json:"shipping_company,omitempty"`
}

// BacklogEntryResponse is the order count for one pipeline status.
type BacklogEntryResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StageProgressResponse is one stage in the progress projection.
type StageProgressResponse struct {
	Name         string            `json:"name"`
	State        string            `json:"state"`
	SubProcesses map[string]string `json:"sub_processes,omitempty"`
}

// ProgressResponse is the step-by-step progress view of one order.
type ProgressResponse struct {
	CompletedCount   int                     `json:"completed_count"`
	TotalStages      int                     `json:"total_stages"`
	Percent          float64                 `json:"percent"`
	CurrentStepIndex int                     `json:"current_step_index"`
	Stages           []StageProgressResponse `json:"stages"`
}
