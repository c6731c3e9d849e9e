// Package orderrepo implements order aggregate persistence with GORM.
// It maps the aggregate to a single row: scalar fields become columns,
// the specification and stage sub-state become JSON documents, so every
// guarded update replaces the whole aggregate atomically.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for one order aggregate. Status is stored
// as its integer value and indexed: it is both the compare-and-swap guard
// column and the backlog grouping key.
type OrderDTO struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Status             int              `gorm:"index"`
	OrderType          int              `gorm:""`
	Priority           int              `gorm:""`
	DesignerID         *uuid.UUID       `gorm:"type:uuid"`
	CancellationReason *string          `gorm:""`
	EstimatedCost      float64          `gorm:""`
	Specification      SpecificationDTO `gorm:"serializer:json"`
	Stages             StagesDTO        `gorm:"serializer:json"`
	CreatedAt          time.Time        `gorm:""`
	UpdatedAt          time.Time        `gorm:""`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// SpecificationDTO is the JSON document form of a print specification.
// Enumerations are stored by name and the thickness by its millimeter
// value, so the stored rows read naturally in ad hoc queries.
type SpecificationDTO struct {
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

// StagesDTO is the JSON document form of the per-stage sub-state.
type StagesDTO struct {
	Design              string            `json:"design"`
	Prepress            string            `json:"prepress"`
	SubProcesses        map[string]string `json:"sub_processes"`
	Delivery            string            `json:"delivery"`
	DeliveryCompletedAt *time.Time        `json:"delivery_completed_at,omitempty"`
	DeliveryInfo        *DeliveryInfoDTO  `json:"delivery_info,omitempty"`
}

// DeliveryInfoDTO is the JSON document form of the delivery arrangement.
// Address fields are set for Direct and ClientCollection modes, the
// shipping company for ShippingCompany mode.
type DeliveryInfoDTO struct {
	Mode            string `json:"mode"`
	Street          string `json:"street,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	Country         string `json:"country,omitempty"`
	ShippingCompany string `json:"shipping_company,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var designerID *uuid.UUID
	if id := aggregate.Designer(); id != nil {
		raw := id.Bytes()
		designerID = &raw
	}

	var cancellationReason *string
	if reason, ok := aggregate.CancellationReason(); ok {
		cancellationReason = &reason
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		Status:             int(aggregate.Status()),
		OrderType:          int(aggregate.OrderType()),
		Priority:           int(aggregate.Priority()),
		DesignerID:         designerID,
		CancellationReason: cancellationReason,
		EstimatedCost:      aggregate.EstimatedCost(),
		Specification:      specificationFromDomain(aggregate.Specification()),
		Stages:             stagesFromDomain(aggregate.Stages()),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

func specificationFromDomain(spec order.Specification) SpecificationDTO {
	colors := make([]string, 0, len(spec.UsedColors()))
	for _, c := range spec.UsedColors() {
		colors = append(colors, string(c))
	}

	return SpecificationDTO{
		Width:        spec.Width(),
		Height:       spec.Height(),
		WidthRepeat:  spec.WidthRepeat(),
		HeightRepeat: spec.HeightRepeat(),
		Material:     spec.Material().String(),
		ThicknessMM:  spec.Thickness().Millimeters(),
		PrintingMode: spec.PrintingMode().String(),
		Colors:       colors,
		CustomColors: spec.CustomColors(),
	}
}

func stagesFromDomain(stages order.Stages) StagesDTO {
	subProcesses := make(map[string]string, len(stages.SubProcesses()))
	for p, s := range stages.SubProcesses() {
		subProcesses[string(p)] = s.String()
	}

	dto := StagesDTO{
		Design:              stages.Design().String(),
		Prepress:            stages.Prepress().String(),
		SubProcesses:        subProcesses,
		Delivery:            stages.Delivery().String(),
		DeliveryCompletedAt: stages.DeliveryCompletedAt(),
	}

	if info := stages.DeliveryInfo(); info != nil {
		infoDTO := DeliveryInfoDTO{Mode: info.Mode().String()}
		if addr, hasAddr := info.Address(); hasAddr {
			infoDTO.Street = addr.Street
			infoDTO.City = addr.City
			infoDTO.State = addr.State
			infoDTO.PostalCode = addr.PostalCode
			infoDTO.Country = addr.Country
		}
		if company, hasCompany := info.ShippingCompany(); hasCompany {
			infoDTO.ShippingCompany = company
		}
		dto.DeliveryInfo = &infoDTO
	}

	return dto
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, re-validating every field on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	spec, err := specificationToDomain(dto.Specification)
	if err != nil {
		return nil, err
	}

	stages, err := stagesToDomain(dto.Stages)
	if err != nil {
		return nil, err
	}

	var designerID *kernel.UUID
	if dto.DesignerID != nil {
		dID, designerErr := kernel.UUIDFromBytes((*dto.DesignerID)[:])
		if designerErr != nil {
			return nil, designerErr
		}

		designerID = &dID
	}

	return order.RestoreOrder(
		id,
		spec,
		order.OrderType(dto.OrderType),
		order.Priority(dto.Priority),
		order.Status(dto.Status),
		stages,
		designerID,
		dto.CancellationReason,
		dto.EstimatedCost,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func specificationToDomain(dto SpecificationDTO) (order.Specification, error) {
	material, err := order.ParseMaterial(dto.Material)
	if err != nil {
		return order.Specification{}, err
	}

	thickness, err := order.ParseThickness(dto.ThicknessMM)
	if err != nil {
		return order.Specification{}, err
	}

	printingMode, err := order.ParsePrintingMode(dto.PrintingMode)
	if err != nil {
		return order.Specification{}, err
	}

	colors := make([]order.Color, 0, len(dto.Colors))
	for _, c := range dto.Colors {
		colors = append(colors, order.Color(c))
	}

	return order.NewSpecification(
		dto.Width,
		dto.Height,
		dto.WidthRepeat,
		dto.HeightRepeat,
		material,
		thickness,
		printingMode,
		colors,
		dto.CustomColors,
	)
}

func stagesToDomain(dto StagesDTO) (order.Stages, error) {
	design, err := order.ParseStageStatus(dto.Design)
	if err != nil {
		return order.Stages{}, err
	}

	prepress, err := order.ParseStageStatus(dto.Prepress)
	if err != nil {
		return order.Stages{}, err
	}

	delivery, err := order.ParseStageStatus(dto.Delivery)
	if err != nil {
		return order.Stages{}, err
	}

	subProcesses := make(map[order.SubProcess]order.StageStatus, len(dto.SubProcesses))
	for name, statusName := range dto.SubProcesses {
		status, statusErr := order.ParseStageStatus(statusName)
		if statusErr != nil {
			return order.Stages{}, statusErr
		}
		subProcesses[order.SubProcess(name)] = status
	}

	deliveryInfo, err := deliveryInfoToDomain(dto.DeliveryInfo)
	if err != nil {
		return order.Stages{}, err
	}

	return order.RestoreStages(
		design,
		prepress,
		subProcesses,
		delivery,
		dto.DeliveryCompletedAt,
		deliveryInfo,
	)
}

func deliveryInfoToDomain(dto *DeliveryInfoDTO) (*order.DeliveryInfo, error) {
	if dto == nil {
		return nil, nil
	}

	mode, err := order.ParseDeliveryMode(dto.Mode)
	if err != nil {
		return nil, err
	}

	addr := order.Address{
		Street:     dto.Street,
		City:       dto.City,
		State:      dto.State,
		PostalCode: dto.PostalCode,
		Country:    dto.Country,
	}

	var info order.DeliveryInfo
	switch mode {
	case order.DeliveryDirect:
		info, err = order.NewDirectDelivery(addr)
	case order.DeliveryShippingCompany:
		info, err = order.NewShippingCompanyDelivery(dto.ShippingCompany)
	case order.DeliveryClientCollection:
		info, err = order.NewClientCollectionDelivery(addr)
	}
	if err != nil {
		return nil, err
	}

	return &info, nil
}
