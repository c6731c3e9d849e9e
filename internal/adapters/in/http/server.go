// Package http exposes the order lifecycle over a REST API built on
// Echo. Handlers translate wire payloads into commands and queries and
// map domain errors onto HTTP status codes: validation failures become
// 400, missing orders 404, and rejected transitions or lost
// compare-and-swap races 409.
package http

import (
	"errors"
	"net/http"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order lifecycle API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	updateSpecificationHandler commands.UpdateSpecificationCommandHandler
	updatePrepressHandler      commands.UpdatePrepressCommandHandler
	assignDesignerHandler      commands.AssignDesignerCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getStatusBacklogHandler queries.GetStatusBacklogQueryHandler
	getOrderProgressHandler queries.GetOrderProgressQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	updateSpecificationHandler commands.UpdateSpecificationCommandHandler,
	updatePrepressHandler commands.UpdatePrepressCommandHandler,
	assignDesignerHandler commands.AssignDesignerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getStatusBacklogHandler queries.GetStatusBacklogQueryHandler,
	getOrderProgressHandler queries.GetOrderProgressQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		updateSpecificationHandler: updateSpecificationHandler,
		updatePrepressHandler:      updatePrepressHandler,
		assignDesignerHandler:      assignDesignerHandler,
		getOrderHandler:            getOrderHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getStatusBacklogHandler:    getStatusBacklogHandler,
		getOrderProgressHandler:    getOrderProgressHandler,
	}
}

// RegisterRoutes binds all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/backlog", s.GetStatusBacklog)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.PUT("/orders/:id/specification", s.UpdateSpecification)
	api.PUT("/orders/:id/prepress/:process", s.UpdatePrepress)
	api.POST("/orders/:id/designer", s.AssignDesigner)
	api.GET("/orders/:id/progress", s.GetOrderProgress)
}

// CreateOrder handles POST /api/v1/orders - registers a new print order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spec, err := req.Specification.toDomain()
	if err != nil {
		return respondError(ctx, err)
	}

	orderType, err := order.ParseOrderType(req.OrderType)
	if err != nil {
		return respondError(ctx, err)
	}

	priority, err := order.ParsePriority(req.Priority)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, spec, orderType, priority)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order's detail view.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailFromQuery(detail))
}

// GetActiveOrders handles GET /api/v1/orders/active - lists all orders
// not yet in a terminal status.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	activeOrders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(activeOrders))
	for i, o := range activeOrders {
		response[i] = OrderSummaryResponse{
			ID:            o.ID.Bytes(),
			Status:        o.Status,
			OrderType:     o.OrderType,
			Priority:      o.Priority,
			EstimatedCost: o.EstimatedCost,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatusBacklog handles GET /api/v1/orders/backlog - counts active
// orders per pipeline status.
func (s *Server) GetStatusBacklog(ctx echo.Context) error {
	query := queries.NewGetStatusBacklogQuery()

	backlog, err := s.getStatusBacklogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]BacklogEntryResponse, len(backlog))
	for i, entry := range backlog {
		response[i] = BacklogEntryResponse{
			Status: entry.Status,
			Count:  entry.Count,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an
// order to the requested target status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	var selection *services.ModeSelection
	if req.Delivery != nil {
		parsed, selErr := req.Delivery.toSelection()
		if selErr != nil {
			return respondError(ctx, selErr)
		}
		selection = &parsed
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, req.CancellationReason, selection)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateSpecification handles PUT /api/v1/orders/:id/specification -
// replaces the specification of an order still in Submitted status.
func (s *Server) UpdateSpecification(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SpecificationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	spec, err := req.toDomain()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateSpecificationCommand(orderID, spec)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateSpecificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePrepress handles PUT /api/v1/orders/:id/prepress/:process -
// records progress on one prepress sub-process.
func (s *Server) UpdatePrepress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdatePrepressRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStageStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePrepressCommand(orderID, order.SubProcess(ctx.Param("process")), status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updatePrepressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDesigner handles POST /api/v1/orders/:id/designer - attaches a
// designer to an active order.
func (s *Server) AssignDesigner(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignDesignerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	designerID, err := kernel.UUIDFromBytes(req.DesignerID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDesignerCommand(orderID, designerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignDesignerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderProgress handles GET /api/v1/orders/:id/progress - projects the
// order's progress for the requested viewer role. The role query
// parameter accepts "client" (default) and "staff".
func (s *Server) GetOrderProgress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	role := services.RoleClient
	switch ctx.QueryParam("role") {
	case "", "client":
	case "staff":
		role = services.RoleStaff
	default:
		return badRequest(ctx, "Unknown viewer role")
	}

	query, err := queries.NewGetOrderProgressQuery(orderID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	progress, err := s.getOrderProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, progressResponse(progress))
}

func orderDetailFromQuery(detail queries.GetOrderQueryResponse) OrderDetailResponse {
	resp := OrderDetailResponse{
		ID:                 detail.ID.Bytes(),
		Status:             detail.Status,
		OrderType:          detail.OrderType,
		Priority:           detail.Priority,
		CancellationReason: detail.CancellationReason,
		EstimatedCost:      detail.EstimatedCost,
		Specification: SpecificationRequest{
			Width:        detail.Specification.Width,
			Height:       detail.Specification.Height,
			WidthRepeat:  detail.Specification.WidthRepeat,
			HeightRepeat: detail.Specification.HeightRepeat,
			Material:     detail.Specification.Material,
			ThicknessMM:  detail.Specification.ThicknessMM,
			PrintingMode: detail.Specification.PrintingMode,
			Colors:       detail.Specification.Colors,
			CustomColors: detail.Specification.CustomColors,
		},
		Stages: StagesResponse{
			Design:              detail.Stages.Design,
			Prepress:            detail.Stages.Prepress,
			SubProcesses:        detail.Stages.SubProcesses,
			Delivery:            detail.Stages.Delivery,
			DeliveryCompletedAt: detail.Stages.DeliveryCompletedAt,
		},
		CreatedAt: detail.CreatedAt,
		UpdatedAt: detail.UpdatedAt,
	}

	if detail.DesignerID != nil {
		designerID := detail.DesignerID.Bytes()
		resp.DesignerID = &designerID
	}
	if info := detail.Stages.DeliveryInfo; info != nil {
		resp.Stages.DeliveryInfo = &DeliveryInfoResponse{
			Mode:            info.Mode,
			Street:          info.Street,
			City:            info.City,
			State:           info.State,
			PostalCode:      info.PostalCode,
			Country:         info.Country,
			ShippingCompany: info.ShippingCompany,
		}
	}

	return resp
}

func progressResponse(progress services.Progress) ProgressResponse {
	stages := make([]StageProgressResponse, len(progress.Stages))
	for i, stage := range progress.Stages {
		view := StageProgressResponse{
			Name:  stage.Name,
			State: stage.State,
		}
		if stage.SubProcesses != nil {
			view.SubProcesses = make(map[string]string, len(stage.SubProcesses))
			for p, status := range stage.SubProcesses {
				view.SubProcesses[string(p)] = status.String()
			}
		}
		stages[i] = view
	}

	return ProgressResponse{
		CompletedCount:   progress.CompletedCount,
		TotalStages:      progress.TotalStages,
		Percent:          progress.Percent,
		CurrentStepIndex: progress.CurrentStepIndex,
		Stages:           stages,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain and application errors onto HTTP status
// codes. Conflicts cover both illegal lifecycle operations and lost
// compare-and-swap races; the latter are retryable by re-reading.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrAlreadyTerminal),
		errors.Is(err, order.ErrSpecificationLocked),
		errors.Is(err, order.ErrPrepressNotActive),
		errors.Is(err, ports.ErrConcurrentModification):
		code = http.StatusConflict
	case errors.Is(err, order.ErrInvalidDeliveryContext),
		errors.Is(err, order.ErrInvalidSpecification),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
