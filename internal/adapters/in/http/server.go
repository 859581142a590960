// Package http contains the inbound HTTP adapter: request/response
// contracts, routing, and the mapping from domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/item"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateStatusHandler: updateStatusHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		getOrdersHandler:    getOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:id", s.CancelOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.LineInput, 0, len(req.Items))
	for _, in := range req.Items {
		itemID, err := kernel.UUIDFromString(in.ItemID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid item id: " + in.ItemID,
			})
		}

		lines = append(lines, commands.LineInput{
			ItemID:         itemID,
			Quantity:       in.Quantity,
			UnitPriceCents: in.UnitPriceCents,
			Notes:          in.Notes,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerName, order.Details{
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		TableNumber:   req.TableNumber,
		Notes:         req.Notes,
	}, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to create order")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err, "Failed to load created order")
	}

	created, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to load created order")
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrders handles GET /api/v1/orders - lists orders, newest first.
// An optional status query parameter restricts the list to one status.
func (s *Server) GetOrders(ctx echo.Context) error {
	var query queries.GetOrdersQuery

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Unknown status: " + raw,
			})
		}

		query, err = queries.NewGetOrdersQueryInStatus(status)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Unknown status: " + raw,
			})
		}
	} else {
		query = queries.NewGetOrdersQuery()
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:              o.ID.String(),
			CustomerName:    o.CustomerName,
			TableNumber:     o.TableNumber,
			Status:          o.Status,
			TotalPriceCents: o.TotalPriceCents,
			LineCount:       o.LineCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - transitions
// an order. A "cancelled" target is routed through the cancellation flow
// so the stock compensation always runs.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Unknown status: " + req.Status,
		})
	}

	if target == order.Cancelled {
		return s.cancel(ctx, orderID)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return s.writeError(ctx, err, "Invalid status update")
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles DELETE /api/v1/orders/:id - cancels an order and
// restores its reserved stock.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	return s.cancel(ctx, orderID)
}

func (s *Server) cancel(ctx echo.Context, orderID kernel.UUID) error {
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err, "Invalid cancellation request")
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps domain errors to HTTP status codes: validation errors to
// 400, missing objects to 404, stock and lifecycle conflicts to 409, and
// everything else to 500.
func (s *Server) writeError(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrOrderHasNoLines),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, item.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidStatusTransition):
		code = http.StatusConflict
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}

func toOrderResponse(resp queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, len(resp.Lines))
	for i, line := range resp.Lines {
		lines[i] = OrderLineResponse{
			ItemID:         line.ItemID.String(),
			ItemName:       line.ItemName,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			SubtotalCents:  line.SubtotalCents,
			Notes:          line.Notes,
		}
	}

	return OrderResponse{
		ID:              resp.ID.String(),
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		TableNumber:     resp.TableNumber,
		Notes:           resp.Notes,
		Status:          resp.Status,
		TotalPriceCents: resp.TotalPriceCents,
		Lines:           lines,
	}
}
