package controllers

import (
	"strconv"

	"selforder/models"
	"selforder/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// OrderController handles HTTP requests related to orders.
type OrderController struct {
	orderService services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// CreateOrder handles POST /orders. customer_id may be omitted for guest
// checkouts.
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var request struct {
		CustomerID *uuid.UUID                  `json:"customer_id"`
		Items      []services.OrderItemRequest `json:"items"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	order, err := c.orderService.CreateOrder(request.CustomerID, request.Items)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(order)
}

// FindOrderByID handles GET /orders/:id.
func (c *OrderController) FindOrderByID(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	order, err := c.orderService.FindOrderByID(uint(id))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(order)
}

// FindOrders handles GET /orders with an optional status query filter.
func (c *OrderController) FindOrders(ctx *fiber.Ctx) error {
	var status *models.OrderStatus
	if statusParam := ctx.Query("status"); statusParam != "" {
		s := models.OrderStatus(statusParam)
		status = &s
	}

	orders, err := c.orderService.FindOrdersByStatus(status)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(orders)
}

// UpdateOrderStatus handles PUT /orders/:id/status. The transition is
// rejected with 409 while the order is unpaid.
func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	var request struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	order, err := c.orderService.UpdateOrderStatus(uint(id), request.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(order)
}

// StartOrderPreparation handles PUT /orders/:id/preparation, the
// administrative transition that bypasses the payment gate.
func (c *OrderController) StartOrderPreparation(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	order, err := c.orderService.StartOrderPreparation(uint(id))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(order)
}
