package controllers

import (
	"strconv"

	"selforder/services"

	"github.com/gofiber/fiber/v2"
)

// WebhookController handles inbound notifications from the payment
// provider.
type WebhookController struct {
	notificationService services.IPaymentNotificationService
}

// NewWebhookController creates a new WebhookController instance.
func NewWebhookController(svc services.IPaymentNotificationService) *WebhookController {
	return &WebhookController{notificationService: svc}
}

// HandlePaymentNotification handles POST /webhooks/payment. The provider
// sends the payment id under data.id; processing outcomes are never
// reported back, the provider only expects an acknowledgement.
func (c *WebhookController) HandlePaymentNotification(ctx *fiber.Ctx) error {
	var request struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	paymentID, err := strconv.ParseInt(request.Data.ID, 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	c.notificationService.HandlePaymentNotification(paymentID)
	return ctx.SendStatus(fiber.StatusOK)
}
