package services

import (
	"log"

	"selforder/models"
)

// IPaymentNotificationService defines the interface for the inbound
// payment webhook.
type IPaymentNotificationService interface {
	HandlePaymentNotification(paymentID int64)
}

// PaymentNotificationService implements IPaymentNotificationService.
type PaymentNotificationService struct {
	orderService IOrderService
}

// NewPaymentNotificationService creates a new PaymentNotificationService instance.
func NewPaymentNotificationService(orderService IOrderService) IPaymentNotificationService {
	return &PaymentNotificationService{orderService: orderService}
}

// HandlePaymentNotification marks the referenced order as paid. The
// external caller only expects an acknowledgement, so every failure is
// logged and swallowed here.
func (s *PaymentNotificationService) HandlePaymentNotification(paymentID int64) {
	log.Printf("Payment notification received: paymentId=%d", paymentID)

	if _, err := s.orderService.UpdateOrderStatusPayment(paymentID, models.PaymentApproved); err != nil {
		log.Printf("Failed to process payment notification: paymentId=%d err=%v", paymentID, err)
		return
	}

	log.Printf("Payment notification processed: paymentId=%d", paymentID)
}
