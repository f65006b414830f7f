package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"selforder/apperrors"
	"selforder/models"
	"selforder/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const paymentDescription = "Pagamento para o pedido"

// OrderItemRequest is a requested order line: a product and a quantity.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// IOrderService defines the interface for the order workflow.
type IOrderService interface {
	CreateOrder(customerID *uuid.UUID, items []OrderItemRequest) (*models.Order, error)
	FindOrderByID(id uint) (*models.Order, error)
	FindOrdersByStatus(status *models.OrderStatus) ([]models.Order, error)
	UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error)
	StartOrderPreparation(id uint) (*models.Order, error)
	UpdateOrderStatusPayment(paymentID int64, statusPayment models.StatusPayment) (*models.Order, error)
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo      repository.IOrderRepository
	customerRepo   repository.ICustomerRepository
	productRepo    repository.IProductRepository
	paymentService IPaymentService
	publisher      IEventPublisher
	topic          string
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(orderRepo repository.IOrderRepository,
	customerRepo repository.ICustomerRepository,
	productRepo repository.IProductRepository,
	paymentService IPaymentService,
	publisher IEventPublisher,
	topic string) IOrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		paymentService: paymentService,
		publisher:      publisher,
		topic:          topic,
	}
}

// CreateOrder validates the requested items against the catalog, snapshots
// current prices, requests a payment authorization and persists the order.
// Nothing is persisted until the payment provider has issued an external
// payment id for the order.
func (s *OrderService) CreateOrder(customerID *uuid.UUID, items []OrderItemRequest) (*models.Order, error) {
	log.Printf("Order creation started: items=%d", len(items))

	customer, err := s.resolveCustomer(customerID)
	if err != nil {
		return nil, err
	}

	orderItems, total, err := s.buildOrderItems(items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		TotalAmount:   total,
		Status:        models.OrderStatusReceived,
		StatusPayment: models.PaymentAwaiting,
		Items:         orderItems,
	}
	if customer != nil {
		order.CustomerID = &customer.ID
	}

	paymentID, err := s.requestPaymentOrder(total, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}
	order.PaymentID = &paymentID

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Printf("Order created: orderId=%d totalAmount=%s paymentId=%d items=%d",
		order.ID, order.TotalAmount, paymentID, len(orderItems))
	s.publishOrderEvent("order-created", order)

	return order, nil
}

// resolveCustomer loads the customer when an id is given. A nil id is a
// valid guest order.
func (s *OrderService) resolveCustomer(customerID *uuid.UUID) (*models.Customer, error) {
	if customerID == nil {
		return nil, nil
	}
	customer, err := s.customerRepo.FindByID(*customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return customer, nil
}

// buildOrderItems validates each requested line and snapshots the current
// product price into an order item.
func (s *OrderService) buildOrderItems(items []OrderItemRequest) ([]models.OrderItem, decimal.Decimal, error) {
	orderItems := make([]models.OrderItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, decimal.Zero, apperrors.NewDomain("quantity must be greater than zero")
		}

		product, err := s.productRepo.FindByID(item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, apperrors.NewNotFound("product not found")
			}
			return nil, decimal.Zero, fmt.Errorf("failed to find product: %w", err)
		}
		if !product.Active {
			return nil, decimal.Zero, apperrors.NewDomain(fmt.Sprintf("product is not active: %s", product.Name))
		}

		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Product:   *product,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return orderItems, total, nil
}

// requestPaymentOrder asks the payment provider for a pix authorization.
// Payer email and CPF are sent only when a customer is attached.
func (s *OrderService) requestPaymentOrder(total decimal.Decimal, customer *models.Customer) (int64, error) {
	var email, cpf string
	if customer != nil {
		email = customer.Email
		cpf = customer.CPF
	}
	return s.paymentService.CreatePaymentOrder(total, paymentDescription, "pix", 1, email, "CPF", cpf)
}

// FindOrderByID retrieves a single order.
func (s *OrderService) FindOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return order, nil
}

// FindOrdersByStatus lists orders, optionally filtered by status.
func (s *OrderService) FindOrdersByStatus(status *models.OrderStatus) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByOptionalStatus(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new fulfillment status. The
// transition is gated on an approved payment.
func (s *OrderService) UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if order.StatusPayment != models.PaymentApproved {
		log.Printf("Order status update rejected - payment not approved: orderId=%d paymentStatus=%s",
			id, order.StatusPayment)
		return nil, apperrors.NewDomain("the order is not paid")
	}

	oldStatus := order.Status
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := s.orderRepo.Save(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Printf("Order status updated: orderId=%d oldStatus=%s newStatus=%s", id, oldStatus, status)
	s.publishOrderEvent("order-status-changed", order)

	return order, nil
}

// StartOrderPreparation unconditionally moves an order to IN_PREPARATION.
// This administrative transition intentionally bypasses the payment gate.
func (s *OrderService) StartOrderPreparation(id uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order not found")
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	oldStatus := order.Status
	order.Status = models.OrderStatusInPreparation
	order.UpdatedAt = time.Now()
	if err := s.orderRepo.Save(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Printf("Order moved to preparation: orderId=%d oldStatus=%s", id, oldStatus)
	s.publishOrderEvent("order-status-changed", order)

	return order, nil
}

// UpdateOrderStatusPayment reconciles a payment notification: the order is
// looked up by its external payment id, the payment status is overwritten
// and fulfillment is forced to IN_PREPARATION regardless of prior state.
func (s *OrderService) UpdateOrderStatusPayment(paymentID int64, statusPayment models.StatusPayment) (*models.Order, error) {
	order, err := s.orderRepo.FindByPaymentID(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("order not found")
		}
		return nil, fmt.Errorf("failed to find order by payment id: %w", err)
	}

	oldPaymentStatus := order.StatusPayment
	order.StatusPayment = statusPayment
	order.Status = models.OrderStatusInPreparation
	order.UpdatedAt = time.Now()
	if err := s.orderRepo.Save(order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	log.Printf("Order payment status updated: paymentId=%d orderId=%d oldPaymentStatus=%s newPaymentStatus=%s",
		paymentID, order.ID, oldPaymentStatus, statusPayment)
	s.publishOrderEvent("order-payment-updated", order)

	return order, nil
}

// orderEvent is the payload published to Kafka after order mutations.
type orderEvent struct {
	Type          string               `json:"type"`
	OrderID       uint                 `json:"order_id"`
	Status        models.OrderStatus   `json:"status"`
	StatusPayment models.StatusPayment `json:"status_payment"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// publishOrderEvent pushes an event to Kafka. The database write is the
// source of truth, so publish failures are logged and never fail the
// operation.
func (s *OrderService) publishOrderEvent(eventType string, order *models.Order) {
	payload, err := json.Marshal(orderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		Status:        order.Status,
		StatusPayment: order.StatusPayment,
		TotalAmount:   order.TotalAmount,
		OccurredAt:    time.Now(),
	})
	if err != nil {
		log.Printf("Failed to marshal order event: orderId=%d type=%s err=%v", order.ID, eventType, err)
		return
	}
	if err := s.publisher.Publish(s.topic, payload); err != nil {
		log.Printf("Failed to publish order event: orderId=%d type=%s err=%v", order.ID, eventType, err)
	}
}
