package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the fulfillment status of an order.
type OrderStatus string

const (
	OrderStatusReceived      OrderStatus = "RECEIVED"
	OrderStatusInPreparation OrderStatus = "IN_PREPARATION"
	OrderStatusReady         OrderStatus = "READY"
	OrderStatusCompleted     OrderStatus = "COMPLETED"
)

// StatusPayment is the payment status reported by the payment provider.
type StatusPayment string

const (
	PaymentAwaiting StatusPayment = "AGUARDANDO_PAGAMENTO"
	PaymentApproved StatusPayment = "APROVADO"
)

// Order represents a single order placed at the self-service kiosk.
// CustomerID is nil for guest checkouts. PaymentID holds the external
// payment identifier returned by the payment provider and is used to
// correlate webhook notifications back to the order.
type Order struct {
	gorm.Model
	CustomerID    *uuid.UUID      `json:"customer_id" gorm:"type:char(36)"`
	Customer      *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items         []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(20);not null"`
	StatusPayment StatusPayment   `json:"status_payment" gorm:"type:varchar(30);not null"`
	PaymentID     *int64          `json:"payment_id" gorm:"uniqueIndex"`
}

// OrderItem is a priced product line within an order. UnitPrice is the
// product price snapshotted at order-creation time, not live-linked to
// later price changes.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:char(36);not null"`
	Product   Product         `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
}
