package repository

import (
	"selforder/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IOrderRepository defines the interface for order data operations.
type IOrderRepository interface {
	Create(order *models.Order) error
	FindByID(id uint) (*models.Order, error)
	FindByOptionalStatus(status *models.OrderStatus) ([]models.Order, error)
	FindByPaymentID(paymentID int64) (*models.Order, error)
	ExistsByProductID(productID uuid.UUID) (bool, error)
	Save(order *models.Order) error
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts a new order, including its items, in a transaction.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// FindByID retrieves an order with its items and customer.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items.Product").Preload("Customer").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByOptionalStatus lists orders, filtered by status when one is given.
func (r *OrderRepository) FindByOptionalStatus(status *models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	query := r.DB.Preload("Items.Product").Preload("Customer")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Find(&orders).Error
	return orders, err
}

// FindByPaymentID retrieves the order holding the given external payment id.
func (r *OrderRepository) FindByPaymentID(paymentID int64) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items.Product").Preload("Customer").
		Where("payment_id = ?", paymentID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ExistsByProductID reports whether any order item references the product.
func (r *OrderRepository) ExistsByProductID(productID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error
	return count > 0, err
}

// Save updates an existing order.
func (r *OrderRepository) Save(order *models.Order) error {
	return r.DB.Save(order).Error
}
