package services_test

import (
	"selforder/models"
	"selforder/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Hand-written mocks for every repository and collaborator interface the
// services depend on.

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ExistsByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id uuid.UUID) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteByID(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(id uuid.UUID) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(name string) ([]models.Product, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategoryID(categoryID uuid.UUID) ([]models.Product, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Save(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByID(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ExistsByCpf(cpf string) (bool, error) {
	args := m.Called(cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) FindByCpf(cpf string) (*models.Customer, error) {
	args := m.Called(cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(id uuid.UUID) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll() ([]models.Customer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOptionalStatus(status *models.OrderStatus) ([]models.Order, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByPaymentID(paymentID int64) (*models.Order, error) {
	args := m.Called(paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByProductID(productID uuid.UUID) (bool, error) {
	args := m.Called(productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Save(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePaymentOrder(amount decimal.Decimal, description, method string, installments int,
	email, identificationType, cpf string) (int64, error) {
	args := m.Called(amount, description, method, installments, email, identificationType, cpf)
	return args.Get(0).(int64), args.Error(1)
}

type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) CreateUser(username, email, name string) error {
	args := m.Called(username, email, name)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(topic string, message []byte) error {
	args := m.Called(topic, message)
	return args.Error(0)
}

// MockOrderService mocks the order workflow for the notification tests.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(customerID *uuid.UUID, items []services.OrderItemRequest) (*models.Order, error) {
	args := m.Called(customerID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) FindOrderByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) FindOrdersByStatus(status *models.OrderStatus) ([]models.Order, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) StartOrderPreparation(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderStatusPayment(paymentID int64, statusPayment models.StatusPayment) (*models.Order, error) {
	args := m.Called(paymentID, statusPayment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}
