package repository

import (
	"selforder/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ICustomerRepository defines the interface for customer data operations.
type ICustomerRepository interface {
	ExistsByCpf(cpf string) (bool, error)
	FindByCpf(cpf string) (*models.Customer, error)
	FindByID(id uuid.UUID) (*models.Customer, error)
	FindAll() ([]models.Customer, error)
	Save(customer *models.Customer) error
}

// CustomerRepository implements ICustomerRepository for GORM.
type CustomerRepository struct {
	DB *gorm.DB
}

// NewCustomerRepository creates a new CustomerRepository instance.
func NewCustomerRepository(db *gorm.DB) ICustomerRepository {
	return &CustomerRepository{DB: db}
}

// ExistsByCpf reports whether a customer with the given CPF exists.
func (r *CustomerRepository) ExistsByCpf(cpf string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Customer{}).Where("cpf = ?", cpf).Count(&count).Error
	return count > 0, err
}

// FindByCpf retrieves a customer by CPF.
func (r *CustomerRepository) FindByCpf(cpf string) (*models.Customer, error) {
	var customer models.Customer
	err := r.DB.Where("cpf = ?", cpf).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByID retrieves a customer by ID.
func (r *CustomerRepository) FindByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.DB.First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindAll retrieves every customer.
func (r *CustomerRepository) FindAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.DB.Find(&customers).Error
	return customers, err
}

// Save inserts or updates a customer.
func (r *CustomerRepository) Save(customer *models.Customer) error {
	return r.DB.Save(customer).Error
}
