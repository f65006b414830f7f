package services

import (
	"errors"
	"fmt"
	"log"

	"selforder/apperrors"
	"selforder/models"
	"selforder/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ICustomerService defines the interface for customer business logic.
type ICustomerService interface {
	RegisterCustomer(name, email, cpf string) (*models.Customer, error)
	FindCustomerByCpf(cpf string) (*models.Customer, error)
	FindCustomerByID(id uuid.UUID) (*models.Customer, error)
	FindAllCustomers() ([]models.Customer, error)
}

// CustomerService implements ICustomerService.
type CustomerService struct {
	customerRepo    repository.ICustomerRepository
	identityService IIdentityService
}

// NewCustomerService creates a new CustomerService instance.
func NewCustomerService(customerRepo repository.ICustomerRepository, identityService IIdentityService) ICustomerService {
	return &CustomerService{
		customerRepo:    customerRepo,
		identityService: identityService,
	}
}

// RegisterCustomer creates a customer record keyed by CPF, then provisions
// the identity-provider account. The database record is the source of
// truth: a provisioning failure is logged and the registration still
// succeeds.
func (s *CustomerService) RegisterCustomer(name, email, cpf string) (*models.Customer, error) {
	exists, err := s.customerRepo.ExistsByCpf(cpf)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer CPF: %w", err)
	}
	if exists {
		log.Printf("Customer registration failed - CPF already exists: cpf=%s", cpf)
		return nil, apperrors.NewDomain(fmt.Sprintf("customer with CPF %s already exists", cpf))
	}

	customer := &models.Customer{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		CPF:   cpf,
	}
	if err := s.customerRepo.Save(customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	// Identity provisioning is best-effort: the record is already committed.
	if err := s.identityService.CreateUser(cpf, email, name); err != nil {
		log.Printf("Failed to provision identity account (database record created): customerId=%s cpf=%s err=%v",
			customer.ID, cpf, err)
	}

	log.Printf("Customer registered: customerId=%s cpf=%s", customer.ID, cpf)
	return customer, nil
}

// FindCustomerByCpf retrieves a customer by CPF.
func (s *CustomerService) FindCustomerByCpf(cpf string) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByCpf(cpf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer by CPF: %w", err)
	}
	return customer, nil
}

// FindCustomerByID retrieves a customer by ID.
func (s *CustomerService) FindCustomerByID(id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return customer, nil
}

// FindAllCustomers lists every customer. Empty results are not an error.
func (s *CustomerService) FindAllCustomers() ([]models.Customer, error) {
	customers, err := s.customerRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
