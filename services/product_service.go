package services

import (
	"errors"
	"fmt"
	"log"

	"selforder/apperrors"
	"selforder/models"
	"selforder/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IProductService defines the interface for product business logic.
type IProductService interface {
	CreateProduct(name, description string, price decimal.Decimal, categoryID uuid.UUID) (*models.Product, error)
	UpdateProduct(id uuid.UUID, name, description string, price decimal.Decimal, categoryID *uuid.UUID) (*models.Product, error)
	FindProductByID(id uuid.UUID) (*models.Product, error)
	FindProductsByName(name string) ([]models.Product, error)
	FindAllProducts() ([]models.Product, error)
	FindProductsByCategory(categoryID uuid.UUID) ([]models.Product, error)
	DeleteProduct(id uuid.UUID) error
}

// ProductService implements IProductService.
type ProductService struct {
	productRepo  repository.IProductRepository
	categoryRepo repository.ICategoryRepository
	orderRepo    repository.IOrderRepository
}

// NewProductService creates a new ProductService instance.
func NewProductService(productRepo repository.IProductRepository, categoryRepo repository.ICategoryRepository, orderRepo repository.IOrderRepository) IProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

// CreateProduct creates an active product under an existing category.
func (s *ProductService) CreateProduct(name, description string, price decimal.Decimal, categoryID uuid.UUID) (*models.Product, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	product := &models.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  category.ID,
		Category:    *category,
		Active:      true,
	}
	if err := s.productRepo.Save(product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	log.Printf("Product created: productId=%s name=%s categoryId=%s", product.ID, name, categoryID)
	return product, nil
}

// UpdateProduct applies a partial update. The category is re-resolved
// only when a new categoryID is given.
func (s *ProductService) UpdateProduct(id uuid.UUID, name, description string, price decimal.Decimal, categoryID *uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if categoryID != nil {
		category, err := s.categoryRepo.FindByID(*categoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewNotFound("category not found")
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		product.CategoryID = category.ID
		product.Category = *category
	}

	product.Name = name
	product.Description = description
	product.Price = price

	if err := s.productRepo.Save(product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	log.Printf("Product updated: productId=%s name=%s", id, name)
	return product, nil
}

// FindProductByID retrieves a single product.
func (s *ProductService) FindProductByID(id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

// FindProductsByName lists products matching a name.
func (s *ProductService) FindProductsByName(name string) ([]models.Product, error) {
	products, err := s.productRepo.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find products by name: %w", err)
	}
	return products, nil
}

// FindAllProducts lists every product.
func (s *ProductService) FindAllProducts() ([]models.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindProductsByCategory lists the products of a category.
func (s *ProductService) FindProductsByCategory(categoryID uuid.UUID) ([]models.Product, error) {
	products, err := s.productRepo.FindByCategoryID(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find products by category: %w", err)
	}
	return products, nil
}

// DeleteProduct removes a product, unless an order references it.
func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("product not found")
		}
		return fmt.Errorf("failed to find product: %w", err)
	}

	linked, err := s.orderRepo.ExistsByProductID(id)
	if err != nil {
		return fmt.Errorf("failed to check product orders: %w", err)
	}
	if linked {
		log.Printf("Product deletion failed - linked to orders: productId=%s", id)
		return apperrors.NewDomain("product is already linked to an order and cannot be deleted")
	}

	if err := s.productRepo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	log.Printf("Product deleted: productId=%s", id)
	return nil
}
