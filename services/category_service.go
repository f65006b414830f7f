package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"selforder/apperrors"
	"selforder/models"
	"selforder/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ICategoryService defines the interface for category business logic.
type ICategoryService interface {
	CreateCategory(name string) (*models.Category, error)
	UpdateCategory(id uuid.UUID, name string) (*models.Category, error)
	FindCategoryByID(id uuid.UUID) (*models.Category, error)
	FindAllCategories() ([]models.Category, error)
	DeleteCategory(id uuid.UUID) error
}

// CategoryService implements ICategoryService.
type CategoryService struct {
	categoryRepo repository.ICategoryRepository
	productRepo  repository.IProductRepository
}

// NewCategoryService creates a new CategoryService instance.
func NewCategoryService(categoryRepo repository.ICategoryRepository, productRepo repository.IProductRepository) ICategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// CreateCategory creates a category, rejecting duplicate names.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	exists, err := s.categoryRepo.ExistsByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		log.Printf("Category creation failed - name already exists: name=%s", name)
		return nil, apperrors.NewDomain(fmt.Sprintf("category with name %s already exists", name))
	}

	category := &models.Category{
		ID:   uuid.New(),
		Name: name,
	}
	if err := s.categoryRepo.Save(category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	log.Printf("Category created: categoryId=%s name=%s", category.ID, name)
	return category, nil
}

// UpdateCategory renames a category. Blank names are rejected.
func (s *CategoryService) UpdateCategory(id uuid.UUID, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewDomain("category name cannot be blank")
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	category.Name = name
	if err := s.categoryRepo.Save(category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	log.Printf("Category updated: categoryId=%s name=%s", id, name)
	return category, nil
}

// FindCategoryByID retrieves a single category.
func (s *CategoryService) FindCategoryByID(id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// FindAllCategories lists every category. Empty results are not an error.
func (s *CategoryService) FindAllCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// DeleteCategory removes a category, unless products still reference it.
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("category not found")
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	products, err := s.productRepo.FindByCategoryID(id)
	if err != nil {
		return fmt.Errorf("failed to check category products: %w", err)
	}
	if len(products) > 0 {
		log.Printf("Category deletion failed - linked to products: categoryId=%s count=%d", id, len(products))
		return apperrors.NewDomain("category is linked to one or more products and cannot be deleted")
	}

	if err := s.categoryRepo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	log.Printf("Category deleted: categoryId=%s", id)
	return nil
}
