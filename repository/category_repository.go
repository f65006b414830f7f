package repository

import (
	"selforder/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ICategoryRepository defines the interface for category data operations.
type ICategoryRepository interface {
	ExistsByName(name string) (bool, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	FindAll() ([]models.Category, error)
	Save(category *models.Category) error
	DeleteByID(id uuid.UUID) error
}

// CategoryRepository implements ICategoryRepository for GORM.
type CategoryRepository struct {
	DB *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository instance.
func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{DB: db}
}

// ExistsByName reports whether a category with the given name exists.
func (r *CategoryRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// FindByID retrieves a category by its ID.
func (r *CategoryRepository) FindByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.DB.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindAll retrieves every category.
func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.Find(&categories).Error
	return categories, err
}

// Save inserts or updates a category.
func (r *CategoryRepository) Save(category *models.Category) error {
	return r.DB.Save(category).Error
}

// DeleteByID removes a category by its ID.
func (r *CategoryRepository) DeleteByID(id uuid.UUID) error {
	return r.DB.Delete(&models.Category{}, "id = ?", id).Error
}
