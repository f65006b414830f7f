package repository

import (
	"selforder/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IProductRepository defines the interface for product data operations.
type IProductRepository interface {
	FindByID(id uuid.UUID) (*models.Product, error)
	FindByName(name string) ([]models.Product, error)
	FindAll() ([]models.Product, error)
	FindByCategoryID(categoryID uuid.UUID) ([]models.Product, error)
	Save(product *models.Product) error
	DeleteByID(id uuid.UUID) error
}

// ProductRepository implements IProductRepository for GORM.
type ProductRepository struct {
	DB *gorm.DB
}

// NewProductRepository creates a new ProductRepository instance.
func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{DB: db}
}

// FindByID retrieves a product by its ID, with its category.
func (r *ProductRepository) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.DB.Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByName retrieves products whose name matches the given value.
func (r *ProductRepository) FindByName(name string) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Preload("Category").Where("name = ?", name).Find(&products).Error
	return products, err
}

// FindAll retrieves every product.
func (r *ProductRepository) FindAll() ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Preload("Category").Find(&products).Error
	return products, err
}

// FindByCategoryID retrieves the products belonging to a category.
func (r *ProductRepository) FindByCategoryID(categoryID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Preload("Category").Where("category_id = ?", categoryID).Find(&products).Error
	return products, err
}

// Save inserts or updates a product.
func (r *ProductRepository) Save(product *models.Product) error {
	return r.DB.Save(product).Error
}

// DeleteByID removes a product by its ID.
func (r *ProductRepository) DeleteByID(id uuid.UUID) error {
	return r.DB.Delete(&models.Product{}, "id = ?", id).Error
}
