package services_test

import (
	"testing"

	"selforder/apperrors"
	"selforder/models"
	"selforder/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newProductServiceWithMocks() (services.IProductService, *MockProductRepository, *MockCategoryRepository, *MockOrderRepository) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	orderRepo := new(MockOrderRepository)
	svc := services.NewProductService(productRepo, categoryRepo, orderRepo)
	return svc, productRepo, categoryRepo, orderRepo
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	svc, productRepo, categoryRepo, _ := newProductServiceWithMocks()

	category := &models.Category{ID: uuid.New(), Name: "Lanches"}
	categoryRepo.On("FindByID", category.ID).Return(category, nil)
	productRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil)

	product, err := svc.CreateProduct("X-Salada", "Lanche com salada", decimal.NewFromFloat(27.90), category.ID)

	assert.NoError(t, err)
	assert.True(t, product.Active)
	assert.Equal(t, category.ID, product.CategoryID)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(27.90)))
	productRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_CategoryNotFound(t *testing.T) {
	svc, productRepo, categoryRepo, _ := newProductServiceWithMocks()

	missing := uuid.New()
	categoryRepo.On("FindByID", missing).Return(nil, gorm.ErrRecordNotFound)

	product, err := svc.CreateProduct("X-Salada", "", decimal.NewFromFloat(27.90), missing)

	assert.Nil(t, product)
	assert.True(t, apperrors.IsNotFound(err))
	productRepo.AssertNotCalled(t, "Save")
}

func TestProductService_UpdateProduct_KeepsCategoryWhenNotGiven(t *testing.T) {
	svc, productRepo, categoryRepo, _ := newProductServiceWithMocks()

	existingCategory := uuid.New()
	product := &models.Product{ID: uuid.New(), Name: "X-Bacon", CategoryID: existingCategory, Active: true}
	productRepo.On("FindByID", product.ID).Return(product, nil)
	productRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil)

	updated, err := svc.UpdateProduct(product.ID, "X-Bacon Duplo", "Agora com mais bacon", decimal.NewFromFloat(32.90), nil)

	assert.NoError(t, err)
	assert.Equal(t, "X-Bacon Duplo", updated.Name)
	assert.Equal(t, existingCategory, updated.CategoryID)
	categoryRepo.AssertNotCalled(t, "FindByID")
}

func TestProductService_UpdateProduct_NewCategoryNotFound(t *testing.T) {
	svc, productRepo, categoryRepo, _ := newProductServiceWithMocks()

	product := &models.Product{ID: uuid.New(), Name: "X-Bacon", Active: true}
	productRepo.On("FindByID", product.ID).Return(product, nil)
	missing := uuid.New()
	categoryRepo.On("FindByID", missing).Return(nil, gorm.ErrRecordNotFound)

	updated, err := svc.UpdateProduct(product.ID, "X-Bacon", "", decimal.NewFromFloat(30), &missing)

	assert.Nil(t, updated)
	assert.True(t, apperrors.IsNotFound(err))
	productRepo.AssertNotCalled(t, "Save")
}

func TestProductService_DeleteProduct_LinkedToOrder(t *testing.T) {
	svc, productRepo, _, orderRepo := newProductServiceWithMocks()

	product := &models.Product{ID: uuid.New(), Name: "X-Tudo", Active: true}
	productRepo.On("FindByID", product.ID).Return(product, nil)
	orderRepo.On("ExistsByProductID", product.ID).Return(true, nil)

	err := svc.DeleteProduct(product.ID)

	assert.True(t, apperrors.IsDomain(err))
	assert.Contains(t, err.Error(), "linked to an order")
	productRepo.AssertNotCalled(t, "DeleteByID")
}

func TestProductService_DeleteProduct_Unreferenced(t *testing.T) {
	svc, productRepo, _, orderRepo := newProductServiceWithMocks()

	product := &models.Product{ID: uuid.New(), Name: "X-Tudo", Active: true}
	productRepo.On("FindByID", product.ID).Return(product, nil)
	orderRepo.On("ExistsByProductID", product.ID).Return(false, nil)
	productRepo.On("DeleteByID", product.ID).Return(nil)

	err := svc.DeleteProduct(product.ID)

	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	svc, productRepo, _, orderRepo := newProductServiceWithMocks()

	missing := uuid.New()
	productRepo.On("FindByID", missing).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteProduct(missing)

	assert.True(t, apperrors.IsNotFound(err))
	orderRepo.AssertNotCalled(t, "ExistsByProductID")
}
