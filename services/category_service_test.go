package services_test

import (
	"testing"

	"selforder/apperrors"
	"selforder/models"
	"selforder/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	svc := services.NewCategoryService(categoryRepo, productRepo)

	categoryRepo.On("ExistsByName", "Lanches").Return(false, nil)
	categoryRepo.On("Save", mock.AnythingOfType("*models.Category")).Return(nil)

	category, err := svc.CreateCategory("Lanches")

	assert.NoError(t, err)
	assert.Equal(t, "Lanches", category.Name)
	assert.NotEqual(t, uuid.Nil, category.ID)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	svc := services.NewCategoryService(categoryRepo, productRepo)

	categoryRepo.On("ExistsByName", "Lanches").Return(true, nil)

	category, err := svc.CreateCategory("Lanches")

	assert.Nil(t, category)
	assert.True(t, apperrors.IsDomain(err))
	assert.Contains(t, err.Error(), "already exists")
	categoryRepo.AssertNotCalled(t, "Save")
}

func TestCategoryService_UpdateCategory_BlankName(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	svc := services.NewCategoryService(categoryRepo, productRepo)

	category, err := svc.UpdateCategory(uuid.New(), "   ")

	assert.Nil(t, category)
	assert.True(t, apperrors.IsDomain(err))
	categoryRepo.AssertNotCalled(t, "FindByID")
}

func TestCategoryService_FindCategoryByID_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	svc := services.NewCategoryService(categoryRepo, productRepo)

	id := uuid.New()
	categoryRepo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	category, err := svc.FindCategoryByID(id)

	assert.Nil(t, category)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCategoryService_DeleteCategory_LinkedToProducts(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	svc := services.NewCategoryService(categoryRepo, productRepo)

	id := uuid.New()
	categoryRepo.On("FindByID", id).Return(&models.Category{ID: id, Name: "Bebidas"}, nil)
	productRepo.On("FindByCategoryID", id).Return([]models.Product{{ID: uuid.New(), Name: "Refrigerante"}}, nil)

	err := svc.DeleteCategory(id)

	assert.True(t, apperrors.IsDomain(err))
	categoryRepo.AssertNotCalled(t, "DeleteByID")
}

func TestCategoryService_DeleteCategory_Unreferenced(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	svc := services.NewCategoryService(categoryRepo, productRepo)

	id := uuid.New()
	categoryRepo.On("FindByID", id).Return(&models.Category{ID: id, Name: "Sobremesas"}, nil)
	productRepo.On("FindByCategoryID", id).Return([]models.Product{}, nil)
	categoryRepo.On("DeleteByID", id).Return(nil)

	err := svc.DeleteCategory(id)

	assert.NoError(t, err)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	svc := services.NewCategoryService(categoryRepo, productRepo)

	id := uuid.New()
	categoryRepo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteCategory(id)

	assert.True(t, apperrors.IsNotFound(err))
	categoryRepo.AssertNotCalled(t, "DeleteByID")
}
