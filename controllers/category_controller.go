package controllers

import (
	"selforder/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CategoryController handles HTTP requests related to categories.
type CategoryController struct {
	categoryService services.ICategoryService
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(svc services.ICategoryService) *CategoryController {
	return &CategoryController{categoryService: svc}
}

// CreateCategory handles POST /categories.
func (c *CategoryController) CreateCategory(ctx *fiber.Ctx) error {
	var request struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	category, err := c.categoryService.CreateCategory(request.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles PUT /categories/:id.
func (c *CategoryController) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	var request struct {
		Name string `json:"name"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	category, err := c.categoryService.UpdateCategory(id, request.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(category)
}

// FindCategoryByID handles GET /categories/:id.
func (c *CategoryController) FindCategoryByID(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	category, err := c.categoryService.FindCategoryByID(id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(category)
}

// FindAllCategories handles GET /categories.
func (c *CategoryController) FindAllCategories(ctx *fiber.Ctx) error {
	categories, err := c.categoryService.FindAllCategories()
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(categories)
}

// DeleteCategory handles DELETE /categories/:id.
func (c *CategoryController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	if err := c.categoryService.DeleteCategory(id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
