package controllers

import (
	"selforder/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductController handles HTTP requests related to products.
type ProductController struct {
	productService services.IProductService
}

// NewProductController creates a new ProductController instance.
func NewProductController(svc services.IProductService) *ProductController {
	return &ProductController{productService: svc}
}

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID      `json:"category_id"`
}

// CreateProduct handles POST /products.
func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var request productRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}
	if request.CategoryID == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category_id is required"})
	}

	product, err := c.productService.CreateProduct(request.Name, request.Description, request.Price, *request.CategoryID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /products/:id. The category is only changed
// when category_id is present in the body.
func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var request productRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	product, err := c.productService.UpdateProduct(id, request.Name, request.Description, request.Price, request.CategoryID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(product)
}

// FindProductByID handles GET /products/:id.
func (c *ProductController) FindProductByID(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	product, err := c.productService.FindProductByID(id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(product)
}

// FindProducts handles GET /products with optional name and category_id
// query filters.
func (c *ProductController) FindProducts(ctx *fiber.Ctx) error {
	if name := ctx.Query("name"); name != "" {
		products, err := c.productService.FindProductsByName(name)
		if err != nil {
			return errorResponse(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(products)
	}

	if categoryParam := ctx.Query("category_id"); categoryParam != "" {
		categoryID, err := uuid.Parse(categoryParam)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
		}
		products, err := c.productService.FindProductsByCategory(categoryID)
		if err != nil {
			return errorResponse(ctx, err)
		}
		return ctx.Status(fiber.StatusOK).JSON(products)
	}

	products, err := c.productService.FindAllProducts()
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(products)
}

// DeleteProduct handles DELETE /products/:id.
func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if err := c.productService.DeleteProduct(id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
