package controllers

import (
	"selforder/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CustomerController handles HTTP requests related to customers.
type CustomerController struct {
	customerService services.ICustomerService
}

// NewCustomerController creates a new CustomerController instance.
func NewCustomerController(svc services.ICustomerService) *CustomerController {
	return &CustomerController{customerService: svc}
}

// RegisterCustomer handles POST /customers.
func (c *CustomerController) RegisterCustomer(ctx *fiber.Ctx) error {
	var request struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		CPF   string `json:"cpf"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body format"})
	}

	customer, err := c.customerService.RegisterCustomer(request.Name, request.Email, request.CPF)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(customer)
}

// FindCustomerByID handles GET /customers/:id.
func (c *CustomerController) FindCustomerByID(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer id"})
	}

	customer, err := c.customerService.FindCustomerByID(id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(customer)
}

// FindCustomerByCpf handles GET /customers/cpf/:cpf.
func (c *CustomerController) FindCustomerByCpf(ctx *fiber.Ctx) error {
	customer, err := c.customerService.FindCustomerByCpf(ctx.Params("cpf"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(customer)
}

// FindAllCustomers handles GET /customers.
func (c *CustomerController) FindAllCustomers(ctx *fiber.Ctx) error {
	customers, err := c.customerService.FindAllCustomers()
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(customers)
}
