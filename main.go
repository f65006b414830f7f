package main

import (
	"log"

	"selforder/config"
	"selforder/controllers"
	"selforder/models"
	"selforder/repository"
	"selforder/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Running database migrations...")
	err = db.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Customer{},
		&models.Order{}, &models.OrderItem{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}
	log.Println("Database migration complete.")

	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	paymentSvc, err := services.NewMercadoPagoService(cfg.MercadoPago.AccessToken)
	if err != nil {
		log.Fatalf("Failed to initialize payment service: %v", err)
	}

	identitySvc, err := services.NewCognitoService(cfg.Cognito.Region, cfg.Cognito.UserPoolID)
	if err != nil {
		log.Fatalf("Failed to initialize identity service: %v", err)
	}

	publisher, err := services.NewKafkaPublisher(cfg.Kafka.Brokers)
	if err != nil {
		log.Fatalf("Failed to initialize Kafka publisher: %v", err)
	}

	categorySvc := services.NewCategoryService(categoryRepo, productRepo)
	productSvc := services.NewProductService(productRepo, categoryRepo, orderRepo)
	customerSvc := services.NewCustomerService(customerRepo, identitySvc)
	orderSvc := services.NewOrderService(orderRepo, customerRepo, productRepo, paymentSvc, publisher, cfg.Kafka.Topic)
	notificationSvc := services.NewPaymentNotificationService(orderSvc)

	categoryCtrl := controllers.NewCategoryController(categorySvc)
	productCtrl := controllers.NewProductController(productSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	webhookCtrl := controllers.NewWebhookController(notificationSvc)

	app := fiber.New()

	app.Post("/categories", categoryCtrl.CreateCategory)
	app.Get("/categories", categoryCtrl.FindAllCategories)
	app.Get("/categories/:id", categoryCtrl.FindCategoryByID)
	app.Put("/categories/:id", categoryCtrl.UpdateCategory)
	app.Delete("/categories/:id", categoryCtrl.DeleteCategory)

	app.Post("/products", productCtrl.CreateProduct)
	app.Get("/products", productCtrl.FindProducts)
	app.Get("/products/:id", productCtrl.FindProductByID)
	app.Put("/products/:id", productCtrl.UpdateProduct)
	app.Delete("/products/:id", productCtrl.DeleteProduct)

	app.Post("/customers", customerCtrl.RegisterCustomer)
	app.Get("/customers", customerCtrl.FindAllCustomers)
	app.Get("/customers/cpf/:cpf", customerCtrl.FindCustomerByCpf)
	app.Get("/customers/:id", customerCtrl.FindCustomerByID)

	app.Post("/orders", orderCtrl.CreateOrder)
	app.Get("/orders", orderCtrl.FindOrders)
	app.Get("/orders/:id", orderCtrl.FindOrderByID)
	app.Put("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	app.Put("/orders/:id/preparation", orderCtrl.StartOrderPreparation)

	app.Post("/webhooks/payment", webhookCtrl.HandlePaymentNotification)

	port := ":" + cfg.Server.Port
	log.Printf("Server is starting on port %s", port)
	log.Fatal(app.Listen(port))
}
