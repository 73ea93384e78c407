package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/auth"
	apporder "github.com/quentinhasdavovo/quentinhas-api/internal/application/order"
	"github.com/quentinhasdavovo/quentinhas-api/internal/application/usecase"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/entity"
	"github.com/quentinhasdavovo/quentinhas-api/internal/domain/repository"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	MealUC        *usecase.MealUseCase
	PointOfSaleUC *usecase.PointOfSaleUseCase
	UserUC        *usecase.UserUseCase
	AcquisitionUC *usecase.AcquisitionUseCase
	PlaceOrder    *apporder.PlaceOrderUseCase
	UpdateStatus  *apporder.UpdateStatusUseCase
	OrderRepo     repository.OrderRepository
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := []string{entity.RoleAdmin, entity.RoleAtendente}

	// Auth (público; register aceita token opcional para admin criar staff)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", OptionalAuth(deps.JWTSecret), authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Cardápio: leitura pública, escrita de staff
	mealHandler := NewMealHandler(deps.MealUC)
	meals := api.Group("/meals")
	meals.Get("/", mealHandler.List)
	meals.Get("/:id", mealHandler.GetByID)
	meals.Post("/", AuthMiddleware(deps.JWTSecret), RequireRole(staff...), mealHandler.Create)
	meals.Put("/:id", AuthMiddleware(deps.JWTSecret), RequireRole(staff...), mealHandler.Update)
	meals.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), mealHandler.Delete)

	// Estoque por ponto de venda (staff)
	stock := api.Group("/stock", AuthMiddleware(deps.JWTSecret), RequireRole(staff...))
	stock.Put("/", mealHandler.SetStock)
	stock.Get("/:posId", mealHandler.ListStock)

	// Pedidos: criação aceita anônimo (token opcional); transições são de staff
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.UpdateStatus, deps.OrderRepo)
	orders := api.Group("/orders")
	orders.Post("/", OptionalAuth(deps.JWTSecret), orderHandler.Create)
	orders.Get("/", AuthMiddleware(deps.JWTSecret), orderHandler.List)
	orders.Get("/:id", AuthMiddleware(deps.JWTSecret), orderHandler.GetByID)
	orders.Patch("/:id/status", AuthMiddleware(deps.JWTSecret), RequireRole(staff...), orderHandler.UpdateStatus)

	// Pontos de venda: leitura autenticada, escrita de admin
	posHandler := NewPointOfSaleHandler(deps.PointOfSaleUC)
	pos := api.Group("/points-of-sale", AuthMiddleware(deps.JWTSecret))
	pos.Get("/", posHandler.List)
	pos.Get("/:id", posHandler.GetByID)
	pos.Post("/", RequireRole(entity.RoleAdmin), posHandler.Create)
	pos.Put("/:id", RequireRole(entity.RoleAdmin), posHandler.Update)
	pos.Delete("/:id", RequireRole(entity.RoleAdmin), posHandler.Delete)

	// Usuários (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret))
	users.Get("/me", userHandler.Me)
	users.Get("/", RequireRole(staff...), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", RequireRole(entity.RoleAdmin), userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)

	// Aquisições de créditos (protegido; criação de staff)
	acqHandler := NewAcquisitionHandler(deps.AcquisitionUC)
	acqs := api.Group("/acquisitions", AuthMiddleware(deps.JWTSecret))
	acqs.Post("/", RequireRole(staff...), acqHandler.Create)
	acqs.Get("/:id", RequireRole(staff...), acqHandler.GetByID)
	acqs.Get("/customer/:customerId", acqHandler.ListByCustomer)
}
