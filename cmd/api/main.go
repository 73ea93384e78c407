package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/quentinhasdavovo/quentinhas-api/internal/application/auth"
	apporder "github.com/quentinhasdavovo/quentinhas-api/internal/application/order"
	"github.com/quentinhasdavovo/quentinhas-api/internal/application/usecase"
	"github.com/quentinhasdavovo/quentinhas-api/internal/infrastructure/postgres"
	httpRouter "github.com/quentinhasdavovo/quentinhas-api/internal/interfaces/http"
	"github.com/quentinhasdavovo/quentinhas-api/pkg/config"
	"github.com/quentinhasdavovo/quentinhas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	mealRepo := postgres.NewMealRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	posRepo := postgres.NewPointOfSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	acqRepo := postgres.NewAcquisitionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	placeOrderUC := apporder.NewPlaceOrderUseCase(txRunner, mealRepo, userRepo, posRepo)
	updateStatusUC := apporder.NewUpdateStatusUseCase(orderRepo)
	mealUC := usecase.NewMealUseCase(mealRepo, stockRepo, posRepo, txRunner)
	posUC := usecase.NewPointOfSaleUseCase(posRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	acqUC := usecase.NewAcquisitionUseCase(txRunner, acqRepo, userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Quentinhas da Vovó API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MealUC:        mealUC,
		PointOfSaleUC: posUC,
		UserUC:        userUC,
		AcquisitionUC: acqUC,
		PlaceOrder:    placeOrderUC,
		UpdateStatus:  updateStatusUC,
		OrderRepo:     orderRepo,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
