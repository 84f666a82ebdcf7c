package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/flotanet/logistica-api/internal/application/auth"
	"github.com/flotanet/logistica-api/internal/application/billing"
	"github.com/flotanet/logistica-api/internal/application/dashboard"
	"github.com/flotanet/logistica-api/internal/application/fleet"
	"github.com/flotanet/logistica-api/internal/application/inventory"
	"github.com/flotanet/logistica-api/internal/application/orders"
	"github.com/flotanet/logistica-api/internal/application/users"
	"github.com/flotanet/logistica-api/internal/infrastructure/postgres"
	httpRouter "github.com/flotanet/logistica-api/internal/interfaces/http"
	"github.com/flotanet/logistica-api/pkg/config"
	"github.com/flotanet/logistica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	routeRepo := postgres.NewRouteRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	statsUC := dashboard.NewStatsUseCase(statsRepo)
	orderUC := orders.NewOrderUseCase(orderRepo, customerRepo, userRepo)
	inventoryUC := inventory.NewInventoryUseCase(inventoryRepo)
	fleetUC := fleet.NewFleetUseCase(routeRepo, vehicleRepo)
	userUC := users.NewUserUseCase(userRepo)
	billingUC := billing.NewBillingUseCase(invoiceRepo, orderRepo, cfg.VAT.RatePercent)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
	}))
	if cfg.App.Env == "development" {
		app.Use(fiberlogger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StatsUC:     statsUC,
		OrderUC:     orderUC,
		InventoryUC: inventoryUC,
		FleetUC:     fleetUC,
		UserUC:      userUC,
		BillingUC:   billingUC,
		JWTSecret:   cfg.JWT.Secret,
		Users:       userRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
