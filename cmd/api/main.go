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

	"github.com/SantosRojas/inventory-api/internal/application/auth"
	"github.com/SantosRojas/inventory-api/internal/application/dashboard"
	"github.com/SantosRojas/inventory-api/internal/application/usecase"
	infrapdf "github.com/SantosRojas/inventory-api/internal/infrastructure/pdf"
	"github.com/SantosRojas/inventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/SantosRojas/inventory-api/internal/interfaces/http"
	"github.com/SantosRojas/inventory-api/pkg/config"
	"github.com/SantosRojas/inventory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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
	roleRepo := postgres.NewRoleRepository(pool)
	institutionRepo := postgres.NewInstitutionRepository(pool)
	modelRepo := postgres.NewModelRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	inventoryTimeRepo := postgres.NewInventoryTimeRepository(pool)

	// Cada petición del dashboard ejecuta su secuencia de consultas sobre
	// una misma conexión del pool.
	dashboardRunner := postgres.NewDashboardRunner(pool)
	dashboardUC := dashboard.NewUseCase(dashboardRunner)

	authUC := auth.NewUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	institutionUC := usecase.NewInstitutionUseCase(institutionRepo)
	modelUC := usecase.NewModelUseCase(modelRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	inventoryTimeUC := usecase.NewInventoryTimeUseCase(inventoryTimeRepo)

	overduePDF := infrapdf.NewOverdueReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		DashboardUC:     dashboardUC,
		OverduePDF:      overduePDF,
		InventoryUC:     inventoryUC,
		InstitutionUC:   institutionUC,
		ModelUC:         modelUC,
		ServiceUC:       serviceUC,
		RoleUC:          roleUC,
		UserUC:          userUC,
		InventoryTimeUC: inventoryTimeUC,
		JWTSecret:       cfg.JWT.Secret,
		Development:     cfg.App.IsDevelopment(),
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
