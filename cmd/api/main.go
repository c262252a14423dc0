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
	"github.com/tu-usuario/inventario-ventas/internal/application/auth"
	"github.com/tu-usuario/inventario-ventas/internal/application/inventory"
	"github.com/tu-usuario/inventario-ventas/internal/application/sales"
	"github.com/tu-usuario/inventario-ventas/internal/application/usecase"
	infrapdf "github.com/tu-usuario/inventario-ventas/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-ventas/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventario-ventas/internal/interfaces/http"
	"github.com/tu-usuario/inventario-ventas/pkg/config"
	"github.com/tu-usuario/inventario-ventas/pkg/jwt"
	"github.com/tu-usuario/inventario-ventas/pkg/logger"
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

	tokens, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	// Repositorios sobre el pool (las tx usan repos propios vía los runners)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	transactionRepo := postgres.NewInventoryTransactionRepository(pool)

	saleTxRunner := postgres.NewSaleTxRunner(pool)
	inventoryTxRunner := postgres.NewInventoryTxRunner(pool)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()

	authUC := auth.NewUseCase(userRepo, tokens, log)
	productUC := usecase.NewProductUseCase(productRepo, supplierRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	inventoryUC := inventory.NewUseCase(inventoryTxRunner, transactionRepo, log)
	salesUC := sales.NewUseCase(saleTxRunner, saleRepo, productRepo, receiptGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		UserUC:      userUC,
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		Tokens:      tokens,
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
