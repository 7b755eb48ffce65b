package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pedrolucasmota/obralog-api/internal/application/auth"
	"github.com/pedrolucasmota/obralog-api/internal/application/ledger"
	"github.com/pedrolucasmota/obralog-api/internal/application/report"
	"github.com/pedrolucasmota/obralog-api/internal/application/usecase"
	infrapdf "github.com/pedrolucasmota/obralog-api/internal/infrastructure/pdf"
	"github.com/pedrolucasmota/obralog-api/internal/infrastructure/postgres"
	httpRouter "github.com/pedrolucasmota/obralog-api/internal/interfaces/http"
	"github.com/pedrolucasmota/obralog-api/pkg/config"
	"github.com/pedrolucasmota/obralog-api/pkg/logger"
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

	siteRepo := postgres.NewSiteRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	siteItemRepo := postgres.NewSiteItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	loanRepo := postgres.NewToolLoanRepository(pool)
	rentedRepo := postgres.NewRentedEquipmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewAccessProfileRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movementUC := ledger.NewRegisterMovementUseCase(txRunner)
	historyUC := ledger.NewHistoryUseCase(siteItemRepo, movementRepo)
	siteUC := usecase.NewSiteUseCase(siteRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	inventoryUC := usecase.NewSiteInventoryUseCase(siteRepo, catalogRepo, siteItemRepo)
	loanUC := usecase.NewToolLoanUseCase(loanRepo, siteItemRepo, movementUC)
	rentedUC := usecase.NewRentedEquipmentUseCase(siteRepo, rentedRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	profileUC := usecase.NewProfileUseCase(profileRepo)
	reportUC := report.NewMovementsReportUseCase(siteRepo, historyUC, infrapdf.NewMarotoMovementsReport())
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
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ObraLog API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SiteUC:      siteUC,
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		MovementUC:  movementUC,
		HistoryUC:   historyUC,
		LoanUC:      loanUC,
		RentedUC:    rentedUC,
		UserUC:      userUC,
		ProfileUC:   profileUC,
		ReportUC:    reportUC,
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		JWTSecret:   cfg.JWT.Secret,
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
