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

	"github.com/jhoicas/Barra-api/internal/application/activity"
	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/export"
	"github.com/jhoicas/Barra-api/internal/application/ledger"
	"github.com/jhoicas/Barra-api/internal/application/report"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/Barra-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Barra-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Barra-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Barra-api/internal/interfaces/http"
	"github.com/jhoicas/Barra-api/pkg/config"
	"github.com/jhoicas/Barra-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	measurementRepo := postgres.NewMeasurementRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	activityUC := activity.New(activityRepo, userRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, activityUC, auth.JWTConfig{
		Secret:             cfg.JWT.Secret,
		ExpMinutes:         cfg.JWT.Expiration,
		RememberExpMinutes: cfg.JWT.RememberExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo, measurementRepo)
	measurementUC := usecase.NewMeasurementUseCase(measurementRepo, productRepo)
	cartUC := usecase.NewCartUseCase(cartRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)
	ledgerUC := ledger.NewLedgerUseCase(txRunner, userRepo, productRepo, transactionRepo)

	// Descargas: XLSX administrativos y estado de cuenta PDF
	exporter := infraexcel.NewExporter()
	exportUC := export.New(userRepo, activityUC, exporter)
	statementGenerator := infrapdf.NewStatementGenerator(cfg.App.Name)
	statementUC := report.NewStatementUseCase(userRepo, transactionRepo, statementGenerator)

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
		Title:    "Barra API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		ProductUC:     productUC,
		MeasurementUC: measurementUC,
		CartUC:        cartUC,
		StatsUC:       statsUC,
		LedgerUC:      ledgerUC,
		ActivityUC:    activityUC,
		ExportUC:      exportUC,
		StatementUC:   statementUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
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
