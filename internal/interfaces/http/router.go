package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/activity"
	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/export"
	"github.com/jhoicas/Barra-api/internal/application/ledger"
	"github.com/jhoicas/Barra-api/internal/application/report"
	"github.com/jhoicas/Barra-api/internal/application/usecase"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	MeasurementUC *usecase.MeasurementUseCase
	CartUC        *usecase.CartUseCase
	StatsUC       *usecase.StatsUseCase
	LedgerUC      *ledger.LedgerUseCase
	ActivityUC    *activity.UseCase
	ExportUC      *export.UseCase
	StatementUC   *report.StatementUseCase
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API. El middleware de identidad corre sobre
// todo /api; es tolerante, así que cada operación decide qué exige vía la
// política central de permisos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	recorder := deps.ActivityUC

	// Sesión
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/remember", authHandler.Remember)
	authGroup.Get("/me", authHandler.Me)

	// Socios
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, recorder, deps.Log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Post("/:id/reset-password", userHandler.ResetPassword)
	users.Put("/:id/password", userHandler.ChangePassword)

	// Ledger
	checkoutHandler := NewCheckoutHandler(deps.LedgerUC, recorder, deps.Log)
	api.Post("/checkout", checkoutHandler.Checkout)
	api.Post("/transactions/adjustment", checkoutHandler.Adjustment)
	users.Get("/:id/transactions", checkoutHandler.History)
	users.Get("/:id/reconcile", checkoutHandler.Reconcile)

	// Catálogo
	productHandler := NewProductHandler(deps.ProductUC, recorder, deps.Log)
	api.Get("/shop/products", productHandler.ListShop)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/toggle", productHandler.ToggleDisabled)

	// Medidas
	measurements := api.Group("/measurements")
	measurementHandler := NewMeasurementHandler(deps.MeasurementUC, recorder, deps.Log)
	measurements.Get("/", measurementHandler.List)
	measurements.Post("/", measurementHandler.Create)
	measurements.Delete("/:id", measurementHandler.Delete)

	// Carrito
	cart := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC, deps.Log)
	cart.Get("/", cartHandler.Get)
	cart.Put("/", cartHandler.Put)
	cart.Delete("/", cartHandler.Clear)

	// Log de actividad
	activityHandler := NewActivityHandler(deps.ActivityUC, deps.Log)
	api.Get("/activity-logs", activityHandler.Query)

	// Estadísticas
	statsHandler := NewStatsHandler(deps.StatsUC, deps.Log)
	api.Get("/stats", statsHandler.Overview)

	// Descargas
	exportHandler := NewExportHandler(deps.ExportUC, deps.StatementUC, deps.Log)
	api.Get("/exports/users", exportHandler.ExportUsers)
	api.Get("/exports/activity-logs", exportHandler.ExportActivityLogs)
	users.Get("/:id/statement", exportHandler.Statement)
}
