package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/approval"
	"github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/closing"
	"github.com/jhoicas/stockflow-api/internal/application/count"
	"github.com/jhoicas/stockflow-api/internal/application/importer"
	"github.com/jhoicas/stockflow-api/internal/application/ledger"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	LedgerUC   *ledger.UseCase
	ApprovalUC *approval.UseCase
	ClosingUC  *closing.UseCase
	CountUC    *count.UseCase
	ImporterUC *importer.UseCase
	ItemRepo   repository.ItemRepository
	TxRepo     repository.TransactionRepository
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo y vista de stock
	stockHandler := NewStockHandler(deps.ItemRepo, deps.TxRepo)
	protected.Get("/items", stockHandler.ListItems)
	protected.Get("/stock", stockHandler.StockView)

	// Libro de movimientos
	txHandler := NewTransactionHandler(deps.LedgerUC)
	transactions := protected.Group("/transactions")
	transactions.Post("/", txHandler.Create)
	transactions.Get("/", txHandler.List)
	transactions.Get("/:id", txHandler.GetByID)
	transactions.Put("/:id", txHandler.Update)

	// Flujo de aprobación (manager|admin)
	approvalHandler := NewApprovalHandler(deps.ApprovalUC)
	approvals := protected.Group("/approvals", RequireRole(entity.RoleManager, entity.RoleAdmin))
	approvals.Get("/pending", approvalHandler.ListPending)
	approvals.Post("/decision", approvalHandler.Decide)
	approvals.Post("/batch", approvalHandler.Batch)

	// Cierre mensual (manager|admin)
	closingHandler := NewClosingHandler(deps.ClosingUC)
	closingGroup := protected.Group("/closing", RequireRole(entity.RoleManager, entity.RoleAdmin))
	closingGroup.Post("/monthly", closingHandler.Run)
	closingGroup.Get("/monthly/report.pdf", closingHandler.ReportPDF)

	// Conteo físico
	countHandler := NewCountHandler(deps.CountUC)
	protected.Post("/physical-counts", countHandler.Submit)

	// Importación inicial (solo admin, un solo uso)
	importHandler := NewImportHandler(deps.ImporterUC)
	protected.Post("/import/initial-stock", RequireRole(entity.RoleAdmin), importHandler.Import)
}
