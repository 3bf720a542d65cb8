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

	appapproval "github.com/jhoicas/stockflow-api/internal/application/approval"
	appauth "github.com/jhoicas/stockflow-api/internal/application/auth"
	appclosing "github.com/jhoicas/stockflow-api/internal/application/closing"
	appcount "github.com/jhoicas/stockflow-api/internal/application/count"
	appimporter "github.com/jhoicas/stockflow-api/internal/application/importer"
	appledger "github.com/jhoicas/stockflow-api/internal/application/ledger"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stockflow-api/internal/infrastructure/pdf"
	infrapg "github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	infrasheets "github.com/jhoicas/stockflow-api/internal/infrastructure/sheets"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/tabular"
	httpRouter "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"

	_ "github.com/jhoicas/stockflow-api/docs"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("conectar almacén de registros")
	}
	defer cleanup()

	itemRepo := tabular.NewItemRepository(store)
	txRepo := tabular.NewTransactionRepository(store)
	countRepo := tabular.NewPhysicalCountRepository(store)
	diffRepo := tabular.NewDiffLogRepository(store)
	reportRepo := tabular.NewSupplierReportRepository(store)
	userRepo := tabular.NewUserRepository(store)
	stockSyncer := tabular.NewStockLedgerSyncer(store, itemRepo, txRepo)

	ledgerUC := appledger.NewUseCase(txRepo, itemRepo)
	approvalUC := appapproval.NewUseCase(txRepo, stockSyncer, log)
	closingUC := appclosing.NewUseCase(txRepo, itemRepo, diffRepo, reportRepo, infrapdf.NewMarotoReportGenerator(), log)
	countUC := appcount.NewUseCase(txRepo, itemRepo, countRepo, diffRepo, log)
	importerUC := appimporter.NewUseCase(itemRepo, log)
	authUC := appauth.NewUseCase(userRepo, appauth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "app": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		LedgerUC:   ledgerUC,
		ApprovalUC: approvalUC,
		ClosingUC:  closingUC,
		CountUC:    countUC,
		ImporterUC: importerUC,
		ItemRepo:   itemRepo,
		TxRepo:     txRepo,
		JWTSecret:  cfg.JWT.Secret,
	})

	// Apagado ordenado con SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
}

// buildStore selecciona la implementación del almacén según STORE_DRIVER.
func buildStore(ctx context.Context, cfg *config.Config) (tabular.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverSheets:
		store, err := infrasheets.NewStore(ctx, infrasheets.Config{
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
			CredentialsPath: cfg.Sheets.CredentialsPath,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case config.StoreDriverPostgres:
		pool, err := infrapg.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store := infrapg.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		// modo demo/desarrollo sin colaborador externo
		return memory.NewStore(), func() {}, nil
	}
}
