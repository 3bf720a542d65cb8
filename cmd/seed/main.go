// seed herramienta de línea de comandos para operaciones de un solo uso:
// importar la línea base de stock desde el CSV del fabricante y dar de alta
// usuarios con password hasheado.
//
// Uso:
//
//	go run ./cmd/seed import-stock --file stock.csv
//	go run ./cmd/seed seed-user --email ana@acme.co --password s3cret --role manager
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appauth "github.com/jhoicas/stockflow-api/internal/application/auth"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	appimporter "github.com/jhoicas/stockflow-api/internal/application/importer"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	infrapg "github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	infrasheets "github.com/jhoicas/stockflow-api/internal/infrastructure/sheets"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/tabular"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Operaciones de siembra de StockFlow (importación inicial, usuarios)",
	}
	rootCmd.AddCommand(importStockCmd(), seedUserCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func importStockCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import-stock",
		Short: "Importa la línea base desde el CSV del fabricante (cantidad, código, nombre)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, log, err := buildDeps(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("leer %s: %w", file, err)
			}
			uc := appimporter.NewUseCase(tabular.NewItemRepository(store), log)
			resp, err := uc.Run(ctx, dto.ImportRequest{CSVText: string(raw)})
			if err != nil {
				return err
			}
			fmt.Printf("importación: %d actualizados, %d añadidos, %d descartados\n",
				resp.Updated, resp.Appended, resp.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "ruta al CSV del fabricante")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func seedUserCmd() *cobra.Command {
	var email, password, name, role, area string
	cmd := &cobra.Command{
		Use:   "seed-user",
		Short: "Da de alta un usuario con password hasheado (bcrypt)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, _, err := buildDeps(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			uc := appauth.NewUseCase(tabular.NewUserRepository(store), appauth.JWTConfig{})
			user, err := uc.SeedUser(ctx, email, password, name, role, area)
			if err != nil {
				return err
			}
			fmt.Printf("usuario %s creado (rol %s)\n", user.Email, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email del usuario")
	cmd.Flags().StringVar(&password, "password", "", "password en claro (se hashea)")
	cmd.Flags().StringVar(&name, "name", "", "nombre a mostrar")
	cmd.Flags().StringVar(&role, "role", "worker", "admin | manager | worker")
	cmd.Flags().StringVar(&area, "area", "", "sede/área por defecto")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// buildDeps replica la selección de almacén del servidor para la CLI.
func buildDeps(ctx context.Context) (tabular.Store, func(), *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	switch cfg.Store.Driver {
	case config.StoreDriverSheets:
		store, err := infrasheets.NewStore(ctx, infrasheets.Config{
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
			CredentialsPath: cfg.Sheets.CredentialsPath,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return store, func() {}, log, nil
	case config.StoreDriverPostgres:
		pool, err := infrapg.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, nil, err
		}
		store := infrapg.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return store, pool.Close, log, nil
	}
	return memory.NewStore(), func() {}, log, nil
}
