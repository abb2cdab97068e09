package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/server"
	"github.com/fournil-tools/fournil/pkg/services/catalog"
	"github.com/fournil-tools/fournil/pkg/services/config"
	"github.com/fournil-tools/fournil/pkg/services/expense"
	"github.com/fournil-tools/fournil/pkg/services/production"
	"github.com/fournil-tools/fournil/pkg/services/recipe"
	"github.com/fournil-tools/fournil/pkg/services/sales"
	"github.com/fournil-tools/fournil/pkg/services/session"
	"github.com/fournil-tools/fournil/pkg/store/postgres"
)

var (
	cfgPath     string
	profilePath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Fournil web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the application config file (defaults and env vars apply when omitted)")
	rootCmd.Flags().StringVarP(&profilePath, "profiles", "p", config.DefaultProfilePath(),
		"Path to the connection profile registry (default is $HOME/.fournilcfg)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := config.NewRegistry(profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile registry: %w", err)
	}

	dsn, err := registry.GetDSN(ctx, cfg.Profile)
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(ctx, postgres.Settings{DSN: dsn})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	salesStore, err := postgres.NewSalesStore(db)
	if err != nil {
		return err
	}
	productionStore, err := postgres.NewProductionStore(db)
	if err != nil {
		return err
	}
	catalogStore, err := postgres.NewCatalogStore(db)
	if err != nil {
		return err
	}
	expenseStore, err := postgres.NewExpenseStore(db)
	if err != nil {
		return err
	}
	recipeStore, err := postgres.NewRecipeStore(db)
	if err != nil {
		return err
	}

	catalogSvc := catalog.NewService(catalogStore)

	sessionStore := session.NewStore()
	if err := sessionStore.Init(ctx, catalogSvc); err != nil {
		return fmt.Errorf("failed to preload reference data: %w", err)
	}

	logger.Info().Str("profile", cfg.Profile).Msgf("Configuration found at `%s` successfully loaded.", profilePath)

	webAPI := server.NewWebAPI(server.Config{
		Addr:               cfg.Addr,
		ShutdownTimeout:    cfg.ShutdownTimeout,
		OptionsSource:      domain.OptionsSource(cfg.OptionsSource),
		SalesPageSize:      cfg.SalesPageSize,
		ProductionPageSize: cfg.ProductionPageSize,
		Dependencies: server.Dependencies{
			Sales:      sales.NewExplorer(salesStore),
			Production: production.NewExplorer(productionStore),
			Catalog:    catalogSvc,
			Refs:       sessionStore,
			Options:    sessionStore,
			Expenses:   expense.NewService(expenseStore),
			Recipes:    recipe.NewService(recipeStore),
			Logger:     logger,
		},
	})

	return webAPI.Start()
}
