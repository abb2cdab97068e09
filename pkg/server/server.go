package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	cataloghandler "github.com/fournil-tools/fournil/pkg/handlers/catalog"
	expensehandler "github.com/fournil-tools/fournil/pkg/handlers/expense"
	productionhandler "github.com/fournil-tools/fournil/pkg/handlers/production"
	recipehandler "github.com/fournil-tools/fournil/pkg/handlers/recipe"
	saleshandler "github.com/fournil-tools/fournil/pkg/handlers/sales"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	fournilmiddleware "github.com/fournil-tools/fournil/pkg/server/middleware"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Sales      saleshandler.Explorer
	Production productionhandler.Explorer
	Catalog    cataloghandler.Service
	Refs       cataloghandler.Refs
	Options    saleshandler.CatalogOptions
	Expenses   expensehandler.Service
	Recipes    recipehandler.Service
	Logger     zerolog.Logger
}

type Config struct {
	Addr               string
	ShutdownTimeout    time.Duration
	OptionsSource      domain.OptionsSource
	SalesPageSize      int
	ProductionPageSize int
	Dependencies       Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies

	salesHandler := saleshandler.NewHandler(deps.Sales, deps.Options, config.OptionsSource, config.SalesPageSize)
	productionHandler := productionhandler.NewHandler(deps.Production, config.ProductionPageSize)
	catalogHandler := cataloghandler.NewHandler(deps.Catalog, deps.Refs)
	expenseHandler := expensehandler.NewHandler(deps.Expenses)
	recipeHandler := recipehandler.NewHandler(deps.Recipes)

	router := chi.NewRouter()

	router.Use(fournilmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/sales", salesHandler.GetSales)
		r.Get("/sales/options", salesHandler.GetOptions)

		r.Get("/production", productionHandler.GetProduction)
		r.Get("/production/options", productionHandler.GetOptions)

		r.Get("/refs", catalogHandler.GetReferences)

		r.Get("/articles", catalogHandler.ListArticles)
		r.Post("/articles", catalogHandler.CreateArticle)
		r.Put("/articles/{id}", catalogHandler.UpdateArticle)
		r.Delete("/articles/{id}", catalogHandler.DeactivateArticle)

		r.Get("/sites", catalogHandler.ListSites)
		r.Post("/sites", catalogHandler.CreateSite)
		r.Put("/sites/{id}", catalogHandler.UpdateSite)

		r.Get("/expenses", expenseHandler.ListExpenses)
		r.Post("/expenses", expenseHandler.CreateExpense)
		r.Get("/expenses/summary", expenseHandler.GetSummary)
		r.Delete("/expenses/{id}", expenseHandler.DeleteExpense)

		r.Get("/recipes", recipeHandler.ListRecipes)
		r.Post("/recipes", recipeHandler.CreateRecipe)
		r.Put("/recipes/{id}", recipeHandler.UpdateRecipe)
		r.Delete("/recipes/{id}", recipeHandler.DeleteRecipe)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &config.Dependencies.Logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
