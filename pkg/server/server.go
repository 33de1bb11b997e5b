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

	handlers "github.com/artpersonnft/SECthingv2/pkg/handlers/archive"
	secmiddleware "github.com/artpersonnft/SECthingv2/pkg/server/middleware"
	"github.com/artpersonnft/SECthingv2/pkg/services/archive"
)

type Dependencies struct {
	Registry  archive.Registry
	DataDir   string
	ChartsDir string
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the archive/chart API onto a chi router.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	handler := handlers.NewHandler(deps.Registry, deps.DataDir, deps.ChartsDir)

	router := chi.NewRouter()
	router.Use(secmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", handler.ListCategories)
		r.Get("/archives/{category}", handler.ListArchives)
		r.Get("/charts", handler.ListCharts)
	})
	router.Get("/charts/{name}", handler.ServeChart)

	return router
}

type WebAPI struct {
	logger *zerolog.Logger
	server *http.Server
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	return &WebAPI{
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(config),
		},
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
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
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
