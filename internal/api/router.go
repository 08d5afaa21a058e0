package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fireDispatch/internal/api/handlers/http/alerts"
	"fireDispatch/internal/api/handlers/http/incidents"
	"fireDispatch/internal/api/handlers/http/stations"
	"fireDispatch/internal/api/handlers/http/system"
	"fireDispatch/internal/api/handlers/http/units"
	"fireDispatch/internal/config"
	"fireDispatch/internal/middleware"
	"fireDispatch/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

type Handlers struct {
	Alerts    *alerts.Handler
	Incidents *incidents.Handler
	Units     *units.Handler
	Stations  *stations.Handler
	System    *system.Handler
}

// NewServer builds the handlers over svc. ctx bounds the background
// housekeeping of the rate limiters.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, sweeper units.Sweeper, checks map[string]system.Pinger) *Server {
	h := Handlers{
		Alerts:    alerts.NewHandler(logger, svc.Alerts),
		Incidents: incidents.NewHandler(logger, svc.Incidents),
		Units:     units.NewHandler(logger, svc.Units, sweeper),
		Stations:  stations.NewHandler(logger, svc.Guard, svc.Stats),
		System:    system.NewHandler(logger, checks),
	}

	r := InitRouter(ctx, cfg, h, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func InitRouter(ctx context.Context, cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	apiKey := middleware.APIKeyMiddleware(cfg.APIKey)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/alerts", func(ar chi.Router) {
			ar.With(middleware.Limit(ctx, 2, 5, 10*time.Minute, logger)).Post("/", h.Alerts.AlertCreate)
			ar.Get("/", h.Alerts.AlertList)

			ar.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.Alerts.AlertGet)
				rr.Patch("/", h.Alerts.AlertUpdate)
				rr.With(apiKey).Delete("/", h.Alerts.AlertDelete)

				rr.Post("/accept", h.Alerts.AlertAccept)
				rr.Post("/dispatch", h.Alerts.AlertAccept)
				rr.Post("/decline", h.Alerts.AlertDecline)
				rr.Post("/refer", h.Alerts.AlertRefer)
			})
		})

		api.Route("/incidents", func(ir chi.Router) {
			ir.Get("/", h.Incidents.IncidentList)

			ir.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.Incidents.IncidentGet)
				rr.With(apiKey).Delete("/", h.Incidents.IncidentDelete)

				rr.Patch("/status", h.Incidents.IncidentSetStatus)
				rr.Post("/refer", h.Incidents.IncidentRefer)
				rr.Get("/turnout-slip", h.Incidents.IncidentTurnoutSlip)
			})
		})

		api.Route("/units", func(ur chi.Router) {
			ur.With(apiKey).Post("/auto-deactivate", h.Units.UnitAutoDeactivate)

			ur.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", h.Units.UnitGet)
				rr.Post("/activate", h.Units.UnitActivate)
				rr.Post("/deactivate", h.Units.UnitDeactivate)
			})
		})

		api.Route("/stations/{id}", func(sr chi.Router) {
			sr.Get("/availability", h.Stations.StationAvailability)
			sr.Get("/stats", h.Stations.StationStats)
		})

		api.Get("/health", h.System.SystemHealth)
		api.Get("/ready", h.System.SystemReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
