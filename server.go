package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"pav-dashboard/chart"
	"pav-dashboard/ratings"
)

// pinger is the database connection /health checks when the table came from it.
type pinger interface {
	Ping(ctx context.Context) error
}

// dashboard serves one season's table. The table is loaded once and only read
// afterwards, so handlers share it without locking.
type dashboard struct {
	table  ratings.Table
	teams  []ratings.TeamOption
	season int
	db     pinger
}

func newDashboard(t ratings.Table, season int) (*dashboard, error) {
	teams, err := ratings.TeamOptions(t)
	if err != nil {
		return nil, fmt.Errorf("team options: %w", err)
	}
	rowsLoaded.Set(float64(t.Len()))
	return &dashboard{table: t, teams: teams, season: season}, nil
}

// render runs one recomputation for sel.
func (d *dashboard) render(sel ratings.Selection) (chart.Figure, error) {
	f, err := chart.Compute(d.table, sel, d.season)
	if err != nil {
		return chart.Figure{}, err
	}
	chartRenders.WithLabelValues(string(f.Mode)).Inc()
	return f, nil
}

func (d *dashboard) routes(corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(chimiddleware.RealIP)
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/", d.pageHandler)
	r.Get("/chart.png", d.pngHandler)
	r.Get("/health", d.healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/chart", d.chartHandler)
		r.Get("/players", d.playersHandler)
		r.Get("/teams", d.teamsHandler)
	})

	return r
}

// serve runs the server until ctx is cancelled, then drains outstanding requests.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("🏉 PAV dashboard is running")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		log.Info().Msg("⚠️ Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			return srv.Close()
		}
	}

	log.Info().Msg("✓ Shutdown complete")
	return nil
}
