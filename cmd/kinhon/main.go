package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kinhon/internal/config"
	"kinhon/internal/database"
	"kinhon/internal/handler"
	"kinhon/internal/metrics"
	"kinhon/internal/mw"
	"kinhon/internal/service"
	"kinhon/internal/store"
)

func main() {
	cfg := config.New()

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(context.Background(), db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	if err := database.Seed(context.Background(), db); err != nil {
		slog.Error("failed to seed DB", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	// Stores
	orderStore := store.NewPostgresOrders(db)
	complaintStore := store.NewPostgresComplaints(db)

	// Services
	orderSvc := service.NewOrderService(orderStore, m)
	complaintSvc := service.NewComplaintService(complaintStore, m)

	// Router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/health", handler.HealthHandler())
	r.Post("/api/session", handler.CreateSessionHandler(cfg.SessionSecret, m))
	r.Get("/api/orders", handler.ListOrdersHandler(orderSvc))
	r.Get("/api/orders/{id}", handler.GetOrderHandler(orderSvc))
	r.Get("/api/orders/{id}/timeline", handler.OrderTimelineHandler(orderSvc))
	r.Post("/api/complaints", handler.SubmitComplaintHandler(complaintSvc))

	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
