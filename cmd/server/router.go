package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yorul/attendance-management/internal/auth"
	"github.com/yorul/attendance-management/internal/config"
	"github.com/yorul/attendance-management/internal/handlers"
	"github.com/yorul/attendance-management/internal/middleware"
	"github.com/yorul/attendance-management/internal/repo"
)

// newRouter wires repositories, handlers, and the middleware chain.
func newRouter(database *sql.DB, cfg config.Config) chi.Router {
	accountRepo := repo.NewAccountRepo(database)
	attendanceRepo := repo.NewAttendanceRepo(database)

	sessions := &auth.Sessions{
		Secret: []byte(cfg.SecretKey),
		TTL:    time.Duration(cfg.SessionExpireHours) * time.Hour,
	}

	authHandler := &handlers.AuthHandler{
		Accounts: accountRepo,
		Sessions: sessions,
		Secret:   cfg.SecretKey,
	}
	attendanceHandler := &handlers.AttendanceHandler{Punches: attendanceRepo}
	adminHandler := &handlers.AdminHandler{Punches: attendanceRepo}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Prometheus)
	r.Use(middleware.MaxBytes(0))

	// Ops endpoints, no auth.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method("GET", "/metrics", promhttp.Handler())

	// Public
	r.Get("/attendance/login", authHandler.ShowLogin)
	r.Post("/attendance/login", authHandler.Login)
	r.Get("/attendance/register", authHandler.ShowRegister)
	r.Post("/attendance/register", authHandler.Register)
	r.Get("/attendance/logout", authHandler.Logout)

	// Requires a session
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireSession)
		r.Get("/", attendanceHandler.Home)
		r.Get("/attendance/home", attendanceHandler.Home)
		r.Post("/record-attendance", attendanceHandler.Record)
	})

	// Admin only
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireSession)
		r.Use(auth.RequireAdmin)
		r.Get("/attendance/admin", adminHandler.Report)
	})

	return r
}
