package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/yorul/attendance-management/internal/config"
	"github.com/yorul/attendance-management/internal/db"
	"github.com/yorul/attendance-management/internal/repo"
	"github.com/yorul/attendance-management/internal/scheduler"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	setupLogger(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.SecretKey == "dev-secret" {
		log.Fatal("SECRET_KEY must be set in prod: it signs sessions and salts password digests")
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	if err := db.Migrate(db.URL(cfg)); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.OpenPunchReportCron != "" {
		c, err := scheduler.Run(cfg.OpenPunchReportCron, repo.NewAttendanceRepo(database))
		if err != nil {
			log.Fatalf("Failed to start open-punch summary job: %v", err)
		}
		defer c.Stop()
	}

	r := newRouter(database, cfg)

	slog.Info("starting server", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}

// setupLogger installs the process-wide slog handler.
func setupLogger(format string) {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
