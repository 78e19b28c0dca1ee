package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
	"traffic-route-service/internal/adapters/repositories"
	"traffic-route-service/internal/adapters/traveltime"
	"traffic-route-service/internal/api"
	"traffic-route-service/internal/api/handlers"
	"traffic-route-service/internal/config"
	"traffic-route-service/internal/platform/db"
	"traffic-route-service/internal/ports"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the travel-time provider and the optional run log behind ports and starts the HTTP server.
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yml"))
	if err != nil {
		log.Fatal(err)
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		log.Fatal(err)
	}

	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	google, err := traveltime.NewGoogleDirectionsProvider(apiKey, cfg.Provider.BaseURL, cfg.Provider.Timeout)
	if err != nil {
		log.Fatal(err)
	}
	provider := traveltime.NewInstrumented(
		traveltime.NewRateLimited(google, cfg.Provider.RatePerSecond, cfg.Provider.Burst),
	)

	// The run log is optional; without DATABASE_URL nothing is persisted.
	var recorder ports.RunRecorder
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		driver := config.Get("DB_DRIVER", db.DriverPostgres)

		conn, err := openRunLog(driver, databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if driver == db.DriverSQLite {
			recorder = repositories.NewSqliteRunRecorder(conn)
		} else {
			recorder = repositories.NewSQLRunRecorder(conn)
		}
		log.Printf("Run log enabled driver=%s", driver)
	}

	router := api.NewRouter(provider, recorder, handlers.OptimizeOptions{
		SlotHours:      cfg.Optimizer.SlotHours,
		CandidateHours: cfg.Optimizer.CandidateHours,
		MaxLocations:   cfg.Optimizer.MaxLocations,
		Workers:        cfg.Optimizer.Workers,
		RequestTimeout: cfg.Optimizer.RequestTimeout,
		Location:       cfg.Optimizer.Location(),
	})

	// Cold requests issue slots x N^2 provider queries, so writes get a generous timeout.
	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Printf("Server listening addr=%s", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openRunLog(driver, databaseURL string) (*sql.DB, error) {
	conn, err := db.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}

	// SQLite files are created on demand; Postgres schemas are managed by dbtool.
	if driver == db.DriverSQLite {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := repositories.InitSchema(ctx, conn, driver); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open run log: %w", err)
		}
	}

	return conn, nil
}
