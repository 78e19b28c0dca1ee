package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"traffic-route-service/internal/adapters/repositories"
	"traffic-route-service/internal/config"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/platform/db"

	"github.com/joho/godotenv"
)

// dbtool initializes the run log schema and prints recent optimization runs.
func main() {
	list := flag.Int("list", 0, "print the N most recent optimization runs after initializing the schema")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}
	driver := config.Get("DB_DRIVER", db.DriverPostgres)

	conn, err := db.Open(driver, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Initializing run log schema...")
	if err := repositories.InitSchema(ctx, conn, driver); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *list <= 0 {
		return
	}

	var runs []domain.RunSummary
	if driver == db.DriverSQLite {
		runs, err = repositories.NewSqliteRunRecorder(conn).ListRuns(ctx, *list)
	} else {
		runs, err = repositories.NewSQLRunRecorder(conn).ListRuns(ctx, *list)
	}
	if err != nil {
		log.Fatalf("list runs failed: %v", err)
	}

	for _, r := range runs {
		fmt.Printf(
			"%s req=%s at=%s locations=%d slots=%d queried=%d no_route=%d failed=%d dur=%dms\n",
			r.RunID, r.RequestID, r.RequestedAt.Format(time.RFC3339), r.LocationCount, r.SlotCount,
			r.QueriedCells, r.NoRouteCells, r.FailedCells, r.ElapsedMillis,
		)
	}
}
