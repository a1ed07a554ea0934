package main

import (
	"context"
	"database/sql"
	"delivery-time-service/internal/adapters/repositories"
	"delivery-time-service/internal/config"
	"delivery-time-service/internal/platform/db"
	"delivery-time-service/internal/platform/logger"
	"flag"
	"fmt"
	"os"
	"time"
)

// dbtool creates the deliveries schema and loads it from the cleaned CSV.
func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(logger.FromEnv())
	log := logger.Named("dbtool")

	source := flag.String("source", "sqlite", "target database: sqlite or postgres")
	csvPath := flag.String("csv", config.Get("DATASET_PATH", "data/Food_Delivery_Times_Cleaned.csv"), "cleaned dataset CSV")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, dialect, err := open(ctx, *source)
	if err != nil {
		log.Fatal().Err(err).Str("source", *source).Msg("open database")
	}
	defer conn.Close()

	log.Info().Str("dialect", dialect.String()).Msg("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
	log.Info().Msg("schema ready")

	log.Info().Str("csv", *csvPath).Msg("seeding database")
	n, err := repositories.SeedFromCSV(ctx, conn, dialect, *csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Int("rows", n).Msg("seeding complete")
}

func open(ctx context.Context, source string) (*sql.DB, db.Dialect, error) {
	switch source {
	case "postgres":
		databaseURL, err := config.MustGet("DATABASE_URL")
		if err != nil {
			return nil, db.DialectPostgres, err
		}
		conn, err := db.Open(ctx, databaseURL)
		return conn, db.DialectPostgres, err
	case "sqlite":
		conn, err := db.OpenSQLite(ctx, config.Get("SQLITE_PATH", "data/app.db"))
		return conn, db.DialectSQLite, err
	default:
		return nil, db.DialectSQLite, fmt.Errorf("dbtool: unknown source %q", source)
	}
}
