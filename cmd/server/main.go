package main

import (
	"context"
	"database/sql"
	"delivery-time-service/internal/adapters/model"
	"delivery-time-service/internal/adapters/repositories"
	"delivery-time-service/internal/api"
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/api/handlers"
	"delivery-time-service/internal/config"
	"delivery-time-service/internal/platform/db"
	"delivery-time-service/internal/platform/logger"
	"delivery-time-service/internal/ports"
	"delivery-time-service/internal/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// pipeline is a model adapter providing both halves of the prediction port.
type pipeline interface {
	ports.Preprocessor
	ports.Regressor
}

// main is the application composition root.
// It wires concrete adapters (CSV/SQL dataset, model pipeline) behind ports and starts the HTTP server.
func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(logger.FromEnv())
	log := logger.Named("server")

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func run() error {
	log := logger.Named("server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := config.Get("PORT", "8080")
	profilePath := config.Get("PROFILE_PATH", "")

	datasetSource, err := config.GetEnum("DATASET_SOURCE", "csv", "csv", "sqlite", "postgres")
	if err != nil {
		return err
	}
	modelSource, err := config.GetEnum("MODEL_SOURCE", "artifact", "artifact", "remote", "stub")
	if err != nil {
		return err
	}

	// Dataset and model are independent; load them concurrently.
	var (
		dataset *services.Dataset
		pipe    pipeline
		info    dto.ModelInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		repo, closeRepo, err := openRepository(gctx, datasetSource)
		if err != nil {
			return err
		}
		defer closeRepo()

		dataset, err = services.LoadDataset(gctx, repo)
		return err
	})
	g.Go(func() error {
		var err error
		pipe, info, err = openModel(modelSource)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	log.Info().
		Str("dataset_source", datasetSource).
		Int("records", dataset.Len()).
		Str("model_source", info.Source).
		Str("algorithm", info.Algorithm).
		Msg("startup complete")

	var profile *dto.Profile
	if profilePath != "" {
		profile, err = handlers.LoadProfile(profilePath)
		if err != nil {
			return fmt.Errorf("startup: %w", err)
		}
	}

	router := api.NewRouter(api.Options{
		Dataset:       dataset,
		Preprocessor:  pipe,
		Regressor:     pipe,
		Profile:       profile,
		Model:         info,
		HistogramBins: config.GetInt("HISTOGRAM_BINS", services.DefaultBucketCount),
		CORSOrigins:   config.GetList("CORS_ORIGINS", nil),
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openRepository selects the dataset adapter. The returned close func releases
// any database handle once the dataset is in memory.
func openRepository(ctx context.Context, source string) (ports.DeliveryRepository, func(), error) {
	noop := func() {}

	switch source {
	case "sqlite":
		conn, err := db.OpenSQLite(ctx, config.Get("SQLITE_PATH", "data/app.db"))
		if err != nil {
			return nil, noop, err
		}
		// Initialize schema and seed from the CSV on startup for local runs.
		if config.GetBool("SEED_ON_START", false) {
			if err := initAndSeed(ctx, conn, db.DialectSQLite); err != nil {
				conn.Close()
				return nil, noop, err
			}
		}
		return repositories.NewSQLDeliveryRepository(conn), func() { conn.Close() }, nil

	case "postgres":
		databaseURL, err := config.MustGet("DATABASE_URL")
		if err != nil {
			return nil, noop, err
		}
		conn, err := db.Open(ctx, databaseURL)
		if err != nil {
			return nil, noop, err
		}
		return repositories.NewSQLDeliveryRepository(conn), func() { conn.Close() }, nil

	default:
		path := config.Get("DATASET_PATH", "data/Food_Delivery_Times_Cleaned.csv")
		return repositories.NewCSVDeliveryRepository(path), noop, nil
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	csvPath := config.Get("DATASET_PATH", "data/Food_Delivery_Times_Cleaned.csv")
	if _, err := repositories.SeedFromCSV(ctx, conn, dialect, csvPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// openModel selects the prediction adapter and describes it for /introduction.
func openModel(source string) (pipeline, dto.ModelInfo, error) {
	switch source {
	case "remote":
		baseURL, err := config.MustGet("MODEL_URL")
		if err != nil {
			return nil, dto.ModelInfo{}, err
		}
		m, err := model.NewRemoteModel(baseURL, config.GetDuration("MODEL_TIMEOUT", 5*time.Second))
		if err != nil {
			return nil, dto.ModelInfo{}, err
		}
		return m, dto.ModelInfo{Source: "remote", Algorithm: "remote pipeline"}, nil

	case "stub":
		m := model.NewStubModel()
		return m, dto.ModelInfo{Source: "stub", Algorithm: "linear stub"}, nil

	default:
		m, err := model.LoadArtifactModel(config.Get("MODEL_PATH", "model/ridge_model.json"))
		if err != nil {
			return nil, dto.ModelInfo{}, err
		}
		return m, dto.ModelInfo{Source: "artifact", Algorithm: m.Algorithm(), Features: m.Columns()}, nil
	}
}
