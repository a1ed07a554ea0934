package api

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/api/handlers"
	"delivery-time-service/internal/platform/obs"
	"delivery-time-service/internal/ports"
	"delivery-time-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options carries the already-initialized dependencies of the HTTP API.
type Options struct {
	Dataset       *services.Dataset
	Preprocessor  ports.Preprocessor
	Regressor     ports.Regressor
	Profile       *dto.Profile
	Model         dto.ModelInfo
	HistogramBins int
	CORSOrigins   []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(opt Options) http.Handler {
	r := chi.NewRouter()

	origins := opt.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	aboutHandler := &handlers.AboutHandler{
		Profile:      opt.Profile,
		Introduction: handlers.NewIntroduction(opt.Model),
	}
	dashboardHandler := &handlers.DashboardHandler{
		Dataset:     opt.Dataset,
		DefaultBins: opt.HistogramBins,
	}
	predictionHandler := &handlers.PredictionHandler{
		Preprocessor: opt.Preprocessor,
		Regressor:    opt.Regressor,
	}

	r.Get("/health", handlers.Health)
	r.Get("/about", aboutHandler.About)
	r.Get("/introduction", aboutHandler.Intro)

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", dashboardHandler.Dashboard)
		r.Get("/options", dashboardHandler.Options)
		r.Get("/groups", dashboardHandler.Groups)
		r.Get("/histogram", dashboardHandler.Histogram)
	})
	r.Get("/deliveries", dashboardHandler.Deliveries)
	r.Post("/predictions", predictionHandler.Predict)

	r.Method(http.MethodGet, "/metrics", obs.MetricsHandler())

	return r
}
