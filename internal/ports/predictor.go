package ports

import (
	"context"
	"delivery-time-service/internal/domain"
)

// Fitted preprocessing step that turns a raw input row into model features.
type Preprocessor interface {
	// Return the numeric feature vector for one input row.
	Transform(ctx context.Context, row domain.PredictionInput) ([]float64, error)
}

// Fitted regression model.
type Regressor interface {
	// Return the estimated delivery time in minutes for one feature vector.
	Predict(ctx context.Context, features []float64) (float64, error)
}
