package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"delivery-time-service/internal/ports"
)

var (
	ErrInvalidInput = errors.New("invalid prediction input")
	ErrPrediction   = errors.New("prediction failed")
)

// ValidateInput checks that every field is populated with an in-domain value.
// Product bounds (e.g. distance at most 50 km) are enforced at the API boundary.
func ValidateInput(in domain.PredictionInput) error {
	nums := []struct {
		name string
		v    float64
	}{
		{"distance_km", in.DistanceKm},
		{"preparation_time_min", in.PreparationTimeMin},
		{"courier_experience_yrs", in.CourierExperienceYrs},
	}
	for _, n := range nums {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) || n.v < 0 {
			return fmt.Errorf("%s must be a finite non-negative number: %w", n.name, ErrInvalidInput)
		}
	}

	if _, err := domain.ParseWeather(string(in.Weather)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := domain.ParseTrafficLevel(string(in.TrafficLevel)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := domain.ParseTimeOfDay(string(in.TimeOfDay)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := domain.ParseVehicleType(string(in.VehicleType)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

// Predict runs one transform and one predict call. Collaborator failures are
// wrapped in ErrPrediction and returned as-is, without retry.
func Predict(
	ctx context.Context,
	in domain.PredictionInput,
	pre ports.Preprocessor,
	reg ports.Regressor,
) (_ domain.Prediction, err error) {
	defer obs.Time(ctx, "prediction.Predict")(&err)
	defer func() {
		outcome := "success"
		switch {
		case errors.Is(err, ErrInvalidInput):
			outcome = "invalid"
		case err != nil:
			outcome = "failure"
		}
		obs.PredictionsTotal.WithLabelValues(outcome).Inc()
	}()

	if pre == nil || reg == nil {
		return domain.Prediction{}, fmt.Errorf("predict: model is not configured: %w", ErrPrediction)
	}

	if err := ValidateInput(in); err != nil {
		return domain.Prediction{}, fmt.Errorf("predict: %w", err)
	}

	features, err := pre.Transform(ctx, in)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("predict: transform: %w: %w", ErrPrediction, err)
	}
	if len(features) == 0 {
		return domain.Prediction{}, fmt.Errorf("predict: transform returned no features: %w", ErrPrediction)
	}

	est, err := reg.Predict(ctx, features)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("predict: model: %w: %w", ErrPrediction, err)
	}
	if math.IsNaN(est) || math.IsInf(est, 0) {
		return domain.Prediction{}, fmt.Errorf("predict: model returned %v: %w", est, ErrPrediction)
	}

	return domain.Prediction{
		Input:                in,
		EstimatedDeliveryMin: est,
		TotalOrderTimeMin:    est + in.PreparationTimeMin,
	}, nil
}
