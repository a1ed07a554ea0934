package model

import (
	"context"
	"delivery-time-service/internal/domain"
	"fmt"
)

// StubModel is a deterministic stand-in for the trained pipeline.
// Features are [distance, prep, experience, traffic index], and the estimate is
// Base + PerKm*distance + PerTrafficLevel*traffic index - PerExperienceYr*experience.
type StubModel struct {
	Base            float64
	PerKm           float64
	PerTrafficLevel float64
	PerExperienceYr float64
}

func NewStubModel() *StubModel {
	return &StubModel{Base: 10, PerKm: 3, PerTrafficLevel: 5, PerExperienceYr: 0.5}
}

func (s *StubModel) Transform(ctx context.Context, row domain.PredictionInput) ([]float64, error) {
	traffic := -1
	for i, t := range domain.TrafficLevels {
		if t == row.TrafficLevel {
			traffic = i
		}
	}
	if traffic < 0 {
		return nil, fmt.Errorf("stub model: unknown traffic level %q", row.TrafficLevel)
	}
	return []float64{row.DistanceKm, row.PreparationTimeMin, row.CourierExperienceYrs, float64(traffic)}, nil
}

func (s *StubModel) Predict(ctx context.Context, features []float64) (float64, error) {
	if len(features) != 4 {
		return 0, fmt.Errorf("stub model: got %d features, want 4", len(features))
	}
	return s.Base + s.PerKm*features[0] + s.PerTrafficLevel*features[3] - s.PerExperienceYr*features[2], nil
}
