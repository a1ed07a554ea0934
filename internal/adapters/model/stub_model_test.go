package model

import (
	"context"
	"delivery-time-service/internal/domain"
	"testing"
)

func TestStubModel(t *testing.T) {
	s := NewStubModel()
	ctx := context.Background()

	features, err := s.Transform(ctx, domain.PredictionInput{
		DistanceKm:           4,
		TrafficLevel:         domain.TrafficMedium,
		CourierExperienceYrs: 2,
	})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	// 10 + 3*4 + 5*1 - 0.5*2
	y, err := s.Predict(ctx, features)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if y != 26 {
		t.Fatalf("prediction = %v, want 26", y)
	}

	if _, err := s.Transform(ctx, domain.PredictionInput{TrafficLevel: "Gridlock"}); err == nil {
		t.Fatalf("accepted unknown traffic level")
	}
	if _, err := s.Predict(ctx, []float64{1, 2}); err == nil {
		t.Fatalf("accepted short feature vector")
	}
}
