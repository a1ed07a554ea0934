package model

import (
	"context"
	"delivery-time-service/internal/domain"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func testArtifact() Artifact {
	return Artifact{
		Algorithm: "ridge",
		Numeric: []NumericColumn{
			{Column: domain.ColumnDistanceKm, Mean: 5, Scale: 5},
		},
		Categorical: []CategoricalColumn{
			{Column: domain.ColumnTrafficLevel, Categories: []string{"Low", "Medium", "High"}},
		},
		Coefficients: []float64{2, 0, 5, 10},
		Intercept:    20,
	}
}

func TestArtifactModelTransformAndPredict(t *testing.T) {
	m, err := NewArtifactModel(testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := domain.PredictionInput{DistanceKm: 10, TrafficLevel: domain.TrafficHigh}
	features, err := m.Transform(context.Background(), in)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	want := []float64{1, 0, 0, 1}
	if len(features) != len(want) {
		t.Fatalf("features = %v, want %v", features, want)
	}
	for i := range want {
		if features[i] != want[i] {
			t.Fatalf("features = %v, want %v", features, want)
		}
	}

	y, err := m.Predict(context.Background(), features)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if y != 32 {
		t.Fatalf("prediction = %v, want 32", y)
	}

	if _, err := m.Predict(context.Background(), []float64{1}); err == nil {
		t.Fatalf("predict accepted a short feature vector")
	}
}

func TestArtifactModelUnknownCategoryEncodesAsZeros(t *testing.T) {
	m, err := NewArtifactModel(testArtifact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	features, err := m.Transform(context.Background(), domain.PredictionInput{DistanceKm: 5, TrafficLevel: "Jammed"})
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	for i, f := range features {
		if f != 0 {
			t.Fatalf("feature %d = %v, want 0", i, f)
		}
	}
}

func TestNewArtifactModelValidation(t *testing.T) {
	a := testArtifact()
	a.Coefficients = a.Coefficients[:3]
	if _, err := NewArtifactModel(a); err == nil {
		t.Fatalf("accepted mismatched coefficient count")
	}

	a = testArtifact()
	a.Numeric[0].Scale = 0
	if _, err := NewArtifactModel(a); err == nil {
		t.Fatalf("accepted zero scale")
	}

	a = testArtifact()
	a.Numeric[0].Column = "Tip_Amount"
	if _, err := NewArtifactModel(a); err == nil {
		t.Fatalf("accepted unknown column")
	}
}

func TestLoadArtifactModel(t *testing.T) {
	b, err := json.Marshal(testArtifact())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	m, err := LoadArtifactModel(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Algorithm() != "ridge" {
		t.Fatalf("algorithm = %q, want ridge", m.Algorithm())
	}
	cols := m.Columns()
	if len(cols) != 2 || cols[0] != domain.ColumnDistanceKm || cols[1] != domain.ColumnTrafficLevel {
		t.Fatalf("columns = %v", cols)
	}
}
