package model

import (
	"context"
	"delivery-time-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// NumericColumn is a standard-scaled input column.
type NumericColumn struct {
	Column string  `json:"column"`
	Mean   float64 `json:"mean"`
	Scale  float64 `json:"scale"`
}

// CategoricalColumn is a one-hot encoded input column.
// A value outside Categories encodes as all zeros.
type CategoricalColumn struct {
	Column     string   `json:"column"`
	Categories []string `json:"categories"`
}

// Artifact is the JSON export of a fitted scaler+encoder+ridge pipeline.
// Features are laid out as every numeric column, then every categorical
// column's one-hot block, in file order.
type Artifact struct {
	Algorithm    string              `json:"algorithm"`
	Numeric      []NumericColumn     `json:"numeric"`
	Categorical  []CategoricalColumn `json:"categorical"`
	Coefficients []float64           `json:"coefficients"`
	Intercept    float64             `json:"intercept"`
}

// ArtifactModel implements both Preprocessor and Regressor from one Artifact.
// It is immutable after construction and safe for concurrent use.
type ArtifactModel struct {
	artifact Artifact
	width    int
}

// LoadArtifactModel reads and validates an artifact file.
func LoadArtifactModel(path string) (*ArtifactModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model artifact: read %q: %w", path, err)
	}

	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("load model artifact: parse json: %w", err)
	}

	m, err := NewArtifactModel(a)
	if err != nil {
		return nil, fmt.Errorf("load model artifact %q: %w", path, err)
	}
	return m, nil
}

func NewArtifactModel(a Artifact) (*ArtifactModel, error) {
	width := 0
	for i, n := range a.Numeric {
		if _, ok := numericValue(domain.PredictionInput{}, n.Column); !ok {
			return nil, fmt.Errorf("numeric column #%d: unknown column %q", i+1, n.Column)
		}
		if n.Scale == 0 || math.IsNaN(n.Scale) {
			return nil, fmt.Errorf("numeric column %q: scale must be non-zero", n.Column)
		}
		width++
	}
	for i, c := range a.Categorical {
		if _, ok := categoricalValue(domain.PredictionInput{}, c.Column); !ok {
			return nil, fmt.Errorf("categorical column #%d: unknown column %q", i+1, c.Column)
		}
		if len(c.Categories) == 0 {
			return nil, fmt.Errorf("categorical column %q: no categories", c.Column)
		}
		width += len(c.Categories)
	}

	if width == 0 {
		return nil, errors.New("artifact has no input columns")
	}
	if len(a.Coefficients) != width {
		return nil, fmt.Errorf("artifact has %d coefficients for %d features", len(a.Coefficients), width)
	}

	return &ArtifactModel{artifact: a, width: width}, nil
}

// Transform scales numeric columns and one-hot encodes categorical ones.
func (m *ArtifactModel) Transform(ctx context.Context, row domain.PredictionInput) ([]float64, error) {
	out := make([]float64, 0, m.width)

	for _, n := range m.artifact.Numeric {
		v, _ := numericValue(row, n.Column)
		out = append(out, (v-n.Mean)/n.Scale)
	}

	for _, c := range m.artifact.Categorical {
		v, _ := categoricalValue(row, c.Column)
		for _, cat := range c.Categories {
			if cat == v {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}

	return out, nil
}

// Predict returns intercept + coefficients·features.
func (m *ArtifactModel) Predict(ctx context.Context, features []float64) (float64, error) {
	if len(features) != m.width {
		return 0, fmt.Errorf("artifact model: got %d features, want %d", len(features), m.width)
	}

	y := m.artifact.Intercept
	for i, f := range features {
		y += m.artifact.Coefficients[i] * f
	}
	return y, nil
}

// Algorithm names the fitted estimator, e.g. "ridge".
func (m *ArtifactModel) Algorithm() string { return m.artifact.Algorithm }

// Columns lists the input columns the model consumes, numeric first.
func (m *ArtifactModel) Columns() []string {
	out := make([]string, 0, len(m.artifact.Numeric)+len(m.artifact.Categorical))
	for _, n := range m.artifact.Numeric {
		out = append(out, n.Column)
	}
	for _, c := range m.artifact.Categorical {
		out = append(out, c.Column)
	}
	return out
}

func numericValue(row domain.PredictionInput, column string) (float64, bool) {
	switch column {
	case domain.ColumnDistanceKm:
		return row.DistanceKm, true
	case domain.ColumnPreparationTimeMin:
		return row.PreparationTimeMin, true
	case domain.ColumnCourierExperienceYrs:
		return row.CourierExperienceYrs, true
	}
	return 0, false
}

func categoricalValue(row domain.PredictionInput, column string) (string, bool) {
	switch column {
	case domain.ColumnWeather:
		return string(row.Weather), true
	case domain.ColumnTrafficLevel:
		return string(row.TrafficLevel), true
	case domain.ColumnTimeOfDay:
		return string(row.TimeOfDay), true
	case domain.ColumnVehicleType:
		return string(row.VehicleType), true
	}
	return "", false
}
