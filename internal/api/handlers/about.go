package handlers

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// AboutHandler serves the static profile and introduction pages.
type AboutHandler struct {
	Profile      *dto.Profile
	Introduction dto.IntroductionResponse
}

// About returns the author profile, or 404 when none is configured.
func (h *AboutHandler) About(w http.ResponseWriter, r *http.Request) {
	if h.Profile == nil {
		writeError(w, r, http.StatusNotFound, "profile not configured")
		return
	}
	writeJSON(w, r, http.StatusOK, h.Profile)
}

func (h *AboutHandler) Intro(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.Introduction)
}

// LoadProfile reads a profile JSON file.
func LoadProfile(path string) (*dto.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profile: read %q: %w", path, err)
	}

	var p dto.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("load profile: parse json: %w", err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("load profile: %q has no name", path)
	}
	return &p, nil
}

// NewIntroduction describes the application and the inputs the model uses.
func NewIntroduction(model dto.ModelInfo) dto.IntroductionResponse {
	return dto.IntroductionResponse{
		Title: "Food Delivery Time Prediction System",
		Summary: "Explore how operational factors affect delivery duration in historical " +
			"deliveries and estimate the delivery time of a single order.",
		Features: []dto.InputFeature{
			{Field: "distance_km", Description: "Travel distance from the restaurant to the customer in kilometers"},
			{Field: "weather", Description: "Weather at delivery time", Values: labelsOf(domain.Weathers)},
			{Field: "traffic_level", Description: "Road congestion level", Values: labelsOf(domain.TrafficLevels)},
			{Field: "time_of_day", Description: "Part of the day the order was placed", Values: labelsOf(domain.TimesOfDay)},
			{Field: "vehicle_type", Description: "Vehicle used by the courier", Values: labelsOf(domain.VehicleTypes)},
			{Field: "preparation_time_min", Description: "Time needed to prepare the order in minutes"},
			{Field: "courier_experience_yrs", Description: "Courier experience in years"},
		},
		Model: model,
	}
}

func labelsOf[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
