package handlers

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/logger"
	"delivery-time-service/internal/ports"
	"delivery-time-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxPredictionBody = 1 << 16

type PredictionHandler struct {
	Preprocessor ports.Preprocessor
	Regressor    ports.Regressor
}

// Predict validates the form input and runs a single model prediction.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictionRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPredictionBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	fields, err := validateStruct(req)
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("validate prediction request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if len(fields) > 0 {
		writeJSON(w, r, http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
		return
	}

	in := domain.PredictionInput{
		DistanceKm:           *req.DistanceKm,
		Weather:              domain.Weather(req.Weather),
		TrafficLevel:         domain.TrafficLevel(req.TrafficLevel),
		TimeOfDay:            domain.TimeOfDay(req.TimeOfDay),
		VehicleType:          domain.VehicleType(req.VehicleType),
		PreparationTimeMin:   *req.PreparationTimeMin,
		CourierExperienceYrs: *req.CourierExperienceYrs,
	}

	p, err := services.Predict(r.Context(), in, h.Preprocessor, h.Regressor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrPrediction):
			logger.C(r.Context()).Error().Err(err).Msg("prediction failed")
			writeError(w, r, http.StatusBadGateway, "prediction failed")
		default:
			logger.C(r.Context()).Error().Err(err).Msg("prediction failed")
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PredictionResponse{
		EstimatedDeliveryTimeMin: p.EstimatedDeliveryMin,
		TotalOrderTimeMin:        p.TotalOrderTimeMin,
		Input:                    req,
	})
}
