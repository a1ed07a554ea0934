package handlers

import (
	"delivery-time-service/internal/api/dto"
	"delivery-time-service/internal/domain"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// categoryParam returns nil for an absent, empty or "All" selection.
func categoryParam[T ~string](q url.Values, key string, parse func(string) (T, error)) (*T, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &v, nil
}

func floatParam(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%s must be a finite number", key)
	}
	return &v, nil
}

func intParam(q url.Values, key string, def, lo, hi int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%s must be an integer between %d and %d", key, lo, hi)
	}
	return v, nil
}

// parseFilterSpec builds a FilterSpec from dashboard query parameters.
// A missing experience bound leaves that side of the range open.
func parseFilterSpec(q url.Values) (domain.FilterSpec, error) {
	var p domain.FilterParams
	var err error

	if p.VehicleType, err = categoryParam(q, "vehicle_type", domain.ParseVehicleType); err != nil {
		return domain.FilterSpec{}, err
	}
	if p.TrafficLevel, err = categoryParam(q, "traffic_level", domain.ParseTrafficLevel); err != nil {
		return domain.FilterSpec{}, err
	}
	if p.Weather, err = categoryParam(q, "weather", domain.ParseWeather); err != nil {
		return domain.FilterSpec{}, err
	}
	if p.TimeOfDay, err = categoryParam(q, "time_of_day", domain.ParseTimeOfDay); err != nil {
		return domain.FilterSpec{}, err
	}

	lo, err := floatParam(q, "experience_min")
	if err != nil {
		return domain.FilterSpec{}, err
	}
	hi, err := floatParam(q, "experience_max")
	if err != nil {
		return domain.FilterSpec{}, err
	}
	if lo != nil || hi != nil {
		rng := domain.Range{Min: math.Inf(-1), Max: math.Inf(1)}
		if lo != nil {
			rng.Min = *lo
		}
		if hi != nil {
			rng.Max = *hi
		}
		p.CourierExperience = &rng
	}

	return domain.NewFilterSpec(p)
}

func filtersResponse(spec domain.FilterSpec) dto.FiltersResponse {
	p := spec.Params()
	var res dto.FiltersResponse

	str := func(s string) *string { return &s }
	if p.VehicleType != nil {
		res.VehicleType = str(string(*p.VehicleType))
	}
	if p.TrafficLevel != nil {
		res.TrafficLevel = str(string(*p.TrafficLevel))
	}
	if p.Weather != nil {
		res.Weather = str(string(*p.Weather))
	}
	if p.TimeOfDay != nil {
		res.TimeOfDay = str(string(*p.TimeOfDay))
	}
	if p.CourierExperience != nil {
		res.ExperienceMin = nullable(p.CourierExperience.Min)
		res.ExperienceMax = nullable(p.CourierExperience.Max)
	}

	return res
}
