package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("unknown field")

// Categorical field a subset can be grouped by.
type Factor string

const (
	FactorVehicleType  Factor = "vehicle_type"
	FactorTrafficLevel Factor = "traffic_level"
	FactorWeather      Factor = "weather"
	FactorTimeOfDay    Factor = "time_of_day"
)

// Factors in the order the dashboard presents them.
var Factors = []Factor{FactorTimeOfDay, FactorVehicleType, FactorTrafficLevel, FactorWeather}

func ParseFactor(s string) (Factor, error) {
	for _, f := range Factors {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("parse factor %q: %w", s, ErrUnknownField)
}

// Label returns the category label of r for factor f.
func (f Factor) Label(r DeliveryRecord) string {
	switch f {
	case FactorVehicleType:
		return string(r.VehicleType)
	case FactorTrafficLevel:
		return string(r.TrafficLevel)
	case FactorWeather:
		return string(r.Weather)
	case FactorTimeOfDay:
		return string(r.TimeOfDay)
	}
	return ""
}

// Numeric field of a DeliveryRecord.
type NumericField string

const (
	FieldDistanceKm           NumericField = "distance_km"
	FieldPreparationTimeMin   NumericField = "preparation_time_min"
	FieldCourierExperienceYrs NumericField = "courier_experience_yrs"
	FieldDeliveryTimeMin      NumericField = "delivery_time_min"
)

var NumericFields = []NumericField{
	FieldDistanceKm,
	FieldPreparationTimeMin,
	FieldCourierExperienceYrs,
	FieldDeliveryTimeMin,
}

func ParseNumericField(s string) (NumericField, error) {
	for _, f := range NumericFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("parse numeric field %q: %w", s, ErrUnknownField)
}

// Value returns the value of field f in r.
func (f NumericField) Value(r DeliveryRecord) float64 {
	switch f {
	case FieldDistanceKm:
		return r.DistanceKm
	case FieldPreparationTimeMin:
		return r.PreparationTimeMin
	case FieldCourierExperienceYrs:
		return r.CourierExperienceYrs
	case FieldDeliveryTimeMin:
		return r.DeliveryTimeMin
	}
	return 0
}

func (f NumericField) Valid() bool {
	for _, v := range NumericFields {
		if v == f {
			return true
		}
	}
	return false
}

func (f Factor) Valid() bool {
	for _, v := range Factors {
		if v == f {
			return true
		}
	}
	return false
}
