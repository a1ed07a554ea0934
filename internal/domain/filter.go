package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidRange = errors.New("invalid range")

// Inclusive numeric range [Min, Max].
type Range struct {
	Min float64
	Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterParams carries the raw user selection. Nil means "no restriction".
type FilterParams struct {
	VehicleType       *VehicleType
	TrafficLevel      *TrafficLevel
	Weather           *Weather
	TimeOfDay         *TimeOfDay
	CourierExperience *Range
}

// FilterSpec is a validated, immutable set of predicates.
// Predicates are AND-combined; an absent predicate does not restrict.
type FilterSpec struct {
	vehicleType       *VehicleType
	trafficLevel      *TrafficLevel
	weather           *Weather
	timeOfDay         *TimeOfDay
	courierExperience *Range
}

// NewFilterSpec validates p and copies it into a FilterSpec.
// A range with Min > Max (or a NaN bound) is rejected with ErrInvalidRange.
func NewFilterSpec(p FilterParams) (FilterSpec, error) {
	var spec FilterSpec

	if r := p.CourierExperience; r != nil {
		if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
			return FilterSpec{}, fmt.Errorf("new filter spec: courier experience bound is NaN: %w", ErrInvalidRange)
		}
		if r.Min > r.Max {
			return FilterSpec{}, fmt.Errorf(
				"new filter spec: courier experience min %g > max %g: %w",
				r.Min, r.Max, ErrInvalidRange,
			)
		}
		rc := *r
		spec.courierExperience = &rc
	}

	if p.VehicleType != nil {
		v := *p.VehicleType
		spec.vehicleType = &v
	}
	if p.TrafficLevel != nil {
		v := *p.TrafficLevel
		spec.trafficLevel = &v
	}
	if p.Weather != nil {
		v := *p.Weather
		spec.weather = &v
	}
	if p.TimeOfDay != nil {
		v := *p.TimeOfDay
		spec.timeOfDay = &v
	}

	return spec, nil
}

// Match reports whether r satisfies every active predicate.
func (s FilterSpec) Match(r DeliveryRecord) bool {
	if s.vehicleType != nil && r.VehicleType != *s.vehicleType {
		return false
	}
	if s.trafficLevel != nil && r.TrafficLevel != *s.trafficLevel {
		return false
	}
	if s.weather != nil && r.Weather != *s.weather {
		return false
	}
	if s.timeOfDay != nil && r.TimeOfDay != *s.timeOfDay {
		return false
	}
	if s.courierExperience != nil && !s.courierExperience.Contains(r.CourierExperienceYrs) {
		return false
	}
	return true
}

// IsEmpty reports whether no predicate is active.
func (s FilterSpec) IsEmpty() bool {
	return s.vehicleType == nil &&
		s.trafficLevel == nil &&
		s.weather == nil &&
		s.timeOfDay == nil &&
		s.courierExperience == nil
}

// Params returns a copy of the active predicates.
func (s FilterSpec) Params() FilterParams {
	var p FilterParams
	if s.vehicleType != nil {
		v := *s.vehicleType
		p.VehicleType = &v
	}
	if s.trafficLevel != nil {
		v := *s.trafficLevel
		p.TrafficLevel = &v
	}
	if s.weather != nil {
		v := *s.weather
		p.Weather = &v
	}
	if s.timeOfDay != nil {
		v := *s.timeOfDay
		p.TimeOfDay = &v
	}
	if s.courierExperience != nil {
		v := *s.courierExperience
		p.CourierExperience = &v
	}
	return p
}
