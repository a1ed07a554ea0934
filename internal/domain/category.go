package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrUnknownCategory = errors.New("unknown category")

type Weather string

const (
	WeatherClear Weather = "Clear"
	WeatherRainy Weather = "Rainy"
	WeatherSnowy Weather = "Snowy"
	WeatherFoggy Weather = "Foggy"
	WeatherWindy Weather = "Windy"
)

// Ordered Low < Medium < High.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "Low"
	TrafficMedium TrafficLevel = "Medium"
	TrafficHigh   TrafficLevel = "High"
)

// Ordered Morning < Afternoon < Evening < Night.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "Morning"
	TimeAfternoon TimeOfDay = "Afternoon"
	TimeEvening   TimeOfDay = "Evening"
	TimeNight     TimeOfDay = "Night"
)

type VehicleType string

const (
	VehicleBike    VehicleType = "Bike"
	VehicleScooter VehicleType = "Scooter"
	VehicleCar     VehicleType = "Car"
)

var (
	Weathers      = []Weather{WeatherClear, WeatherRainy, WeatherSnowy, WeatherFoggy, WeatherWindy}
	TrafficLevels = []TrafficLevel{TrafficLow, TrafficMedium, TrafficHigh}
	TimesOfDay    = []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening, TimeNight}
	VehicleTypes  = []VehicleType{VehicleBike, VehicleScooter, VehicleCar}
)

// normalizeLabel maps " rainy " and "RAINY" to "Rainy".
// A Caser is stateful, so one is built per call.
func normalizeLabel(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

func parseCategory[T ~string](kind string, s string, domain []T) (T, error) {
	label := T(normalizeLabel(s))
	for _, v := range domain {
		if v == label {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("parse %s %q: %w", kind, s, ErrUnknownCategory)
}

func ParseWeather(s string) (Weather, error) {
	return parseCategory("weather", s, Weathers)
}

func ParseTrafficLevel(s string) (TrafficLevel, error) {
	return parseCategory("traffic level", s, TrafficLevels)
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	return parseCategory("time of day", s, TimesOfDay)
}

func ParseVehicleType(s string) (VehicleType, error) {
	return parseCategory("vehicle type", s, VehicleTypes)
}
