package domain

import (
	"errors"
	"testing"
)

func TestParseCategories(t *testing.T) {
	w, err := ParseWeather(" rainy ")
	if err != nil || w != WeatherRainy {
		t.Fatalf("ParseWeather = %q, %v; want Rainy", w, err)
	}

	tl, err := ParseTrafficLevel("HIGH")
	if err != nil || tl != TrafficHigh {
		t.Fatalf("ParseTrafficLevel = %q, %v; want High", tl, err)
	}

	td, err := ParseTimeOfDay("night")
	if err != nil || td != TimeNight {
		t.Fatalf("ParseTimeOfDay = %q, %v; want Night", td, err)
	}

	v, err := ParseVehicleType("Scooter")
	if err != nil || v != VehicleScooter {
		t.Fatalf("ParseVehicleType = %q, %v; want Scooter", v, err)
	}

	if _, err := ParseVehicleType("Truck"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestParseFields(t *testing.T) {
	f, err := ParseFactor("traffic_level")
	if err != nil || f != FactorTrafficLevel {
		t.Fatalf("ParseFactor = %q, %v", f, err)
	}
	if _, err := ParseFactor("colour"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}

	n, err := ParseNumericField("distance_km")
	if err != nil || n != FieldDistanceKm {
		t.Fatalf("ParseNumericField = %q, %v", n, err)
	}
	if _, err := ParseNumericField("weather"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("err = %v, want ErrUnknownField", err)
	}

	r := DeliveryRecord{DistanceKm: 7.5, VehicleType: VehicleCar}
	if got := FieldDistanceKm.Value(r); got != 7.5 {
		t.Fatalf("Value = %v, want 7.5", got)
	}
	if got := FactorVehicleType.Label(r); got != "Car" {
		t.Fatalf("Label = %q, want Car", got)
	}
}
