package services

import "delivery-time-service/internal/domain"

// sampleRecords is a small dataset covering every category at least once.
func sampleRecords() []domain.DeliveryRecord {
	return []domain.DeliveryRecord{
		{DistanceKm: 2, Weather: domain.WeatherClear, TrafficLevel: domain.TrafficHigh, TimeOfDay: domain.TimeEvening, VehicleType: domain.VehicleBike, PreparationTimeMin: 10, CourierExperienceYrs: 1, DeliveryTimeMin: 30},
		{DistanceKm: 5, Weather: domain.WeatherRainy, TrafficLevel: domain.TrafficLow, TimeOfDay: domain.TimeMorning, VehicleType: domain.VehicleCar, PreparationTimeMin: 20, CourierExperienceYrs: 3, DeliveryTimeMin: 50},
		{DistanceKm: 8, Weather: domain.WeatherClear, TrafficLevel: domain.TrafficMedium, TimeOfDay: domain.TimeNight, VehicleType: domain.VehicleBike, PreparationTimeMin: 15, CourierExperienceYrs: 5, DeliveryTimeMin: 70},
		{DistanceKm: 12, Weather: domain.WeatherSnowy, TrafficLevel: domain.TrafficHigh, TimeOfDay: domain.TimeAfternoon, VehicleType: domain.VehicleScooter, PreparationTimeMin: 25, CourierExperienceYrs: 7, DeliveryTimeMin: 90},
	}
}

func experienceRecords(yrs ...float64) []domain.DeliveryRecord {
	out := make([]domain.DeliveryRecord, len(yrs))
	for i, y := range yrs {
		out[i] = domain.DeliveryRecord{CourierExperienceYrs: y, VehicleType: domain.VehicleBike, DeliveryTimeMin: float64(10 * (i + 1))}
	}
	return out
}

func mustSpec(p domain.FilterParams) domain.FilterSpec {
	spec, err := domain.NewFilterSpec(p)
	if err != nil {
		panic(err)
	}
	return spec
}
