package dto

type DeliveryResponse struct {
	DistanceKm           float64 `json:"distance_km"`
	Weather              string  `json:"weather"`
	TrafficLevel         string  `json:"traffic_level"`
	TimeOfDay            string  `json:"time_of_day"`
	VehicleType          string  `json:"vehicle_type"`
	PreparationTimeMin   float64 `json:"preparation_time_min"`
	CourierExperienceYrs float64 `json:"courier_experience_yrs"`
	DeliveryTimeMin      float64 `json:"delivery_time_min"`
}

type ListDeliveriesResponse struct {
	Total      int                `json:"total"`
	Returned   int                `json:"returned"`
	Deliveries []DeliveryResponse `json:"deliveries"`
}

// FiltersResponse echoes the active filters; nil fields are unrestricted.
type FiltersResponse struct {
	VehicleType   *string  `json:"vehicle_type"`
	TrafficLevel  *string  `json:"traffic_level"`
	Weather       *string  `json:"weather"`
	TimeOfDay     *string  `json:"time_of_day"`
	ExperienceMin *float64 `json:"experience_min"`
	ExperienceMax *float64 `json:"experience_max"`
}
