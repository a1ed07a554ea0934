package dto

// Bounds mirror the prediction form. Every field is required; numeric fields
// are pointers so an omitted value is distinguishable from 0.
type PredictionRequest struct {
	DistanceKm           *float64 `json:"distance_km" validate:"required,gte=0.1,lte=50"`
	Weather              string   `json:"weather" validate:"required,oneof=Clear Rainy Snowy Foggy Windy"`
	TrafficLevel         string   `json:"traffic_level" validate:"required,oneof=Low Medium High"`
	TimeOfDay            string   `json:"time_of_day" validate:"required,oneof=Morning Afternoon Evening Night"`
	VehicleType          string   `json:"vehicle_type" validate:"required,oneof=Bike Scooter Car"`
	PreparationTimeMin   *float64 `json:"preparation_time_min" validate:"required,gte=1,lte=120"`
	CourierExperienceYrs *float64 `json:"courier_experience_yrs" validate:"required,gte=0,lte=20"`
}

type PredictionResponse struct {
	EstimatedDeliveryTimeMin float64           `json:"estimated_delivery_time_min"`
	TotalOrderTimeMin        float64           `json:"total_order_time_min"`
	Input                    PredictionRequest `json:"input"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
