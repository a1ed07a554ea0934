package domain

// The seven model inputs for a single prediction (a DeliveryRecord minus the target).
type PredictionInput struct {
	DistanceKm           float64
	Weather              Weather
	TrafficLevel         TrafficLevel
	TimeOfDay            TimeOfDay
	VehicleType          VehicleType
	PreparationTimeMin   float64
	CourierExperienceYrs float64
}

// Prediction is the result of one model call.
// TotalOrderTimeMin adds the preparation time to the estimated delivery time.
type Prediction struct {
	Input                PredictionInput
	EstimatedDeliveryMin float64
	TotalOrderTimeMin    float64
}
