package domain

// Represents one historical delivery observation from the cleaned dataset.
// Records are loaded once at startup and never mutated afterwards.
type DeliveryRecord struct {
	DistanceKm           float64
	Weather              Weather
	TrafficLevel         TrafficLevel
	TimeOfDay            TimeOfDay
	VehicleType          VehicleType
	PreparationTimeMin   float64
	CourierExperienceYrs float64
	DeliveryTimeMin      float64
}

// Dataset column headers, in file order.
const (
	ColumnDistanceKm           = "Distance_km"
	ColumnWeather              = "Weather"
	ColumnTrafficLevel         = "Traffic_Level"
	ColumnTimeOfDay            = "Time_of_Day"
	ColumnVehicleType          = "Vehicle_Type"
	ColumnPreparationTimeMin   = "Preparation_Time_min"
	ColumnCourierExperienceYrs = "Courier_Experience_yrs"
	ColumnDeliveryTimeMin      = "Delivery_Time_min"
)

// Columns lists the required dataset headers.
var Columns = []string{
	ColumnDistanceKm,
	ColumnWeather,
	ColumnTrafficLevel,
	ColumnTimeOfDay,
	ColumnVehicleType,
	ColumnPreparationTimeMin,
	ColumnCourierExperienceYrs,
	ColumnDeliveryTimeMin,
}
