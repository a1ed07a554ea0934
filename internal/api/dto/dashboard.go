package dto

// Averages are null when no record matches the filters.
type MetricsResponse struct {
	TotalOrders        int      `json:"total_orders"`
	AvgDistanceKm      *float64 `json:"avg_distance_km"`
	AvgPrepTimeMin     *float64 `json:"avg_prep_time_min"`
	AvgExperienceYrs   *float64 `json:"avg_experience_yrs"`
	AvgDeliveryTimeMin *float64 `json:"avg_delivery_time_min"`
}

type ShareResponse struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type GroupResponse struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Value    float64 `json:"value"`
}

type FactorAveragesResponse struct {
	Factor string          `json:"factor"`
	Groups []GroupResponse `json:"groups"`
}

type BucketResponse struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type HistogramResponse struct {
	Field      string           `json:"field"`
	Computable bool             `json:"computable"`
	Min        *float64         `json:"min"`
	Max        *float64         `json:"max"`
	Buckets    []BucketResponse `json:"buckets"`
}

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TrendResponse struct {
	Slope     float64       `json:"slope"`
	Intercept float64       `json:"intercept"`
	From      PointResponse `json:"from"`
	To        PointResponse `json:"to"`
}

type ScatterResponse struct {
	X      string          `json:"x"`
	Y      string          `json:"y"`
	Points []PointResponse `json:"points"`
	Trend  *TrendResponse  `json:"trend"`
}

type DashboardResponse struct {
	Filters             FiltersResponse          `json:"filters"`
	DatasetRecords      int                      `json:"dataset_records"`
	Metrics             MetricsResponse          `json:"metrics"`
	VehicleDistribution []ShareResponse          `json:"vehicle_distribution"`
	TimeOfDayCounts     []GroupResponse          `json:"time_of_day_counts"`
	TrafficCounts       []GroupResponse          `json:"traffic_counts"`
	WeatherCounts       []GroupResponse          `json:"weather_counts"`
	AvgDeliveryByFactor []FactorAveragesResponse `json:"avg_delivery_by_factor"`
	DeliveryHistogram   HistogramResponse        `json:"delivery_histogram"`
	Scatters            []ScatterResponse        `json:"scatters"`
}

type RangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FilterOptionsResponse struct {
	VehicleTypes  []string      `json:"vehicle_types"`
	TrafficLevels []string      `json:"traffic_levels"`
	Weathers      []string      `json:"weathers"`
	TimesOfDay    []string      `json:"times_of_day"`
	Experience    RangeResponse `json:"courier_experience_yrs"`
}

type GroupAggregateResponse struct {
	Factor      string          `json:"factor"`
	Field       string          `json:"field,omitempty"`
	Aggregation string          `json:"aggregation"`
	Groups      []GroupResponse `json:"groups"`
}
