package services

import (
	"math"

	"delivery-time-service/internal/domain"
)

// Summary metrics over a subset.
// Averages are NaN when Count is 0; consumers choose the display fallback.
type Metrics struct {
	Count              int
	AvgDistanceKm      float64
	AvgPrepTimeMin     float64
	AvgExperienceYrs   float64
	AvgDeliveryTimeMin float64
}

func ComputeMetrics(subset []domain.DeliveryRecord) Metrics {
	return Metrics{
		Count:              len(subset),
		AvgDistanceKm:      Mean(subset, domain.FieldDistanceKm),
		AvgPrepTimeMin:     Mean(subset, domain.FieldPreparationTimeMin),
		AvgExperienceYrs:   Mean(subset, domain.FieldCourierExperienceYrs),
		AvgDeliveryTimeMin: Mean(subset, domain.FieldDeliveryTimeMin),
	}
}

// Mean returns the arithmetic mean of field over subset, or NaN when subset is empty.
func Mean(subset []domain.DeliveryRecord, field domain.NumericField) float64 {
	if len(subset) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, r := range subset {
		sum += field.Value(r)
	}
	return sum / float64(len(subset))
}
