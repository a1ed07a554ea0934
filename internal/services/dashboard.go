package services

import (
	"context"
	"fmt"
	"math"

	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
)

// Share is a category count together with its percentage of the subset.
type Share struct {
	Category   string
	Count      int
	Percentage float64
}

// Scatter pairs a numeric field with delivery time, plus its trend line when one can be fit.
type Scatter struct {
	X      domain.NumericField
	Points []Point
	Trend  *Trend
}

type FactorAverages struct {
	Factor domain.Factor
	Groups []GroupValue
}

// Dashboard is everything the dashboard page renders for one filter selection.
type Dashboard struct {
	Records             int
	Subset              []domain.DeliveryRecord
	Metrics             Metrics
	VehicleDistribution []Share
	TimeOfDayCounts     []GroupValue
	TrafficCounts       []GroupValue
	WeatherCounts       []GroupValue
	AvgDeliveryByFactor []FactorAverages
	DeliveryHistogram   Histogram
	Scatters            []Scatter
}

// scatterFields are plotted against delivery time.
var scatterFields = []domain.NumericField{
	domain.FieldCourierExperienceYrs,
	domain.FieldDistanceKm,
	domain.FieldPreparationTimeMin,
}

// BuildDashboard filters records with spec and computes every dashboard panel.
// Presentation order follows the page: vehicle and weather counts and the
// per-factor averages are value-sorted, time of day and traffic keep their fixed order.
func BuildDashboard(
	ctx context.Context,
	records []domain.DeliveryRecord,
	spec domain.FilterSpec,
	bins int,
) (_ *Dashboard, err error) {
	defer obs.Time(ctx, "dashboard.Build")(&err)

	subset := ApplyFilters(records, spec)
	obs.DashboardSubsetSize.Observe(float64(len(subset)))

	d := &Dashboard{
		Records: len(records),
		Subset:  subset,
		Metrics: ComputeMetrics(subset),
	}

	vehicles, err := GroupAggregate(subset, domain.FactorVehicleType, "", AggCount)
	if err != nil {
		return nil, fmt.Errorf("build dashboard: vehicle distribution: %w", err)
	}
	SortByValueDesc(vehicles)
	d.VehicleDistribution = Shares(vehicles)

	if d.TimeOfDayCounts, err = GroupAggregate(subset, domain.FactorTimeOfDay, "", AggCount); err != nil {
		return nil, fmt.Errorf("build dashboard: time of day counts: %w", err)
	}
	if d.TrafficCounts, err = GroupAggregate(subset, domain.FactorTrafficLevel, "", AggCount); err != nil {
		return nil, fmt.Errorf("build dashboard: traffic counts: %w", err)
	}
	if d.WeatherCounts, err = GroupAggregate(subset, domain.FactorWeather, "", AggCount); err != nil {
		return nil, fmt.Errorf("build dashboard: weather counts: %w", err)
	}
	SortByValueDesc(d.WeatherCounts)

	d.AvgDeliveryByFactor = make([]FactorAverages, 0, len(domain.Factors))
	for _, f := range domain.Factors {
		groups, err := GroupAggregate(subset, f, domain.FieldDeliveryTimeMin, AggMean)
		if err != nil {
			return nil, fmt.Errorf("build dashboard: average delivery by %s: %w", f, err)
		}
		SortByValueDesc(groups)
		d.AvgDeliveryByFactor = append(d.AvgDeliveryByFactor, FactorAverages{Factor: f, Groups: groups})
	}

	if d.DeliveryHistogram, err = HistogramBuckets(subset, domain.FieldDeliveryTimeMin, bins); err != nil {
		return nil, fmt.Errorf("build dashboard: delivery histogram: %w", err)
	}

	d.Scatters = make([]Scatter, 0, len(scatterFields))
	for _, x := range scatterFields {
		pts := Points(subset, x, domain.FieldDeliveryTimeMin)
		sc := Scatter{X: x, Points: pts}
		if t, ok := LinearTrend(pts); ok {
			sc.Trend = &t
		}
		d.Scatters = append(d.Scatters, sc)
	}

	return d, nil
}

// Shares converts counts into percentages of their total, rounded to one decimal.
func Shares(counts []GroupValue) []Share {
	total := 0
	for _, g := range counts {
		total += g.Count
	}

	out := make([]Share, 0, len(counts))
	for _, g := range counts {
		s := Share{Category: g.Category, Count: g.Count}
		if total > 0 {
			s.Percentage = math.Round(float64(g.Count)/float64(total)*1000) / 10
		}
		out = append(out, s)
	}
	return out
}
