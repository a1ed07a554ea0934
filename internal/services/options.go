package services

import (
	"math"
	"slices"

	"delivery-time-service/internal/domain"
)

// Selectable values for each dashboard filter.
// Category lists are the distinct labels present in the data, sorted lexically.
type FilterOptionSet struct {
	VehicleTypes  []string
	TrafficLevels []string
	Weathers      []string
	TimesOfDay    []string
	Experience    domain.Range
}

// FilterOptions derives the filter choices from records.
// The experience range spans floor(min) to ceil(max), or [0, 0] when records is empty.
func FilterOptions(records []domain.DeliveryRecord) FilterOptionSet {
	opts := FilterOptionSet{
		VehicleTypes:  distinct(records, domain.FactorVehicleType),
		TrafficLevels: distinct(records, domain.FactorTrafficLevel),
		Weathers:      distinct(records, domain.FactorWeather),
		TimesOfDay:    distinct(records, domain.FactorTimeOfDay),
	}

	if len(records) == 0 {
		return opts
	}

	lo, hi := records[0].CourierExperienceYrs, records[0].CourierExperienceYrs
	for _, r := range records[1:] {
		lo = math.Min(lo, r.CourierExperienceYrs)
		hi = math.Max(hi, r.CourierExperienceYrs)
	}
	opts.Experience = domain.Range{Min: math.Floor(lo), Max: math.Ceil(hi)}

	return opts
}

func distinct(records []domain.DeliveryRecord, f domain.Factor) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 5)
	for _, r := range records {
		l := f.Label(r)
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}
