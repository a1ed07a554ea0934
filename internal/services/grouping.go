package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"delivery-time-service/internal/domain"
)

var ErrUnknownAggregation = errors.New("unknown aggregation")

type AggFunc string

const (
	AggCount AggFunc = "count"
	AggMean  AggFunc = "mean"
)

func ParseAggFunc(s string) (AggFunc, error) {
	switch AggFunc(s) {
	case AggCount, AggMean:
		return AggFunc(s), nil
	}
	return "", fmt.Errorf("parse aggregation %q: %w", s, ErrUnknownAggregation)
}

// One category of a grouped aggregate.
// Value holds the count for AggCount and the field mean for AggMean.
type GroupValue struct {
	Category string
	Count    int
	Value    float64
}

// orderingPolicy maps each factor to its fixed domain order.
// A nil entry means the factor has no fixed order and groups keep first-seen order.
var orderingPolicy = map[domain.Factor][]string{
	domain.FactorTrafficLevel: labels(domain.TrafficLevels),
	domain.FactorTimeOfDay:    labels(domain.TimesOfDay),
	domain.FactorVehicleType:  nil,
	domain.FactorWeather:      nil,
}

func labels[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// FixedOrder returns the fixed domain order for f, if it has one.
func FixedOrder(f domain.Factor) ([]string, bool) {
	order := orderingPolicy[f]
	if order == nil {
		return nil, false
	}
	return slices.Clone(order), true
}

// GroupAggregate groups subset by the categories of factor present in it and
// aggregates field within each group. field is ignored for AggCount.
//
// Absent categories are omitted, not zero-filled. Factors with a fixed domain
// order come back in that order; the others come back in first-seen order and
// the caller decides final presentation order.
func GroupAggregate(
	subset []domain.DeliveryRecord,
	factor domain.Factor,
	field domain.NumericField,
	agg AggFunc,
) ([]GroupValue, error) {
	if !factor.Valid() {
		return nil, fmt.Errorf("group aggregate: factor %q: %w", factor, domain.ErrUnknownField)
	}
	if agg != AggCount && agg != AggMean {
		return nil, fmt.Errorf("group aggregate: %q: %w", agg, ErrUnknownAggregation)
	}
	if agg == AggMean && !field.Valid() {
		return nil, fmt.Errorf("group aggregate: field %q: %w", field, domain.ErrUnknownField)
	}

	type acc struct {
		count int
		sum   float64
	}

	groups := make(map[string]*acc)
	seen := make([]string, 0, 8)
	for _, r := range subset {
		key := factor.Label(r)
		a, ok := groups[key]
		if !ok {
			a = &acc{}
			groups[key] = a
			seen = append(seen, key)
		}
		a.count++
		if agg == AggMean {
			a.sum += field.Value(r)
		}
	}

	out := make([]GroupValue, 0, len(seen))
	for _, key := range orderKeys(factor, seen) {
		a := groups[key]
		gv := GroupValue{Category: key, Count: a.count}
		switch agg {
		case AggCount:
			gv.Value = float64(a.count)
		case AggMean:
			gv.Value = a.sum / float64(a.count)
		}
		out = append(out, gv)
	}

	return out, nil
}

// orderKeys applies the factor's fixed order to the present keys.
// Keys outside the fixed domain keep their first-seen order after the known ones.
func orderKeys(factor domain.Factor, seen []string) []string {
	order, ok := FixedOrder(factor)
	if !ok {
		return seen
	}

	present := make(map[string]bool, len(seen))
	for _, k := range seen {
		present[k] = true
	}

	out := make([]string, 0, len(seen))
	for _, k := range order {
		if present[k] {
			out = append(out, k)
			delete(present, k)
		}
	}
	for _, k := range seen {
		if present[k] {
			out = append(out, k)
		}
	}
	return out
}

// SortByValueDesc orders groups by descending Value, ties by label.
func SortByValueDesc(groups []GroupValue) {
	slices.SortStableFunc(groups, func(a, b GroupValue) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
}

// SortByLabel orders groups by category label.
func SortByLabel(groups []GroupValue) {
	slices.SortStableFunc(groups, func(a, b GroupValue) int {
		return cmp.Compare(a.Category, b.Category)
	})
}
