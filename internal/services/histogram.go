package services

import (
	"errors"
	"fmt"

	"delivery-time-service/internal/domain"
)

// DefaultBucketCount matches the dashboard's delivery-time histogram.
const DefaultBucketCount = 30

// degenerateWidth is the width of the single bucket used when min == max.
const degenerateWidth = 1.0

var ErrInvalidBucketCount = errors.New("bucket count must be positive")

// Bucket is the half-open interval [Lower, Upper); the last bucket of a
// histogram is closed on both ends.
type Bucket struct {
	Lower float64
	Upper float64
	Count int
}

// Histogram of one numeric field over a subset.
// Computable is false for an empty subset, in which case Buckets is empty.
type Histogram struct {
	Field      domain.NumericField
	Min        float64
	Max        float64
	Computable bool
	Buckets    []Bucket
}

// HistogramBuckets partitions [min(field), max(field)] into bucketCount
// equal-width buckets and counts the records in each.
//
// An empty subset yields Computable=false. When every value is equal, or the
// range is too narrow to split, the result is a single bucket of width 1
// centered on the minimum holding every record.
func HistogramBuckets(subset []domain.DeliveryRecord, field domain.NumericField, bucketCount int) (Histogram, error) {
	if !field.Valid() {
		return Histogram{}, fmt.Errorf("histogram buckets: field %q: %w", field, domain.ErrUnknownField)
	}
	if bucketCount < 1 {
		return Histogram{}, fmt.Errorf("histogram buckets: %d: %w", bucketCount, ErrInvalidBucketCount)
	}

	h := Histogram{Field: field, Buckets: []Bucket{}}
	if len(subset) == 0 {
		return h, nil
	}

	lo, hi := field.Value(subset[0]), field.Value(subset[0])
	for _, r := range subset[1:] {
		v := field.Value(r)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	h.Min, h.Max, h.Computable = lo, hi, true

	// A width that underflows (subnormal range) cannot separate values either.
	width := (hi - lo) / float64(bucketCount)
	if lo == hi || width == 0 || lo+width == lo {
		h.Buckets = []Bucket{{
			Lower: lo - degenerateWidth/2,
			Upper: lo + degenerateWidth/2,
			Count: len(subset),
		}}
		return h, nil
	}

	// Edges are computed once so adjacent buckets share the exact same bound.
	edges := make([]float64, bucketCount+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bucketCount] = hi

	h.Buckets = make([]Bucket, bucketCount)
	for i := range h.Buckets {
		h.Buckets[i] = Bucket{Lower: edges[i], Upper: edges[i+1]}
	}

	for _, r := range subset {
		h.Buckets[bucketIndex(field.Value(r), lo, width, edges)].Count++
	}

	return h, nil
}

func bucketIndex(v, lo, width float64, edges []float64) int {
	n := len(edges) - 1
	idx := int((v - lo) / width)
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	// Correct for rounding at bucket edges.
	for idx > 0 && v < edges[idx] {
		idx--
	}
	for idx < n-1 && v >= edges[idx+1] {
		idx++
	}
	return idx
}
