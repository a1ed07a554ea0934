package services

import (
	"delivery-time-service/internal/domain"
)

type Point struct {
	X float64
	Y float64
}

// Ordinary least squares line y = Intercept + Slope*x, drawn over [From.X, To.X].
type Trend struct {
	Slope     float64
	Intercept float64
	From      Point
	To        Point
}

// Points returns the (x, y) pairs of two numeric fields over subset.
func Points(subset []domain.DeliveryRecord, x, y domain.NumericField) []Point {
	out := make([]Point, 0, len(subset))
	for _, r := range subset {
		out = append(out, Point{X: x.Value(r), Y: y.Value(r)})
	}
	return out
}

// LinearTrend fits a least squares line through pts.
// It reports false for fewer than two points or when every x is equal.
func LinearTrend(pts []Point) (Trend, bool) {
	if len(pts) < 2 {
		return Trend{}, false
	}

	n := float64(len(pts))
	var sumX, sumY float64
	minX, maxX := pts[0].X, pts[0].X
	for _, p := range pts {
		sumX += p.X
		sumY += p.Y
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for _, p := range pts {
		dx := p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}
	if sxx == 0 {
		return Trend{}, false
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX

	return Trend{
		Slope:     slope,
		Intercept: intercept,
		From:      Point{X: minX, Y: intercept + slope*minX},
		To:        Point{X: maxX, Y: intercept + slope*maxX},
	}, true
}
