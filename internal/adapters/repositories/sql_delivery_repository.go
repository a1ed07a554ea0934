package repositories

import (
	"context"
	"database/sql"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"errors"
	"fmt"
)

// SQL-backed implementation of the DeliveryRepository port (SQLite or Postgres).
type SQLDeliveryRepository struct{ DB *sql.DB }

func NewSQLDeliveryRepository(db *sql.DB) *SQLDeliveryRepository {
	return &SQLDeliveryRepository{DB: db}
}

// Return all deliveries stored in the database, in insertion order.
func (s *SQLDeliveryRepository) LoadDeliveries(ctx context.Context) (_ []domain.DeliveryRecord, err error) {
	defer obs.Time(ctx, "deliveries.sql.Load")(&err)

	if s.DB == nil {
		return nil, errors.New("sql delivery repository: DB is nil")
	}

	query := `
	SELECT
		distance_km,
		weather,
		traffic_level,
		time_of_day,
		vehicle_type,
		preparation_time_min,
		courier_experience_yrs,
		delivery_time_min
	FROM deliveries
	ORDER BY delivery_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load deliveries: query deliveries table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.DeliveryRecord, 0, 1024)
	for n := 1; rows.Next(); n++ {
		var r domain.DeliveryRecord
		var weather, traffic, timeOfDay, vehicle string
		if err := rows.Scan(
			&r.DistanceKm,
			&weather,
			&traffic,
			&timeOfDay,
			&vehicle,
			&r.PreparationTimeMin,
			&r.CourierExperienceYrs,
			&r.DeliveryTimeMin,
		); err != nil {
			return nil, fmt.Errorf("load deliveries: scan row %d: %w", n, err)
		}

		if r.Weather, err = domain.ParseWeather(weather); err != nil {
			return nil, fmt.Errorf("load deliveries: row %d: %w", n, err)
		}
		if r.TrafficLevel, err = domain.ParseTrafficLevel(traffic); err != nil {
			return nil, fmt.Errorf("load deliveries: row %d: %w", n, err)
		}
		if r.TimeOfDay, err = domain.ParseTimeOfDay(timeOfDay); err != nil {
			return nil, fmt.Errorf("load deliveries: row %d: %w", n, err)
		}
		if r.VehicleType, err = domain.ParseVehicleType(vehicle); err != nil {
			return nil, fmt.Errorf("load deliveries: row %d: %w", n, err)
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load deliveries: row iteration: %w", err)
	}

	return records, nil
}
