package repositories

import (
	"context"
	"database/sql"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/db"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the deliveries schema. The DDL is valid for both SQLite and Postgres.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		delivery_id INTEGER PRIMARY KEY,
		distance_km DOUBLE PRECISION NOT NULL,
		weather TEXT NOT NULL,
		traffic_level TEXT NOT NULL,
		time_of_day TEXT NOT NULL,
		vehicle_type TEXT NOT NULL,
		preparation_time_min DOUBLE PRECISION NOT NULL,
		courier_experience_yrs DOUBLE PRECISION NOT NULL,
		delivery_time_min DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_deliveries_vehicle_traffic
	ON deliveries(vehicle_type, traffic_level);
	`

	statements := []string{
		createDeliveriesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the deliveries table content with the rows of a CSV file.
func SeedFromCSV(ctx context.Context, conn *sql.DB, dialect db.Dialect, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("seed deliveries: open %q: %w", csvPath, err)
	}
	defer f.Close()

	records, err := ReadDeliveriesCSV(f)
	if err != nil {
		return 0, fmt.Errorf("seed deliveries: %q: %w", csvPath, err)
	}

	if err := SeedDeliveries(ctx, conn, dialect, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Replace the deliveries table content with records in a single transaction.
func SeedDeliveries(ctx context.Context, conn *sql.DB, dialect db.Dialect, records []domain.DeliveryRecord) error {
	if conn == nil {
		return errors.New("seed deliveries: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed deliveries: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM deliveries;`); err != nil {
		return fmt.Errorf("seed deliveries: clear table: %w", err)
	}

	marks := make([]string, 9)
	for i := range marks {
		marks[i] = dialect.Placeholder(i + 1)
	}
	query := `
	INSERT INTO deliveries (
		delivery_id,
		distance_km,
		weather,
		traffic_level,
		time_of_day,
		vehicle_type,
		preparation_time_min,
		courier_experience_yrs,
		delivery_time_min
	)
	VALUES (` + strings.Join(marks, ", ") + `);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed deliveries: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx,
			i+1,
			r.DistanceKm,
			string(r.Weather),
			string(r.TrafficLevel),
			string(r.TimeOfDay),
			string(r.VehicleType),
			r.PreparationTimeMin,
			r.CourierExperienceYrs,
			r.DeliveryTimeMin,
		); err != nil {
			return fmt.Errorf("seed deliveries: insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed deliveries: commit tx: %w", err)
	}

	return nil
}
