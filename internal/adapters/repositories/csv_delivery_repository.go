package repositories

import (
	"context"
	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSV-backed implementation of the DeliveryRepository port.
// The file must carry a header row naming every column in domain.Columns;
// extra columns are ignored.
type CSVDeliveryRepository struct {
	Path string
}

func NewCSVDeliveryRepository(path string) *CSVDeliveryRepository {
	return &CSVDeliveryRepository{Path: path}
}

// Return every record in the file.
func (c *CSVDeliveryRepository) LoadDeliveries(ctx context.Context) (_ []domain.DeliveryRecord, err error) {
	defer obs.Time(ctx, "deliveries.csv.Load")(&err)

	if strings.TrimSpace(c.Path) == "" {
		return nil, errors.New("csv delivery repository: path is empty")
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("load deliveries: open %q: %w", c.Path, err)
	}
	defer f.Close()

	records, err := ReadDeliveriesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load deliveries: %q: %w", c.Path, err)
	}
	return records, nil
}

// ReadDeliveriesCSV parses a header-led CSV stream into delivery records.
// The first invalid row aborts the read.
func ReadDeliveriesCSV(r io.Reader) ([]domain.DeliveryRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range domain.Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("read csv header: missing column %q", col)
		}
	}

	records := make([]domain.DeliveryRecord, 0, 1024)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", line, err)
		}

		rec, err := parseRecord(func(col string) string { return row[index[col]] })
		if err != nil {
			return nil, fmt.Errorf("parse csv row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseRecord builds a record from raw column values looked up by header name.
func parseRecord(get func(col string) string) (domain.DeliveryRecord, error) {
	var rec domain.DeliveryRecord
	var err error

	nums := []struct {
		col string
		dst *float64
	}{
		{domain.ColumnDistanceKm, &rec.DistanceKm},
		{domain.ColumnPreparationTimeMin, &rec.PreparationTimeMin},
		{domain.ColumnCourierExperienceYrs, &rec.CourierExperienceYrs},
		{domain.ColumnDeliveryTimeMin, &rec.DeliveryTimeMin},
	}
	for _, n := range nums {
		if *n.dst, err = parseNonNegative(n.col, get(n.col)); err != nil {
			return domain.DeliveryRecord{}, err
		}
	}

	if rec.Weather, err = domain.ParseWeather(get(domain.ColumnWeather)); err != nil {
		return domain.DeliveryRecord{}, err
	}
	if rec.TrafficLevel, err = domain.ParseTrafficLevel(get(domain.ColumnTrafficLevel)); err != nil {
		return domain.DeliveryRecord{}, err
	}
	if rec.TimeOfDay, err = domain.ParseTimeOfDay(get(domain.ColumnTimeOfDay)); err != nil {
		return domain.DeliveryRecord{}, err
	}
	if rec.VehicleType, err = domain.ParseVehicleType(get(domain.ColumnVehicleType)); err != nil {
		return domain.DeliveryRecord{}, err
	}

	return rec, nil
}

func parseNonNegative(col, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("column %s: value %g out of range", col, v)
	}
	return v, nil
}
