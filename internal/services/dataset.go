package services

import (
	"context"
	"errors"
	"fmt"

	"delivery-time-service/internal/domain"
	"delivery-time-service/internal/platform/obs"
	"delivery-time-service/internal/ports"
)

// Dataset is the immutable historical dataset shared by every request.
//
// It is built once at startup by LoadDataset and injected into handlers.
// Nothing mutates the records afterwards, so concurrent readers need no locking.
type Dataset struct {
	records []domain.DeliveryRecord
}

// NewDataset wraps records. The caller must not modify them afterwards.
func NewDataset(records []domain.DeliveryRecord) *Dataset {
	return &Dataset{records: records}
}

// LoadDataset reads the full dataset from repo. Any failure is a startup failure.
func LoadDataset(ctx context.Context, repo ports.DeliveryRepository) (_ *Dataset, err error) {
	defer obs.Time(ctx, "dataset.Load")(&err)

	if repo == nil {
		return nil, errors.New("load dataset: repository is nil")
	}

	records, err := repo.LoadDeliveries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	obs.DatasetRecords.Set(float64(len(records)))
	return NewDataset(records), nil
}

// Records returns the shared record slice. It is read-only by contract.
func (d *Dataset) Records() []domain.DeliveryRecord { return d.records }

func (d *Dataset) Len() int { return len(d.records) }
