package ports

import (
	"context"
	"delivery-time-service/internal/domain"
)

// Port: a boundary for loading the historical delivery dataset.
type DeliveryRepository interface {
	// Return every cleaned delivery record, in source order.
	LoadDeliveries(ctx context.Context) ([]domain.DeliveryRecord, error)
}
