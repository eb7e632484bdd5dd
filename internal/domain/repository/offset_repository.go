package repository

import (
	"context"

	"flight-time-overlay/internal/domain/entity"
)

// OffsetRepository defines the interface for offset table storage
type OffsetRepository interface {
	// ListOffsets returns every declaration in authoring order
	ListOffsets(ctx context.Context) ([]entity.AirportOffset, error)
	Seed(ctx context.Context, offsets []entity.AirportOffset) error
}
