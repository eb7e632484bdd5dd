package repository

import (
	"context"
	"flight-time-overlay/internal/domain/entity"
)

// ConversionRecordRepository defines the interface for conversion audit records
type ConversionRecordRepository interface {
	Save(ctx context.Context, record *entity.ConversionRecord) error
	FindByRouteKey(ctx context.Context, routeKey string, limit int64) ([]*entity.ConversionRecord, error)
}
