package repository

import (
	"context"
	"fmt"
	"time"

	"flight-time-overlay/internal/domain/entity"
	"flight-time-overlay/internal/domain/repository"

	"gorm.io/gorm"
)

// GormOffsetRepository implements the OffsetRepository interface
type GormOffsetRepository struct {
	db *gorm.DB
}

// NewGormOffsetRepository creates a new GORM offset repository
func NewGormOffsetRepository(db *gorm.DB) repository.OffsetRepository {
	return &GormOffsetRepository{
		db: db,
	}
}

// AirportOffsetRow GORM model for database mapping.
// Seq keeps the authoring order so duplicates resolve the same way as the
// built-in table; the code column is deliberately not unique.
type AirportOffsetRow struct {
	ID            uint   `gorm:"primaryKey"`
	Seq           int    `gorm:"column:seq;index"`
	AirportCode   string `gorm:"column:airportcode;size:4;index"`
	OffsetMinutes int    `gorm:"column:offset_minutes"`
	Region        string `gorm:"column:region"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides the default table name
func (AirportOffsetRow) TableName() string {
	return "m_airport_offset"
}

func toEntity(row AirportOffsetRow) entity.AirportOffset {
	return entity.AirportOffset{
		Code:          row.AirportCode,
		OffsetMinutes: row.OffsetMinutes,
		Region:        row.Region,
	}
}

func toRows(offsets []entity.AirportOffset) []AirportOffsetRow {
	rows := make([]AirportOffsetRow, 0, len(offsets))
	for i, o := range offsets {
		rows = append(rows, AirportOffsetRow{
			Seq:           i,
			AirportCode:   o.Code,
			OffsetMinutes: o.OffsetMinutes,
			Region:        o.Region,
		})
	}
	return rows
}

// ListOffsets returns every declaration in authoring order
func (r *GormOffsetRepository) ListOffsets(ctx context.Context) ([]entity.AirportOffset, error) {
	var rows []AirportOffsetRow
	result := r.db.WithContext(ctx).Order("seq ASC").Order("id ASC").Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("list airport offsets: %w", result.Error)
	}

	offsets := make([]entity.AirportOffset, 0, len(rows))
	for _, row := range rows {
		offsets = append(offsets, toEntity(row))
	}
	return offsets, nil
}

// Seed replaces the stored table with the given declarations
func (r *GormOffsetRepository) Seed(ctx context.Context, offsets []entity.AirportOffset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&AirportOffsetRow{}); err != nil {
			return fmt.Errorf("migrate airport offsets: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&AirportOffsetRow{}).Error; err != nil {
			return fmt.Errorf("clear airport offsets: %w", err)
		}
		rows := toRows(offsets)
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("insert airport offsets: %w", err)
		}
		return nil
	})
}
