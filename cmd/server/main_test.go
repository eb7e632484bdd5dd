package main

import (
	"context"
	"errors"
	"testing"

	"flight-time-overlay/internal/domain/entity"
	"flight-time-overlay/internal/infrastructure/config"
	"flight-time-overlay/pkg/logger"
	"flight-time-overlay/pkg/offsettable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOffsetRepo implements OffsetRepository for testing
type memoryOffsetRepo struct {
	rows    []entity.AirportOffset
	listErr error
	seeded  bool
}

func (m *memoryOffsetRepo) ListOffsets(ctx context.Context) ([]entity.AirportOffset, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func (m *memoryOffsetRepo) Seed(ctx context.Context, offsets []entity.AirportOffset) error {
	m.seeded = true
	m.rows = append([]entity.AirportOffset(nil), offsets...)
	return nil
}

func TestEntriesFromRepository_EmptyTableFails(t *testing.T) {
	_, err := entriesFromRepository(context.Background(), &memoryOffsetRepo{}, false, logger.NewNopLogger())
	assert.ErrorIs(t, err, errEmptyOffsetTable)
}

func TestEntriesFromRepository_Seed(t *testing.T) {
	repo := &memoryOffsetRepo{}

	entries, err := entriesFromRepository(context.Background(), repo, true, logger.NewNopLogger())
	require.NoError(t, err)
	assert.True(t, repo.seeded)
	assert.Equal(t, offsettable.DefaultEntries(), entries)
}

func TestEntriesFromRepository_StoredRows(t *testing.T) {
	repo := &memoryOffsetRepo{rows: []entity.AirportOffset{{Code: "MNL", OffsetMinutes: -60}}}

	entries, err := entriesFromRepository(context.Background(), repo, false, logger.NewNopLogger())
	require.NoError(t, err)
	assert.False(t, repo.seeded)
	assert.Len(t, entries, 1)

	repo.listErr = errors.New("connection refused")
	_, err = entriesFromRepository(context.Background(), repo, false, logger.NewNopLogger())
	assert.EqualError(t, err, "connection refused")
}

func TestLoadOffsetEntries_Builtin(t *testing.T) {
	cfg := &config.Config{OffsetSource: config.OffsetSourceBuiltin}

	entries, err := loadOffsetEntries(context.Background(), cfg, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, offsettable.DefaultEntries(), entries)
}
