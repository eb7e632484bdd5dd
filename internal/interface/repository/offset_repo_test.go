package repository

import (
	"testing"

	"flight-time-overlay/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRows_KeepsAuthoringOrder(t *testing.T) {
	offsets := []entity.AirportOffset{
		{Code: "VIE", OffsetMinutes: -120, Region: "Southeast Asia"},
		{Code: "NRT", OffsetMinutes: 0, Region: "Japan"},
		{Code: "VIE", OffsetMinutes: -480, Region: "Europe"},
	}

	rows := toRows(offsets)
	require.Len(t, rows, 3)

	for i, row := range rows {
		assert.Equal(t, i, row.Seq)
		assert.Equal(t, offsets[i], toEntity(row))
	}
}

func TestAirportOffsetRow_TableName(t *testing.T) {
	assert.Equal(t, "m_airport_offset", AirportOffsetRow{}.TableName())
}
