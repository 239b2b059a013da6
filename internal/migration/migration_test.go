package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avstrong/hotelbooking/internal/logger"
	"github.com/avstrong/hotelbooking/internal/reservation"
)

type fakeRegistry struct {
	hotels []*reservation.Hotel
}

func (f *fakeRegistry) AddHotel(hotel *reservation.Hotel) {
	f.hotels = append(f.hotels, hotel)
}

func TestUp(t *testing.T) {
	r := &fakeRegistry{}

	Up(logger.New(zap.NewNop()), r)

	require.Len(t, r.hotels, 1)

	hotel := r.hotels[0]
	assert.Equal(t, "Sunshine Hotel", hotel.Name())
	assert.Equal(t, "123 Sunny Street", hotel.Address())

	rooms := hotel.Rooms()
	require.Len(t, rooms, 2)
	assert.Equal(t, 101, rooms[0].Number)
	assert.Equal(t, "Single", rooms[0].Type)
	assert.InDelta(t, 50.0, rooms[0].PricePerNight, 0.001)
	assert.Equal(t, 102, rooms[1].Number)
	assert.Equal(t, "Double", rooms[1].Type)
	assert.InDelta(t, 100.0, rooms[1].PricePerNight, 0.001)
	assert.True(t, rooms[0].IsAvailable())
	assert.True(t, rooms[1].IsAvailable())
}
