package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSeedActiveRooms(t *testing.T) {
	m := NewMetrics("test")
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ActiveRooms))

	m.SeedActiveRooms(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(m.ActiveRooms))

	m.ActiveRooms.Inc()
	assert.Equal(t, float64(8), testutil.ToFloat64(m.ActiveRooms))
}

func TestCountersStartAtZero(t *testing.T) {
	m := NewMetrics("test")
	assert.Equal(t, float64(0), testutil.ToFloat64(m.RoomsCreated))

	m.RoomsCreated.Inc()
	m.RoomJoins.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RoomsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RoomJoins))
}
