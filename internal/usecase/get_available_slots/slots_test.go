package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akimv/BarberHub-BookingService/internal/domain"
	"github.com/akimv/BarberHub-BookingService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func TestGenerateTimeSlots_FutureDate(t *testing.T) {
	t.Parallel()

	now := at(2026, 9, 15, 12, 0)

	t.Run("hour-long appointment fills whole grid", func(t *testing.T) {
		slots, err := generateTimeSlots(60, date(2026, 9, 16), now)
		require.NoError(t, err)

		require.Len(t, slots, 12)
		assert.Equal(t, types.TimeString("10:00"), slots[0])
		assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])
	})

	t.Run("long appointment trims late starts", func(t *testing.T) {
		// 70 минут: 21:00 закончился бы в 22:10, позже закрытия
		slots, err := generateTimeSlots(70, date(2026, 9, 16), now)
		require.NoError(t, err)

		require.Len(t, slots, 11)
		assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1])
	})

	t.Run("appointment longer than the day yields no slots", func(t *testing.T) {
		slots, err := generateTimeSlots(13*60, date(2026, 9, 16), now)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestGenerateTimeSlots_Today(t *testing.T) {
	t.Parallel()

	t.Run("lead time filters morning slots", func(t *testing.T) {
		// 13:30 + 40 минут: первый допустимый слот 14:10, на сетке это 15:00
		now := at(2026, 9, 15, 13, 30)
		slots, err := generateTimeSlots(60, date(2026, 9, 15), now)
		require.NoError(t, err)

		require.NotEmpty(t, slots)
		assert.Equal(t, types.TimeString("15:00"), slots[0])
	})

	t.Run("lead boundary slot included", func(t *testing.T) {
		// 13:20 + 40 минут = ровно 14:00
		now := at(2026, 9, 15, 13, 20)
		slots, err := generateTimeSlots(60, date(2026, 9, 15), now)
		require.NoError(t, err)

		require.NotEmpty(t, slots)
		assert.Equal(t, types.TimeString("14:00"), slots[0])
	})

	t.Run("late evening leaves no slots", func(t *testing.T) {
		now := at(2026, 9, 15, 21, 30)
		slots, err := generateTimeSlots(60, date(2026, 9, 15), now)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestGenerateTimeSlots_PastDate(t *testing.T) {
	t.Parallel()

	now := at(2026, 9, 15, 12, 0)
	slots, err := generateTimeSlots(60, date(2026, 9, 14), now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestMarkAvailability(t *testing.T) {
	t.Parallel()

	grid := []types.TimeString{"14:00", "15:00", "16:00"}
	appointments := []*domain.Appointment{
		{ID: "apt-1", StartTime: "14:30", DurationMinutes: 45, Status: domain.StatusActive},
		{ID: "apt-2", StartTime: "16:00", DurationMinutes: 60, Status: domain.StatusCancelledByBarber},
	}

	slots := markAvailability(grid, 60, appointments)
	require.Len(t, slots, 3)

	// 14:00-15:00 пересекается с 14:30-15:15
	assert.False(t, slots[0].Available)
	// 15:00-16:00 пересекается с хвостом 14:30-15:15
	assert.False(t, slots[1].Available)
	// 16:00 занят только отменённой записью
	assert.True(t, slots[2].Available)

	for _, slot := range slots {
		assert.Equal(t, 60, slot.DurationMinutes)
	}
}

func TestHasOverlappingAppointment_BoundariesTouch(t *testing.T) {
	t.Parallel()

	appointments := []*domain.Appointment{
		{ID: "apt-1", StartTime: "15:00", DurationMinutes: 60, Status: domain.StatusActive},
	}

	assert.False(t, hasOverlappingAppointment("14:00", 60, appointments))
	assert.False(t, hasOverlappingAppointment("16:00", 60, appointments))
	assert.True(t, hasOverlappingAppointment("14:30", 60, appointments))
}
