package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-ReservationService/pkg/types"
)

func TestTimeSlots_FixedGrid(t *testing.T) {
	slots := TimeSlots()

	require.Len(t, slots, 24)
	assert.Equal(t, TimeSlot("17:00-17:10"), slots[0])
	assert.Equal(t, TimeSlot("18:00-18:10"), slots[6])
	assert.Equal(t, TimeSlot("20:50-21:00"), slots[23])
}

func TestTimeSlot_Next(t *testing.T) {
	slots := TimeSlots()

	// Соседний слот = следующий индекс
	for i := 0; i < len(slots)-1; i++ {
		next, ok := slots[i].Next()
		require.True(t, ok)
		assert.Equal(t, slots[i+1], next)
	}

	last := slots[len(slots)-1]
	assert.True(t, last.IsLast())
	_, ok := last.Next()
	assert.False(t, ok)
}

func TestTimeSlot_Start(t *testing.T) {
	assert.Equal(t, types.TimeString("19:30"), TimeSlot("19:30-19:40").Start())
}

func TestFindTimeSlotByStart(t *testing.T) {
	slot, ok := FindTimeSlotByStart("20:50")
	require.True(t, ok)
	assert.Equal(t, TimeSlot("20:50-21:00"), slot)

	_, ok = FindTimeSlotByStart("21:00")
	assert.False(t, ok)
}

func TestParseTimeSlot(t *testing.T) {
	slot, err := ParseTimeSlot("17:10-17:20")
	require.NoError(t, err)
	assert.Equal(t, 1, slot.Index())

	_, err = ParseTimeSlot("16:50-17:00")
	assert.ErrorIs(t, err, ErrUnknownTimeSlot)
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("wed")
	require.NoError(t, err)
	assert.Equal(t, 2, day.Index())

	_, err = ParseWeekday("sun")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}
