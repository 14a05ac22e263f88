package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotGrid_Dense(t *testing.T) {
	grid := NewSlotGrid()

	require.NoError(t, grid.Validate())
	require.Len(t, grid, 6)
	for _, day := range Weekdays() {
		require.Len(t, grid[day], 24)
		for _, slot := range TimeSlots() {
			rec := grid.At(day, slot)
			assert.True(t, rec.IsEmpty())
			assert.Equal(t, ServiceNone, rec.Service)
		}
	}
}

func TestSlotGrid_ReserveMakeup(t *testing.T) {
	grid := NewSlotGrid()

	next, err := grid.Reserve(Monday, "18:00-18:10", "Aoi", ServiceMakeup, "")
	require.NoError(t, err)

	assert.Equal(t, Reservation{Name: "Aoi", Service: ServiceMakeup}, next.At(Monday, "18:00-18:10"))
	// Соседний слот не затронут
	assert.True(t, next.At(Monday, "18:10-18:20").IsEmpty())
	// Исходная сетка не изменилась
	assert.True(t, grid.At(Monday, "18:00-18:10").IsEmpty())
	require.NoError(t, next.Validate())
}

func TestSlotGrid_ReserveStyling_TakesTwoSlots(t *testing.T) {
	grid := NewSlotGrid()

	next, err := grid.Reserve(Friday, "19:00-19:10", "Sato", ServiceStyling, "group-1")
	require.NoError(t, err)

	first := next.At(Friday, "19:00-19:10")
	second := next.At(Friday, "19:10-19:20")
	assert.Equal(t, first, second)
	assert.Equal(t, "Sato", first.Name)
	assert.Equal(t, ServiceStyling, first.Service)
	assert.Equal(t, "group-1", first.GroupID)
}

func TestSlotGrid_ReserveStyling_LastSlot(t *testing.T) {
	grid := NewSlotGrid()

	_, err := grid.Reserve(Monday, "20:50-21:00", "Rin", ServiceStyling, "group-1")

	assert.ErrorIs(t, err, ErrNoConsecutiveSlot)
	// Сетка не изменилась
	assert.True(t, grid.At(Monday, "20:50-21:00").IsEmpty())
}

func TestSlotGrid_ReserveOccupied(t *testing.T) {
	grid := NewSlotGrid()
	grid, err := grid.Reserve(Tuesday, "17:30-17:40", "Mika", ServiceMakeup, "")
	require.NoError(t, err)

	_, err = grid.Reserve(Tuesday, "17:30-17:40", "Aoi", ServiceMakeup, "")
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// Парная услуга отклоняется, если занят следующий слот
	_, err = grid.Reserve(Tuesday, "17:20-17:30", "Aoi", ServiceStyling, "group-1")
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

func TestSlotGrid_ReserveEmptyName(t *testing.T) {
	grid := NewSlotGrid()

	_, err := grid.Reserve(Monday, "17:00-17:10", "", ServiceMakeup, "")

	assert.ErrorIs(t, err, ErrInvalidReservation)
}

func TestSlotGrid_CancelMakeup(t *testing.T) {
	grid := NewSlotGrid()
	grid, err := grid.Reserve(Monday, "18:00-18:10", "Aoi", ServiceMakeup, "")
	require.NoError(t, err)

	next, cancelled, err := grid.Cancel(Monday, "18:00-18:10")
	require.NoError(t, err)

	assert.Equal(t, "Aoi", cancelled.Name)
	assert.True(t, next.At(Monday, "18:00-18:10").IsEmpty())
	require.NoError(t, next.Validate())
}

func TestSlotGrid_CancelStyling_FreesBothSlots(t *testing.T) {
	grid := NewSlotGrid()
	grid, err := grid.Reserve(Friday, "19:00-19:10", "Sato", ServiceStyling, "group-1")
	require.NoError(t, err)

	next, cancelled, err := grid.Cancel(Friday, "19:00-19:10")
	require.NoError(t, err)

	assert.Equal(t, ServiceStyling, cancelled.Service)
	assert.True(t, next.At(Friday, "19:00-19:10").IsEmpty())
	assert.True(t, next.At(Friday, "19:10-19:20").IsEmpty())
}

func TestSlotGrid_CancelStyling_DoesNotTouchForeignPair(t *testing.T) {
	// Две смежные парные брони одного и того же клиента:
	// отмена первой не должна задеть вторую - пары связаны groupID, а не именем
	grid := NewSlotGrid()
	grid, err := grid.Reserve(Monday, "17:00-17:10", "Sato", ServiceStyling, "group-1")
	require.NoError(t, err)
	grid, err = grid.Reserve(Monday, "17:20-17:30", "Sato", ServiceStyling, "group-2")
	require.NoError(t, err)

	// Отмена по второму слоту первой пары: следующий слот занят чужой парой
	next, _, err := grid.Cancel(Monday, "17:10-17:20")
	require.NoError(t, err)

	assert.True(t, next.At(Monday, "17:10-17:20").IsEmpty())
	// Первый слот второй пары остался занят
	assert.Equal(t, "group-2", next.At(Monday, "17:20-17:30").GroupID)
	assert.Equal(t, "group-2", next.At(Monday, "17:30-17:40").GroupID)
}

func TestSlotGrid_CancelStyling_LegacyNameFallback(t *testing.T) {
	// Записи, сохраненные до появления groupID, связываются по имени клиента
	grid := NewSlotGrid()
	legacy := Reservation{Name: "Sato", Service: ServiceStyling}
	grid[Friday]["19:00-19:10"] = legacy
	grid[Friday]["19:10-19:20"] = legacy

	next, _, err := grid.Cancel(Friday, "19:00-19:10")
	require.NoError(t, err)

	assert.True(t, next.At(Friday, "19:00-19:10").IsEmpty())
	assert.True(t, next.At(Friday, "19:10-19:20").IsEmpty())
}

func TestSlotGrid_CancelEmptySlot(t *testing.T) {
	grid := NewSlotGrid()

	_, _, err := grid.Cancel(Monday, "17:00-17:10")

	assert.ErrorIs(t, err, ErrEmptySlot)
	// Повторная отмена также возвращает ErrEmptySlot и не меняет сетку
	_, _, err = grid.Cancel(Monday, "17:00-17:10")
	assert.ErrorIs(t, err, ErrEmptySlot)
	require.NoError(t, grid.Validate())
}

func TestSlotGrid_CancelKeepsGridDense(t *testing.T) {
	grid := NewSlotGrid()
	grid, err := grid.Reserve(Saturday, "20:00-20:10", "Yui", ServiceMakeup, "")
	require.NoError(t, err)

	next, _, err := grid.Cancel(Saturday, "20:00-20:10")
	require.NoError(t, err)

	// Ключ не удален, значение сброшено
	rec, ok := next[Saturday]["20:00-20:10"]
	require.True(t, ok)
	assert.True(t, rec.IsEmpty())
	require.NoError(t, next.Validate())
}

func TestSlotGrid_Validate(t *testing.T) {
	grid := NewSlotGrid()
	require.NoError(t, grid.Validate())

	t.Run("missing slot", func(t *testing.T) {
		broken := grid.Clone()
		delete(broken[Monday], "17:00-17:10")
		assert.ErrorIs(t, broken.Validate(), ErrSparseGrid)
	})

	t.Run("missing weekday", func(t *testing.T) {
		broken := grid.Clone()
		delete(broken, Saturday)
		assert.ErrorIs(t, broken.Validate(), ErrSparseGrid)
	})

	t.Run("record invariant", func(t *testing.T) {
		broken := grid.Clone()
		broken[Monday]["17:00-17:10"] = Reservation{Name: "Aoi", Service: ServiceNone}
		assert.ErrorIs(t, broken.Validate(), ErrInvalidReservation)
	})
}

func TestSlotGrid_JSONShape(t *testing.T) {
	grid := NewSlotGrid()
	grid, err := grid.Reserve(Monday, "18:00-18:10", "Aoi", ServiceMakeup, "")
	require.NoError(t, err)

	data, err := json.Marshal(grid)
	require.NoError(t, err)

	var decoded SlotGrid
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NoError(t, decoded.Validate())
	assert.Equal(t, grid.At(Monday, "18:00-18:10"), decoded.At(Monday, "18:00-18:10"))
}
