package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentWeek_MidWeek(t *testing.T) {
	// Среда 15 октября 2025
	now := time.Date(2025, time.October, 15, 12, 30, 0, 0, time.UTC)

	week := CurrentWeek(now)

	require.Len(t, week, 6)
	assert.Equal(t, date(2025, time.October, 13), week.DateOf(Monday))
	assert.Equal(t, date(2025, time.October, 15), week.DateOf(Wednesday))
	assert.Equal(t, date(2025, time.October, 18), week.DateOf(Saturday))
}

func TestCurrentWeek_Monday(t *testing.T) {
	now := time.Date(2025, time.October, 13, 0, 0, 1, 0, time.UTC)

	week := CurrentWeek(now)

	assert.Equal(t, date(2025, time.October, 13), week.DateOf(Monday))
}

func TestCurrentWeek_SundayAnchorsToUpcomingMonday(t *testing.T) {
	// Воскресенье считается нулевым днем следующей недели:
	// якорный понедельник - завтрашний день, а не прошедший
	now := time.Date(2025, time.October, 19, 9, 0, 0, 0, time.UTC) // воскресенье

	week := CurrentWeek(now)

	assert.Equal(t, date(2025, time.October, 20), week.DateOf(Monday))
	assert.Equal(t, date(2025, time.October, 25), week.DateOf(Saturday))
}

func TestCurrentWeek_PreservesLocation(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	now := time.Date(2025, time.October, 15, 23, 0, 0, 0, loc)

	week := CurrentWeek(now)

	assert.Equal(t, loc, week.DateOf(Monday).Location())
}
