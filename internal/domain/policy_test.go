package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	// Среда 15 октября 2025, 10:00
	now := time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC)
	today := DateOnly(now)

	tests := []struct {
		name    string
		target  time.Time
		now     time.Time
		isAdmin bool
		want    bool
	}{
		{
			name:   "today before window opens",
			target: today,
			now:    now,
			want:   true,
		},
		{
			name:   "today one minute before cutoff",
			target: today,
			now:    time.Date(2025, time.October, 15, 16, 59, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "today at cutoff",
			target: today,
			now:    time.Date(2025, time.October, 15, 17, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "today after cutoff",
			target: today,
			now:    time.Date(2025, time.October, 15, 18, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "yesterday is frozen",
			target: today.AddDate(0, 0, -1),
			now:    now,
			want:   false,
		},
		{
			name:   "tomorrow is a blackout day regardless of time",
			target: today.AddDate(0, 0, 1),
			now:    time.Date(2025, time.October, 15, 0, 1, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "two days ahead is open",
			target: today.AddDate(0, 0, 2),
			now:    now,
			want:   true,
		},
		{
			name:   "far future is open",
			target: today.AddDate(0, 0, 30),
			now:    now,
			want:   true,
		},
		{
			name:    "admin bypasses past freeze",
			target:  today.AddDate(0, 0, -3),
			now:     now,
			isAdmin: true,
			want:    true,
		},
		{
			name:    "admin bypasses blackout day",
			target:  today.AddDate(0, 0, 1),
			now:     now,
			isAdmin: true,
			want:    true,
		},
		{
			name:    "admin bypasses same-day cutoff",
			target:  today,
			now:     time.Date(2025, time.October, 15, 20, 0, 0, 0, time.UTC),
			isAdmin: true,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(tt.target, tt.now, tt.isAdmin))
		})
	}
}

func TestCanModify_IgnoresTargetTimeComponent(t *testing.T) {
	now := time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC)
	// Дата с временной составляющей сравнивается только по календарному дню
	target := time.Date(2025, time.October, 17, 23, 59, 0, 0, time.UTC)

	assert.True(t, CanModify(target, now, false))
}
