package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveEventStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	day := func(d int) time.Time {
		return time.Date(2024, 6, d, 12, 0, 0, 0, time.UTC)
	}
	dayPtr := func(d int) *time.Time {
		v := day(d)
		return &v
	}

	tests := []struct {
		name      string
		startDate time.Time
		endDate   *time.Time
		want      EventStatus
	}{
		{
			name:      "starts in the future",
			startDate: day(20),
			endDate:   dayPtr(22),
			want:      EventStatusUpcoming,
		},
		{
			name:      "ended in the past",
			startDate: day(1),
			endDate:   dayPtr(3),
			want:      EventStatusCompleted,
		},
		{
			name:      "currently running",
			startDate: day(14),
			endDate:   dayPtr(16),
			want:      EventStatusOngoing,
		},
		{
			name:      "no end date, started in the past",
			startDate: day(10),
			endDate:   nil,
			want:      EventStatusCompleted,
		},
		{
			name:      "no end date, starts in the future",
			startDate: day(20),
			endDate:   nil,
			want:      EventStatusUpcoming,
		},
		{
			name:      "no end date, starting right now",
			startDate: now,
			endDate:   nil,
			want:      EventStatusOngoing,
		},
		{
			name:      "ends exactly now",
			startDate: day(14),
			endDate:   &now,
			want:      EventStatusOngoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveEventStatus(tt.startDate, tt.endDate, now)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEventStatus_NeverCancelled(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// Sweep a window of start dates around now; cancellation has no
	// time-based trigger and must never come out of the resolver.
	for d := -30; d <= 30; d++ {
		start := now.AddDate(0, 0, d)
		end := start.AddDate(0, 0, 2)

		assert.NotEqual(t, EventStatusCancelled, ResolveEventStatus(start, &end, now))
		assert.NotEqual(t, EventStatusCancelled, ResolveEventStatus(start, nil, now))
	}
}

func TestEvent_DisplayEndDate(t *testing.T) {
	start := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 17, 18, 0, 0, 0, time.UTC)

	withEnd := Event{StartDate: start, EndDate: &end}
	assert.Equal(t, end, withEnd.DisplayEndDate())

	withoutEnd := Event{StartDate: start}
	assert.Equal(t, start, withoutEnd.DisplayEndDate())
}
