package response

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/athletix/club-api/internal/domain"
)

func TestNewEvent(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)

	// Single-day event: the display end date falls back to the start date.
	rendered := NewEvent(domain.Event{Title: "Spring Open", StartDate: start}, now)

	assert.Equal(t, start, rendered.EndDate)
	assert.Equal(t, domain.EventStatusUpcoming, rendered.Status)

	end := start.AddDate(0, 0, 2)
	rendered = NewEvent(domain.Event{Title: "Spring Open", StartDate: start, EndDate: &end}, now)

	assert.Equal(t, end, rendered.EndDate)
}

func TestNewEvents_StatusPerEvent(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	past := domain.Event{StartDate: now.AddDate(0, 0, -10)}
	running := domain.Event{StartDate: now.AddDate(0, 0, -1)}
	runningEnd := now.AddDate(0, 0, 1)
	running.EndDate = &runningEnd
	future := domain.Event{StartDate: now.AddDate(0, 0, 10)}

	rendered := NewEvents([]domain.Event{past, running, future}, now)

	assert.Equal(t, domain.EventStatusCompleted, rendered[0].Status)
	assert.Equal(t, domain.EventStatusOngoing, rendered[1].Status)
	assert.Equal(t, domain.EventStatusUpcoming, rendered[2].Status)
}
