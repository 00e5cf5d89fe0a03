package response

import (
	"time"

	"github.com/athletix/club-api/internal/domain"
)

// Event decorates the domain event with its derived lifecycle status and a
// display end date defaulted to the start date.
type Event struct {
	domain.Event
	EndDate time.Time          `json:"end_date"`
	Status  domain.EventStatus `json:"status"`
}

func NewEvent(event domain.Event, now time.Time) Event {
	return Event{
		Event:   event,
		EndDate: event.DisplayEndDate(),
		Status:  event.Status(now),
	}
}

func NewEvents(events []domain.Event, now time.Time) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, NewEvent(e, now))
	}

	return out
}
