package domain

import "time"

type EventType string

const (
	EventTypeCompetition EventType = "COMPETITION"
	EventTypeTraining    EventType = "TRAINING"
	EventTypeCamp        EventType = "CAMP"
	EventTypeMeeting     EventType = "MEETING"
	EventTypeOther       EventType = "OTHER"
)

// EventStatus is derived from the event's time window, never persisted.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	// EventStatusCancelled is part of the taxonomy for display purposes,
	// but no cancellation mechanism exists yet. ResolveEventStatus never
	// returns it; adding one requires a persisted status override on Event.
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Lat         *float64   `json:"lat,omitempty"`
	Lng         *float64   `json:"lng,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Type        EventType  `json:"type"`
	OrganizerID uint       `json:"organizer_id"`
	Organizer   string     `json:"organizer"`
	Categories  []Category `json:"categories,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ResolveEventStatus derives the lifecycle status of an event from its time
// window. A nil endDate means the event ends the day it starts.
func ResolveEventStatus(startDate time.Time, endDate *time.Time, now time.Time) EventStatus {
	end := startDate
	if endDate != nil {
		end = *endDate
	}

	if end.Before(now) {
		return EventStatusCompleted
	}
	if startDate.After(now) {
		return EventStatusUpcoming
	}

	return EventStatusOngoing
}

// Status is a convenience wrapper over ResolveEventStatus.
func (e *Event) Status(now time.Time) EventStatus {
	return ResolveEventStatus(e.StartDate, e.EndDate, now)
}

// DisplayEndDate defaults a missing end date to the start date.
func (e *Event) DisplayEndDate() time.Time {
	if e.EndDate != nil {
		return *e.EndDate
	}
	return e.StartDate
}
