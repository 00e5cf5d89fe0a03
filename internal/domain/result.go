package domain

import "time"

// Result records one athlete's performance in one discipline at one event.
// Score stays free text so times, distances and points all fit.
type Result struct {
	ID           uint        `json:"id"`
	AthleteID    uint        `json:"athlete_id"`
	Athlete      *Athlete    `json:"athlete,omitempty"`
	EventID      uint        `json:"event_id"`
	Event        *Event      `json:"event,omitempty"`
	DisciplineID uint        `json:"discipline_id"`
	Discipline   *Discipline `json:"discipline,omitempty"`
	Score        string      `json:"score"`
	Position     *int        `json:"position,omitempty"`
	Notes        string      `json:"notes"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
