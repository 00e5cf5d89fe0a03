package domain

import "time"

// ActivityMetadata is the denormalized snapshot captured when the feed entry
// is written, so rendering the feed needs no joins.
type ActivityMetadata struct {
	Title          string     `json:"title,omitempty"`
	Location       string     `json:"location,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	AthleteName    string     `json:"athlete_name,omitempty"`
	DisciplineName string     `json:"discipline_name,omitempty"`
	Score          string     `json:"score,omitempty"`
}

// Activity is a timeline feed entry wrapping either an event announcement or
// a result posting. Exactly one of EventID/ResultID is set. Entries are
// immutable apart from the engagement counters; the feed is always ordered
// by CreatedAt descending.
type Activity struct {
	ID       uint             `json:"id"`
	EventID  *uint            `json:"event_id,omitempty"`
	Event    *Event           `json:"event,omitempty"`
	ResultID *uint            `json:"result_id,omitempty"`
	Result   *Result          `json:"result,omitempty"`
	Metadata ActivityMetadata `json:"metadata"`
	Likes    int              `json:"likes"`
	Comments int              `json:"comments"`

	CreatedAt time.Time `json:"created_at"`
}

// IsEvent reports whether the entry announces an event.
func (a *Activity) IsEvent() bool {
	return a.EventID != nil
}

// IsResult reports whether the entry posts a result.
func (a *Activity) IsResult() bool {
	return a.ResultID != nil
}
