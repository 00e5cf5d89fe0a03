package response

import (
	"time"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/service"
)

// Activity is one feed entry. Kind discriminates the two wrapped record
// types; the embedded event carries its computed status for rendering.
type Activity struct {
	ID        uint                    `json:"id"`
	Kind      string                  `json:"kind"` // "event" or "result"
	Event     *Event                  `json:"event,omitempty"`
	Result    *domain.Result          `json:"result,omitempty"`
	Metadata  domain.ActivityMetadata `json:"metadata"`
	Likes     int                     `json:"likes"`
	Comments  int                     `json:"comments"`
	CreatedAt time.Time               `json:"created_at"`
}

type TimelinePage struct {
	Items   []Activity `json:"items"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
	HasMore bool       `json:"has_more"`
}

func NewTimelinePage(page service.TimelinePage, now time.Time) TimelinePage {
	items := make([]Activity, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, newActivity(a, now))
	}

	return TimelinePage{
		Items:   items,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: page.HasMore,
	}
}

func newActivity(a domain.Activity, now time.Time) Activity {
	item := Activity{
		ID:        a.ID,
		Metadata:  a.Metadata,
		Likes:     a.Likes,
		Comments:  a.Comments,
		CreatedAt: a.CreatedAt,
	}

	switch {
	case a.IsEvent():
		item.Kind = "event"
		if a.Event != nil {
			event := NewEvent(*a.Event, now)
			item.Event = &event
		}
	case a.IsResult():
		item.Kind = "result"
		item.Result = a.Result
	}

	return item
}
