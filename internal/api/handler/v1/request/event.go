package request

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/athletix/club-api/internal/domain"
)

// SaveEventRequest is the payload for event creation and update. An empty
// category_ids set means the event applies to every category.
type SaveEventRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
	StartDate       string   `json:"start_date" format:"DD/MM/YYYY"`
	EndDate         string   `json:"end_date,omitempty" format:"DD/MM/YYYY"`
	Type            string   `json:"type"`
	CategoryIDs     []uint   `json:"category_ids"`
	SubmissionToken string   `json:"submission_token"`
}

func (req *SaveEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.StartDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&req.EndDate, validation.Date(DateLayout)),
		validation.Field(&req.Type, validation.Required, validation.In(
			string(domain.EventTypeCompetition),
			string(domain.EventTypeTraining),
			string(domain.EventTypeCamp),
			string(domain.EventTypeMeeting),
			string(domain.EventTypeOther),
		)),
		validation.Field(&req.SubmissionToken, is.UUIDv4),
	)
	if err != nil {
		return err
	}

	if req.EndDate != "" {
		start, _ := time.Parse(DateLayout, req.StartDate)
		end, _ := time.Parse(DateLayout, req.EndDate)
		if end.Before(start) {
			return validation.Errors{"end_date": fmt.Errorf("must not be before start_date")}
		}
	}

	if (req.Lat == nil) != (req.Lng == nil) {
		return validation.Errors{"lat": fmt.Errorf("lat and lng must be provided together")}
	}

	return nil
}

func (req *SaveEventRequest) ToDomain() domain.Event {
	startDate, _ := time.Parse(DateLayout, req.StartDate)

	event := domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Lat:         req.Lat,
		Lng:         req.Lng,
		StartDate:   startDate,
		Type:        domain.EventType(req.Type),
	}

	if req.EndDate != "" {
		endDate, _ := time.Parse(DateLayout, req.EndDate)
		event.EndDate = &endDate
	}

	for _, id := range req.CategoryIDs {
		event.Categories = append(event.Categories, domain.Category{ID: id})
	}

	return event
}
