package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/athletix/club-api/internal/domain"
)

// SaveResultRequest records one athlete's performance in one discipline at
// one event. Score stays free text: "10.85", "1:59.43", "7.12m", "8045".
type SaveResultRequest struct {
	AthleteID       uint   `json:"athlete_id"`
	EventID         uint   `json:"event_id"`
	DisciplineID    uint   `json:"discipline_id"`
	Score           string `json:"score"`
	Position        *int   `json:"position"`
	Notes           string `json:"notes"`
	SubmissionToken string `json:"submission_token"`
}

func (req *SaveResultRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AthleteID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.DisciplineID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Score, validation.Required, validation.Length(1, 30)),
		validation.Field(&req.Position, validation.Min(1)),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
		validation.Field(&req.SubmissionToken, is.UUIDv4),
	)
}

func (req *SaveResultRequest) ToDomain() domain.Result {
	return domain.Result{
		AthleteID:    req.AthleteID,
		EventID:      req.EventID,
		DisciplineID: req.DisciplineID,
		Score:        req.Score,
		Position:     req.Position,
		Notes:        req.Notes,
	}
}
