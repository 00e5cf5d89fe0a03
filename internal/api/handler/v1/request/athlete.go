package request

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/athletix/club-api/internal/domain"
)

// DateLayout is the wire format for all submitted dates.
const DateLayout = "02/01/2006"

var phoneExp = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)

// SaveAthleteRequest is the payload for both athlete creation and update.
// The category is absent on purpose: it is derived from the date of birth.
type SaveAthleteRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	DateOfBirth     string `json:"date_of_birth" format:"DD/MM/YYYY"`
	Gender          string `json:"gender"`
	PhoneNumber     string `json:"phone_number"`
	Address         string `json:"address"`
	Bio             string `json:"bio"`
	AvatarURL       string `json:"avatar_url"`
	SubmissionToken string `json:"submission_token"`
}

func (req *SaveAthleteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.DateOfBirth, validation.Required, validation.Date(DateLayout), validation.By(dateInPast)),
		validation.Field(&req.Gender, validation.In("male", "female", "other")),
		validation.Field(&req.PhoneNumber, validation.Match(phoneExp)),
		validation.Field(&req.Bio, validation.Length(0, 2000)),
		validation.Field(&req.AvatarURL, is.URL),
		validation.Field(&req.SubmissionToken, is.UUIDv4),
	)
}

// ToDomain converts the validated payload into a typed record.
// Validate must have passed; the date parse cannot fail after it.
func (req *SaveAthleteRequest) ToDomain() domain.Athlete {
	dateOfBirth, _ := time.Parse(DateLayout, req.DateOfBirth)

	return domain.Athlete{
		Name:        strings.TrimSpace(req.FirstName + " " + req.LastName),
		DateOfBirth: dateOfBirth,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
	}
}

func dateInPast(value interface{}) error {
	s, _ := value.(string)
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil // the Date rule reports the format error
	}

	if parsed.After(time.Now()) {
		return fmt.Errorf("must be in the past")
	}

	return nil
}
