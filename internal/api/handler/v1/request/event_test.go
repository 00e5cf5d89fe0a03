package request

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func validEventRequest() SaveEventRequest {
	return SaveEventRequest{
		Title:     "Spring Open",
		Location:  "Club Stadium",
		StartDate: "15/06/2024",
		EndDate:   "17/06/2024",
		Type:      "COMPETITION",
	}
}

func TestSaveEventRequest_Validate(t *testing.T) {
	req := validEventRequest()
	assert.NoError(t, req.Validate())
}

func TestSaveEventRequest_Validate_EndBeforeStart(t *testing.T) {
	req := validEventRequest()
	req.EndDate = "10/06/2024"

	err := req.Validate()
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs, "end_date")
}

func TestSaveEventRequest_Validate_NoEndDate(t *testing.T) {
	// A single-day event has no end date; that is fine.
	req := validEventRequest()
	req.EndDate = ""

	assert.NoError(t, req.Validate())
}

func TestSaveEventRequest_Validate_LatLngTogether(t *testing.T) {
	req := validEventRequest()
	req.Lat = floatPtr(48.8566)

	err := req.Validate()
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs, "lat")

	req.Lng = floatPtr(2.3522)
	assert.NoError(t, req.Validate())
}

func TestSaveEventRequest_Validate_UnknownType(t *testing.T) {
	req := validEventRequest()
	req.Type = "PARTY"

	err := req.Validate()
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs, "type")
}

func TestSaveEventRequest_ToDomain(t *testing.T) {
	req := validEventRequest()
	req.CategoryIDs = []uint{1, 3}

	event := req.ToDomain()

	assert.Equal(t, "Spring Open", event.Title)
	assert.Equal(t, 2024, event.StartDate.Year())
	require.NotNil(t, event.EndDate)
	assert.Equal(t, 17, event.EndDate.Day())
	require.Len(t, event.Categories, 2)
	assert.Equal(t, uint(1), event.Categories[0].ID)
	assert.Equal(t, uint(3), event.Categories[1].ID)
}

func TestSaveAthleteRequest_ToDomain_JoinsName(t *testing.T) {
	req := SaveAthleteRequest{
		FirstName:   "Ama",
		LastName:    "Mensah",
		DateOfBirth: "01/03/2010",
	}

	athlete := req.ToDomain()

	assert.Equal(t, "Ama Mensah", athlete.Name)
	assert.Equal(t, "Ama", athlete.FirstName())
	assert.Equal(t, "Mensah", athlete.LastName())
}
