package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athletix/club-api/internal/api/handler/v1/response"
	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/service"
)

// fakeNow pins the fixture clock so age derivation cannot drift across
// year boundaries.
var fakeNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

type fakeAthleteService struct {
	athletes   map[uint]domain.Athlete
	seenTokens map[string]bool
	nextID     uint
}

func newFakeAthleteService() *fakeAthleteService {
	return &fakeAthleteService{
		athletes:   make(map[uint]domain.Athlete),
		seenTokens: make(map[string]bool),
		nextID:     1,
	}
}

func (f *fakeAthleteService) CreateAthlete(_ context.Context, athlete domain.Athlete, token string) (domain.Athlete, error) {
	if token != "" {
		if f.seenTokens[token] {
			return domain.Athlete{}, service.ErrDuplicateSubmission
		}
		f.seenTokens[token] = true
	}

	athlete.ID = f.nextID
	f.nextID++

	// Mimic the derivation the real service performs: anyone ten or older
	// in this fixture lands in a single wide band.
	if domain.AgeOn(athlete.DateOfBirth, fakeNow) >= 10 {
		id := uint(1)
		athlete.CategoryID = &id
	}

	f.athletes[athlete.ID] = athlete

	return athlete, nil
}

func (f *fakeAthleteService) UpdateAthlete(_ context.Context, athlete domain.Athlete) (domain.Athlete, error) {
	if _, ok := f.athletes[athlete.ID]; !ok {
		return domain.Athlete{}, service.ErrAthleteNotFound
	}
	f.athletes[athlete.ID] = athlete

	return athlete, nil
}

func (f *fakeAthleteService) GetAthlete(_ context.Context, id uint) (domain.Athlete, error) {
	athlete, ok := f.athletes[id]
	if !ok {
		return domain.Athlete{}, service.ErrAthleteNotFound
	}

	return athlete, nil
}

func (f *fakeAthleteService) ListAthletes(_ context.Context) ([]domain.Athlete, error) {
	all := make([]domain.Athlete, 0, len(f.athletes))
	for _, athlete := range f.athletes {
		all = append(all, athlete)
	}

	return all, nil
}

func newAthleteTestRouter(svc AthleteService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAthleteHandler(svc)

	router := gin.New()
	router.GET("/athletes/:athleteID", handler.HandleGetAthlete)
	router.POST("/athletes", handler.HandleCreateAthlete)
	router.PUT("/athletes/:athleteID", handler.HandleUpdateAthlete)

	return router
}

func TestHandleCreateAthlete(t *testing.T) {
	router := newAthleteTestRouter(newFakeAthleteService())

	body := map[string]string{
		"first_name":    "Ama",
		"last_name":     "Mensah",
		"date_of_birth": "01/03/2010",
		"gender":        "female",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/athletes", bytes.NewReader(payload))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp response.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, response.SubmissionStatusSuccess, resp.Status)
	assert.Equal(t, "athlete created", resp.Message)

	created, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ama Mensah", created["name"])
	assert.NotNil(t, created["category_id"])
}

func TestHandleCreateAthlete_DuplicateSubmission(t *testing.T) {
	svc := newFakeAthleteService()
	router := newAthleteTestRouter(svc)

	body := map[string]string{
		"first_name":       "Ama",
		"last_name":        "Mensah",
		"date_of_birth":    "01/03/2010",
		"submission_token": "d3b07384-d9a7-4f1a-8f3e-2b6a1c9d4e5f",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/athletes", bytes.NewReader(payload))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// A double click replays the same token: success-shaped answer, no
	// second athlete.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/athletes", bytes.NewReader(payload))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, response.SubmissionStatusSuccess, resp.Status)
	assert.Equal(t, "athlete already created", resp.Message)

	assert.Len(t, svc.athletes, 1)
}

func TestHandleCreateAthlete_ValidationFailure(t *testing.T) {
	router := newAthleteTestRouter(newFakeAthleteService())

	// Missing first_name and a future date of birth.
	body := map[string]string{
		"last_name":     "Mensah",
		"date_of_birth": "01/03/2090",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/athletes", bytes.NewReader(payload))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp response.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, response.SubmissionStatusValidation, resp.Status)
	assert.Contains(t, resp.Errors, "first_name")
	assert.Contains(t, resp.Errors, "date_of_birth")

	// The rejected input is echoed back for form redisplay.
	echo, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Mensah", echo["last_name"])
}

func TestHandleGetAthlete_NotFound(t *testing.T) {
	router := newAthleteTestRouter(newFakeAthleteService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/athletes/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleUpdateAthlete_NotFound(t *testing.T) {
	router := newAthleteTestRouter(newFakeAthleteService())

	body := map[string]string{
		"first_name":    "Ama",
		"last_name":     "Mensah",
		"date_of_birth": "01/03/2010",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/athletes/42", bytes.NewReader(payload))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
