package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/athletix/club-api/internal/api/handler/v1/request"
	"github.com/athletix/club-api/internal/api/handler/v1/response"
	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/service"
)

type AthleteService interface {
	CreateAthlete(ctx context.Context, athlete domain.Athlete, token string) (domain.Athlete, error)
	UpdateAthlete(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error)
	GetAthlete(ctx context.Context, id uint) (domain.Athlete, error)
	ListAthletes(ctx context.Context) ([]domain.Athlete, error)
}

type AthleteHandler struct {
	svc AthleteService
}

func NewAthleteHandler(svc AthleteService) *AthleteHandler {
	return &AthleteHandler{
		svc: svc,
	}
}

// HandleListAthletes godoc
// @Summary      List all athletes
// @Tags         athletes
// @Produce      json
// @Success      200  {array}   domain.Athlete
// @Failure      500  {object}  response.Err
// @Router       /athletes [get]
func (h *AthleteHandler) HandleListAthletes(ctx *gin.Context) {
	athletes, err := h.svc.ListAthletes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListAthletes -> h.svc.ListAthletes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, athletes)
}

// HandleGetAthlete godoc
// @Summary      Get an athlete by ID
// @Tags         athletes
// @Produce      json
// @Param        athleteID  path      int  true  "Athlete ID"
// @Success      200  {object}  domain.Athlete
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /athletes/{athleteID} [get]
func (h *AthleteHandler) HandleGetAthlete(ctx *gin.Context) {
	athleteID, err := strconv.ParseUint(ctx.Param("athleteID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid athlete ID: %w", err)))
		return
	}

	athlete, err := h.svc.GetAthlete(ctx.Request.Context(), uint(athleteID))
	if err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("athlete", "ID", athleteID))
			return
		}

		err = fmt.Errorf("HandleGetAthlete -> h.svc.GetAthlete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, athlete)
}

// HandleCreateAthlete godoc
// @Summary      Create a new athlete
// @Description  The age category is derived from the date of birth, never submitted.
// @Tags         athletes
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveAthleteRequest  true  "Athlete details"
// @Success      201  {object}  response.Submission
// @Failure      400  {object}  response.Err
// @Failure      422  {object}  response.Submission
// @Failure      500  {object}  response.Submission
// @Router       /athletes [post]
// @Security     BearerAuth
func (h *AthleteHandler) HandleCreateAthlete(ctx *gin.Context) {
	var req request.SaveAthleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err, req)
		return
	}

	created, err := h.svc.CreateAthlete(ctx.Request.Context(), req.ToDomain(), req.SubmissionToken)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSubmission) {
			// The first submit already created the athlete; answer as done.
			response.RenderSubmissionSuccess(ctx, http.StatusOK, "athlete already created", nil)
			return
		}

		err = fmt.Errorf("HandleCreateAthlete -> h.svc.CreateAthlete -> %w", err)
		response.RenderSubmissionErr(ctx, err)
		return
	}

	response.RenderSubmissionSuccess(ctx, http.StatusCreated, "athlete created", created)
}

// HandleUpdateAthlete godoc
// @Summary      Update an athlete
// @Description  Re-derives the age category when the date of birth changes.
// @Tags         athletes
// @Accept       json
// @Produce      json
// @Param        athleteID  path      int                         true  "Athlete ID"
// @Param        request    body      request.SaveAthleteRequest  true  "Athlete details"
// @Success      200  {object}  response.Submission
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Submission
// @Failure      500  {object}  response.Submission
// @Router       /athletes/{athleteID} [put]
// @Security     BearerAuth
func (h *AthleteHandler) HandleUpdateAthlete(ctx *gin.Context) {
	athleteID, err := strconv.ParseUint(ctx.Param("athleteID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid athlete ID: %w", err)))
		return
	}

	var req request.SaveAthleteRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err, req)
		return
	}

	athlete := req.ToDomain()
	athlete.ID = uint(athleteID)

	updated, err := h.svc.UpdateAthlete(ctx.Request.Context(), athlete)
	if err != nil {
		if errors.Is(err, service.ErrAthleteNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("athlete", "ID", athleteID))
			return
		}

		err = fmt.Errorf("HandleUpdateAthlete -> h.svc.UpdateAthlete -> %w", err)
		response.RenderSubmissionErr(ctx, err)
		return
	}

	response.RenderSubmissionSuccess(ctx, http.StatusOK, "athlete updated", updated)
}
