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

type ResultService interface {
	CreateResult(ctx context.Context, res domain.Result, token string) (domain.Result, error)
	UpdateResult(ctx context.Context, res domain.Result) (domain.Result, error)
	GetResult(ctx context.Context, id uint) (domain.Result, error)
	ListEventResults(ctx context.Context, eventID uint) ([]domain.Result, error)
}

type ResultHandler struct {
	svc ResultService
}

func NewResultHandler(svc ResultService) *ResultHandler {
	return &ResultHandler{
		svc: svc,
	}
}

// HandleGetResult godoc
// @Summary      Get a result by ID
// @Tags         results
// @Produce      json
// @Param        resultID  path      int  true  "Result ID"
// @Success      200  {object}  domain.Result
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /results/{resultID} [get]
func (h *ResultHandler) HandleGetResult(ctx *gin.Context) {
	resultID, err := strconv.ParseUint(ctx.Param("resultID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid result ID: %w", err)))
		return
	}

	res, err := h.svc.GetResult(ctx.Request.Context(), uint(resultID))
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("result", "ID", resultID))
			return
		}

		err = fmt.Errorf("HandleGetResult -> h.svc.GetResult -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// HandleListEventResults godoc
// @Summary      List the results recorded for an event
// @Tags         events,results
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200  {array}   domain.Result
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/results [get]
func (h *ResultHandler) HandleListEventResults(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	results, err := h.svc.ListEventResults(ctx.Request.Context(), uint(eventID))
	if err != nil {
		err = fmt.Errorf("HandleListEventResults -> h.svc.ListEventResults -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// HandleCreateResult godoc
// @Summary      Record a new result
// @Description  Also posts the result to the timeline feed.
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveResultRequest  true  "Result details"
// @Success      201  {object}  response.Submission
// @Failure      400  {object}  response.Err
// @Failure      422  {object}  response.Submission
// @Failure      500  {object}  response.Submission
// @Router       /results [post]
// @Security     BearerAuth
func (h *ResultHandler) HandleCreateResult(ctx *gin.Context) {
	var req request.SaveResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err, req)
		return
	}

	created, err := h.svc.CreateResult(ctx.Request.Context(), req.ToDomain(), req.SubmissionToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSubmission):
			response.RenderSubmissionSuccess(ctx, http.StatusOK, "result already recorded", nil)
		case errors.Is(err, service.ErrAthleteNotFound):
			response.RenderErr(ctx, response.ErrNotFound("athlete", "ID", req.AthleteID))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrDisciplineNotFound):
			response.RenderErr(ctx, response.ErrNotFound("discipline", "ID", req.DisciplineID))
		default:
			err = fmt.Errorf("HandleCreateResult -> h.svc.CreateResult -> %w", err)
			response.RenderSubmissionErr(ctx, err)
		}
		return
	}

	response.RenderSubmissionSuccess(ctx, http.StatusCreated, "result recorded", created)
}

// HandleUpdateResult godoc
// @Summary      Update a result
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        resultID  path      int                        true  "Result ID"
// @Param        request   body      request.SaveResultRequest  true  "Result details"
// @Success      200  {object}  response.Submission
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Submission
// @Failure      500  {object}  response.Submission
// @Router       /results/{resultID} [put]
// @Security     BearerAuth
func (h *ResultHandler) HandleUpdateResult(ctx *gin.Context) {
	resultID, err := strconv.ParseUint(ctx.Param("resultID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid result ID: %w", err)))
		return
	}

	var req request.SaveResultRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err, req)
		return
	}

	res := req.ToDomain()
	res.ID = uint(resultID)

	updated, err := h.svc.UpdateResult(ctx.Request.Context(), res)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("result", "ID", resultID))
			return
		}

		err = fmt.Errorf("HandleUpdateResult -> h.svc.UpdateResult -> %w", err)
		response.RenderSubmissionErr(ctx, err)
		return
	}

	response.RenderSubmissionSuccess(ctx, http.StatusOK, "result updated", updated)
}
