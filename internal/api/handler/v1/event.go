package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/athletix/club-api/internal/api/handler/v1/request"
	"github.com/athletix/club-api/internal/api/handler/v1/response"
	"github.com/athletix/club-api/internal/api/middleware"
	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event, token string) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List all events
// @Description  Each event carries its derived status (upcoming, ongoing, completed).
// @Tags         events
// @Produce      json
// @Success      200  {array}   response.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events, time.Now()))
}

// HandleGetEvent godoc
// @Summary      Get an event by ID
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200  {object}  response.Event
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewEvent(event, time.Now()))
}

// HandleCreateEvent godoc
// @Summary      Create a new event
// @Description  Also posts the event announcement to the timeline feed.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.SaveEventRequest  true  "Event details"
// @Success      201  {object}  response.Submission
// @Failure      400  {object}  response.Err
// @Failure      422  {object}  response.Submission
// @Failure      500  {object}  response.Submission
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.SaveEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err, req)
		return
	}

	event := req.ToDomain()
	event.OrganizerID = ctx.GetUint(middleware.ContextKeyUserID)

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event, req.SubmissionToken)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSubmission) {
			// The first submit already created the event; answer as done.
			response.RenderSubmissionSuccess(ctx, http.StatusOK, "event already created", nil)
			return
		}

		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderSubmissionErr(ctx, err)
		return
	}

	response.RenderSubmissionSuccess(ctx, http.StatusCreated, "event created", response.NewEvent(created, time.Now()))
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                       true  "Event ID"
// @Param        request  body      request.SaveEventRequest  true  "Event details"
// @Success      200  {object}  response.Submission
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Submission
// @Failure      500  {object}  response.Submission
// @Router       /events/{eventID} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	var req request.SaveEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderValidationErr(ctx, err, req)
		return
	}

	event := req.ToDomain()
	event.ID = uint(eventID)

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderSubmissionErr(ctx, err)
		return
	}

	response.RenderSubmissionSuccess(ctx, http.StatusOK, "event updated", response.NewEvent(updated, time.Now()))
}
