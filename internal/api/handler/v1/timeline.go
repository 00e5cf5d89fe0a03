package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/athletix/club-api/internal/api/handler/v1/response"
	"github.com/athletix/club-api/internal/config"
	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/service"
)

type TimelineService interface {
	GetPage(ctx context.Context, limit, offset int) (service.TimelinePage, error)
	LikeActivity(ctx context.Context, id uint) (domain.Activity, error)
}

type TimelineHandler struct {
	conf *config.TimelineConfig
	svc  TimelineService
}

func NewTimelineHandler(conf *config.TimelineConfig, svc TimelineService) *TimelineHandler {
	return &TimelineHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleGetTimeline godoc
// @Summary      Get one page of the activity feed
// @Description  Newest first. Clients keep requesting the next offset until a short page arrives (has_more=false).
// @Tags         timeline
// @Produce      json
// @Param        limit   query  int  false  "Page size (default 10, capped)"
// @Param        offset  query  int  false  "Items to skip (default 0)"
// @Success      200  {object}  response.TimelinePage
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /timeline [get]
func (h *TimelineHandler) HandleGetTimeline(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(h.conf.DefaultPageSize)))
	if err != nil || limit < 1 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit")))
		return
	}
	if limit > h.conf.MaxPageSize {
		limit = h.conf.MaxPageSize
	}

	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid offset")))
		return
	}

	page, err := h.svc.GetPage(ctx.Request.Context(), limit, offset)
	if err != nil {
		err = fmt.Errorf("HandleGetTimeline -> h.svc.GetPage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewTimelinePage(page, time.Now()))
}

// HandleLikeActivity godoc
// @Summary      Like a feed entry
// @Tags         timeline
// @Produce      json
// @Param        activityID  path  int  true  "Activity ID"
// @Success      200  {object}  domain.Activity
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /timeline/{activityID}/like [post]
// @Security     BearerAuth
func (h *TimelineHandler) HandleLikeActivity(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	activity, err := h.svc.LikeActivity(ctx.Request.Context(), uint(activityID))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleLikeActivity -> h.svc.LikeActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}
