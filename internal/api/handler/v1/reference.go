package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/athletix/club-api/internal/api/handler/v1/response"
	"github.com/athletix/club-api/internal/domain"
)

type ReferenceService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListDisciplines(ctx context.Context) ([]domain.Discipline, error)
}

// ReferenceHandler serves the seeded lookup tables.
type ReferenceHandler struct {
	svc ReferenceService
}

func NewReferenceHandler(svc ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		svc: svc,
	}
}

// HandleListCategories godoc
// @Summary      List the configured age categories
// @Tags         reference
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      500  {object}  response.Err
// @Router       /categories [get]
func (h *ReferenceHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleListDisciplines godoc
// @Summary      List the configured disciplines
// @Tags         reference
// @Produce      json
// @Success      200  {array}   domain.Discipline
// @Failure      500  {object}  response.Err
// @Router       /disciplines [get]
func (h *ReferenceHandler) HandleListDisciplines(ctx *gin.Context) {
	disciplines, err := h.svc.ListDisciplines(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListDisciplines -> h.svc.ListDisciplines -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, disciplines)
}
