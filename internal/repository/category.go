package repository

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository/dao"
)

var ErrCategoryNotFound = dao.ErrCategoryNotFound

type CategoryDAO interface {
	FindAll(ctx context.Context) ([]dao.Category, error)
	FindByID(ctx context.Context, id uint) (dao.Category, error)
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	categories := make([]domain.Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, categoryDAOToDomain(c))
	}

	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (domain.Category, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return categoryDAOToDomain(found), nil
}

func categoryDAOToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		MinAge:      c.MinAge,
		MaxAge:      c.MaxAge,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
