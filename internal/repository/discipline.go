package repository

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository/dao"
)

var ErrDisciplineNotFound = dao.ErrDisciplineNotFound

type DisciplineDAO interface {
	FindAll(ctx context.Context) ([]dao.Discipline, error)
	FindByID(ctx context.Context, id uint) (dao.Discipline, error)
}

type DisciplineRepository struct {
	dao DisciplineDAO
}

func NewDisciplineRepository(dao DisciplineDAO) *DisciplineRepository {
	return &DisciplineRepository{
		dao: dao,
	}
}

func (r *DisciplineRepository) FindAll(ctx context.Context) ([]domain.Discipline, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	disciplines := make([]domain.Discipline, 0, len(found))
	for _, d := range found {
		disciplines = append(disciplines, disciplineDAOToDomain(d))
	}

	return disciplines, nil
}

func (r *DisciplineRepository) FindByID(ctx context.Context, id uint) (domain.Discipline, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Discipline{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return disciplineDAOToDomain(found), nil
}

func disciplineDAOToDomain(d dao.Discipline) domain.Discipline {
	return domain.Discipline{
		ID:                  d.ID,
		Name:                d.Name,
		Description:         d.Description,
		Category:            d.Category,
		UnitSymbol:          d.UnitSymbol,
		UnitType:            domain.UnitType(d.UnitType),
		IsTrack:             d.IsTrack,
		IsField:             d.IsField,
		IsRoad:              d.IsRoad,
		IsCombined:          d.IsCombined,
		IsTeam:              d.IsTeam,
		IsOlympic:           d.IsOlympic,
		IsParalympic:        d.IsParalympic,
		IsWorldChampionship: d.IsWorldChampionship,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}
