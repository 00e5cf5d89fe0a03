package repository

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository/dao"
)

var ErrResultNotFound = dao.ErrResultNotFound

type ResultDAO interface {
	InsertWithActivity(ctx context.Context, res dao.Result, metadata dao.ActivityMetadata, token string) (dao.Result, error)
	Update(ctx context.Context, res dao.Result) (dao.Result, error)
	FindByID(ctx context.Context, id uint) (dao.Result, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Result, error)
}

type ResultRepository struct {
	dao ResultDAO
}

func NewResultRepository(dao ResultDAO) *ResultRepository {
	return &ResultRepository{
		dao: dao,
	}
}

// Create persists the result together with its timeline posting.
// The snapshot carries athlete, discipline and score for join-free rendering.
func (r *ResultRepository) Create(ctx context.Context, res domain.Result, snapshot domain.ActivityMetadata, token string) (domain.Result, error) {
	metadata := dao.ActivityMetadata{
		Title:          snapshot.Title,
		AthleteName:    snapshot.AthleteName,
		DisciplineName: snapshot.DisciplineName,
		Score:          snapshot.Score,
	}

	created, err := r.dao.InsertWithActivity(ctx, resultDomainToDAO(res), metadata, token)
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.InsertWithActivity -> %w", err)
	}

	return resultDAOToDomain(created), nil
}

func (r *ResultRepository) Update(ctx context.Context, res domain.Result) (domain.Result, error) {
	updated, err := r.dao.Update(ctx, resultDomainToDAO(res))
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return resultDAOToDomain(updated), nil
}

func (r *ResultRepository) FindByID(ctx context.Context, id uint) (domain.Result, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Result{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return resultDAOToDomain(found), nil
}

func (r *ResultRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Result, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	results := make([]domain.Result, 0, len(found))
	for _, res := range found {
		results = append(results, resultDAOToDomain(res))
	}

	return results, nil
}

func resultDomainToDAO(res domain.Result) dao.Result {
	return dao.Result{
		ID:           res.ID,
		AthleteID:    res.AthleteID,
		EventID:      res.EventID,
		DisciplineID: res.DisciplineID,
		Score:        res.Score,
		Position:     res.Position,
		Notes:        res.Notes,
	}
}

func resultDAOToDomain(res dao.Result) domain.Result {
	result := domain.Result{
		ID:           res.ID,
		AthleteID:    res.AthleteID,
		EventID:      res.EventID,
		DisciplineID: res.DisciplineID,
		Score:        res.Score,
		Position:     res.Position,
		Notes:        res.Notes,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}

	if res.Athlete.ID != 0 {
		athlete := athleteDAOToDomain(res.Athlete)
		result.Athlete = &athlete
	}
	if res.Event.ID != 0 {
		event := eventDAOToDomain(res.Event)
		result.Event = &event
	}
	if res.Discipline.ID != 0 {
		discipline := disciplineDAOToDomain(res.Discipline)
		result.Discipline = &discipline
	}

	return result
}
