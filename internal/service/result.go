package service

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository"
)

var (
	ErrResultNotFound     = repository.ErrResultNotFound
	ErrDisciplineNotFound = repository.ErrDisciplineNotFound
)

type ResultRepository interface {
	Create(ctx context.Context, res domain.Result, snapshot domain.ActivityMetadata, token string) (domain.Result, error)
	Update(ctx context.Context, res domain.Result) (domain.Result, error)
	FindByID(ctx context.Context, id uint) (domain.Result, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Result, error)
}

type ResultAthleteRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Athlete, error)
}

type ResultEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type DisciplineRepository interface {
	FindAll(ctx context.Context) ([]domain.Discipline, error)
	FindByID(ctx context.Context, id uint) (domain.Discipline, error)
}

type ResultService struct {
	repo           ResultRepository
	athleteRepo    ResultAthleteRepository
	eventRepo      ResultEventRepository
	disciplineRepo DisciplineRepository
}

func NewResultService(
	repo ResultRepository,
	athleteRepo ResultAthleteRepository,
	eventRepo ResultEventRepository,
	disciplineRepo DisciplineRepository,
) *ResultService {
	return &ResultService{
		repo:           repo,
		athleteRepo:    athleteRepo,
		eventRepo:      eventRepo,
		disciplineRepo: disciplineRepo,
	}
}

// CreateResult validates the references, captures the feed snapshot and
// persists result plus activity in one write.
func (s *ResultService) CreateResult(ctx context.Context, res domain.Result, token string) (domain.Result, error) {
	athlete, err := s.athleteRepo.FindByID(ctx, res.AthleteID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.athleteRepo.FindByID -> %w", err)
	}

	event, err := s.eventRepo.FindByID(ctx, res.EventID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	discipline, err := s.disciplineRepo.FindByID(ctx, res.DisciplineID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.disciplineRepo.FindByID -> %w", err)
	}

	snapshot := domain.ActivityMetadata{
		Title:          event.Title,
		AthleteName:    athlete.Name,
		DisciplineName: discipline.Name,
		Score:          res.Score,
	}

	created, err := s.repo.Create(ctx, res, snapshot, token)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ResultService) UpdateResult(ctx context.Context, res domain.Result) (domain.Result, error) {
	updated, err := s.repo.Update(ctx, res)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ResultService) GetResult(ctx context.Context, id uint) (domain.Result, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Result{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return res, nil
}

func (s *ResultService) ListEventResults(ctx context.Context, eventID uint) ([]domain.Result, error) {
	results, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return results, nil
}
