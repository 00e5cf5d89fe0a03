package service

import (
	"context"
	"fmt"
	"time"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository"
)

var ErrAthleteNotFound = repository.ErrAthleteNotFound

type AthleteRepository interface {
	Create(ctx context.Context, athlete domain.Athlete, token string) (domain.Athlete, error)
	Update(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error)
	FindByID(ctx context.Context, id uint) (domain.Athlete, error)
	FindAll(ctx context.Context) ([]domain.Athlete, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
}

type AthleteService struct {
	repo         AthleteRepository
	categoryRepo CategoryRepository

	now func() time.Time
}

func NewAthleteService(repo AthleteRepository, categoryRepo CategoryRepository) *AthleteService {
	return &AthleteService{
		repo:         repo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// CreateAthlete persists a new athlete. The age category is derived from the
// date of birth, never taken from the client.
func (s *AthleteService) CreateAthlete(ctx context.Context, athlete domain.Athlete, token string) (domain.Athlete, error) {
	categoryID, err := s.deriveCategory(ctx, athlete.DateOfBirth)
	if err != nil {
		return domain.Athlete{}, err
	}
	athlete.CategoryID = categoryID

	created, err := s.repo.Create(ctx, athlete, token)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateAthlete re-derives the category on every write so a changed date of
// birth moves the athlete to the right band.
func (s *AthleteService) UpdateAthlete(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error) {
	categoryID, err := s.deriveCategory(ctx, athlete.DateOfBirth)
	if err != nil {
		return domain.Athlete{}, err
	}
	athlete.CategoryID = categoryID

	updated, err := s.repo.Update(ctx, athlete)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AthleteService) GetAthlete(ctx context.Context, id uint) (domain.Athlete, error) {
	athlete, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return athlete, nil
}

func (s *AthleteService) ListAthletes(ctx context.Context) ([]domain.Athlete, error) {
	athletes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return athletes, nil
}

// deriveCategory runs the resolver against the configured bands. A nil
// result is not an error: an uncovered age leaves the athlete uncategorized.
func (s *AthleteService) deriveCategory(ctx context.Context, dateOfBirth time.Time) (*uint, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.categoryRepo.FindAll -> %w", err)
	}

	category := domain.ResolveCategory(dateOfBirth, s.now(), categories)
	if category == nil {
		return nil, nil
	}

	return &category.ID, nil
}
