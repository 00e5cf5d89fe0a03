package service

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
)

type ReferenceCategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
}

// ReferenceService serves the seeded lookup tables: age bands and disciplines.
type ReferenceService struct {
	categoryRepo   ReferenceCategoryRepository
	disciplineRepo DisciplineRepository
}

func NewReferenceService(categoryRepo ReferenceCategoryRepository, disciplineRepo DisciplineRepository) *ReferenceService {
	return &ReferenceService{
		categoryRepo:   categoryRepo,
		disciplineRepo: disciplineRepo,
	}
}

func (s *ReferenceService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.categoryRepo.FindAll -> %w", err)
	}

	return categories, nil
}

func (s *ReferenceService) ListDisciplines(ctx context.Context) ([]domain.Discipline, error) {
	disciplines, err := s.disciplineRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.disciplineRepo.FindAll -> %w", err)
	}

	return disciplines, nil
}
