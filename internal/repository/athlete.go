package repository

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository/dao"
)

var ErrAthleteNotFound = dao.ErrAthleteNotFound

type AthleteDAO interface {
	Insert(ctx context.Context, athlete dao.Athlete, token string) (dao.Athlete, error)
	Update(ctx context.Context, athlete dao.Athlete) (dao.Athlete, error)
	FindByID(ctx context.Context, id uint) (dao.Athlete, error)
	FindAll(ctx context.Context) ([]dao.Athlete, error)
}

type AthleteRepository struct {
	dao AthleteDAO
}

func NewAthleteRepository(dao AthleteDAO) *AthleteRepository {
	return &AthleteRepository{
		dao: dao,
	}
}

func (r *AthleteRepository) Create(ctx context.Context, athlete domain.Athlete, token string) (domain.Athlete, error) {
	created, err := r.dao.Insert(ctx, athleteDomainToDAO(athlete), token)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return athleteDAOToDomain(created), nil
}

func (r *AthleteRepository) Update(ctx context.Context, athlete domain.Athlete) (domain.Athlete, error) {
	updated, err := r.dao.Update(ctx, athleteDomainToDAO(athlete))
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return athleteDAOToDomain(updated), nil
}

func (r *AthleteRepository) FindByID(ctx context.Context, id uint) (domain.Athlete, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return athleteDAOToDomain(found), nil
}

func (r *AthleteRepository) FindAll(ctx context.Context) ([]domain.Athlete, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	athletes := make([]domain.Athlete, 0, len(found))
	for _, a := range found {
		athletes = append(athletes, athleteDAOToDomain(a))
	}

	return athletes, nil
}

func athleteDomainToDAO(a domain.Athlete) dao.Athlete {
	return dao.Athlete{
		ID:          a.ID,
		Name:        a.Name,
		DateOfBirth: a.DateOfBirth,
		Gender:      a.Gender,
		PhoneNumber: a.PhoneNumber,
		Address:     a.Address,
		Bio:         a.Bio,
		AvatarURL:   a.AvatarURL,
		CategoryID:  a.CategoryID,
	}
}

func athleteDAOToDomain(a dao.Athlete) domain.Athlete {
	athlete := domain.Athlete{
		ID:          a.ID,
		Name:        a.Name,
		DateOfBirth: a.DateOfBirth,
		Gender:      a.Gender,
		PhoneNumber: a.PhoneNumber,
		Address:     a.Address,
		Bio:         a.Bio,
		AvatarURL:   a.AvatarURL,
		CategoryID:  a.CategoryID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	if a.Category != nil {
		category := categoryDAOToDomain(*a.Category)
		athlete.Category = &category
	}

	return athlete
}
