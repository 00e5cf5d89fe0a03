package repository

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository/dao"
)

var ErrActivityNotFound = dao.ErrActivityNotFound

type ActivityDAO interface {
	FindPage(ctx context.Context, limit, offset int) ([]dao.Activity, error)
	IncrementLikes(ctx context.Context, id uint) (dao.Activity, error)
}

type ActivityRepository struct {
	dao ActivityDAO
}

func NewActivityRepository(dao ActivityDAO) *ActivityRepository {
	return &ActivityRepository{
		dao: dao,
	}
}

func (r *ActivityRepository) FindPage(ctx context.Context, limit, offset int) ([]domain.Activity, error) {
	found, err := r.dao.FindPage(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPage -> %w", err)
	}

	activities := make([]domain.Activity, 0, len(found))
	for _, a := range found {
		activities = append(activities, activityDAOToDomain(a))
	}

	return activities, nil
}

func (r *ActivityRepository) IncrementLikes(ctx context.Context, id uint) (domain.Activity, error) {
	updated, err := r.dao.IncrementLikes(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.IncrementLikes -> %w", err)
	}

	return activityDAOToDomain(updated), nil
}

func activityDAOToDomain(a dao.Activity) domain.Activity {
	activity := domain.Activity{
		ID:       a.ID,
		EventID:  a.EventID,
		ResultID: a.ResultID,
		Metadata: domain.ActivityMetadata{
			Title:          a.Metadata.Title,
			Location:       a.Metadata.Location,
			StartDate:      a.Metadata.StartDate,
			AthleteName:    a.Metadata.AthleteName,
			DisciplineName: a.Metadata.DisciplineName,
			Score:          a.Metadata.Score,
		},
		Likes:     a.Likes,
		Comments:  a.Comments,
		CreatedAt: a.CreatedAt,
	}

	if a.Event != nil {
		event := eventDAOToDomain(*a.Event)
		activity.Event = &event
	}
	if a.Result != nil {
		result := resultDAOToDomain(*a.Result)
		activity.Result = &result
	}

	return activity
}
