package service

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository"
)

var ErrActivityNotFound = repository.ErrActivityNotFound

type ActivityRepository interface {
	FindPage(ctx context.Context, limit, offset int) ([]domain.Activity, error)
	IncrementLikes(ctx context.Context, id uint) (domain.Activity, error)
}

// TimelinePage is one slice of the feed. HasMore follows the short-page
// convention: a full page means the client should ask for the next offset.
type TimelinePage struct {
	Items   []domain.Activity `json:"items"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
	HasMore bool              `json:"has_more"`
}

type TimelineService struct {
	repo ActivityRepository
}

func NewTimelineService(repo ActivityRepository) *TimelineService {
	return &TimelineService{
		repo: repo,
	}
}

// GetPage returns one feed page, newest first. Offset pagination shifts
// under concurrent inserts; acceptable at club volumes. A keyset cursor on
// (created_at, id) is the upgrade path if that ever matters.
func (s *TimelineService) GetPage(ctx context.Context, limit, offset int) (TimelinePage, error) {
	items, err := s.repo.FindPage(ctx, limit, offset)
	if err != nil {
		return TimelinePage{}, fmt.Errorf("s.repo.FindPage -> %w", err)
	}

	return TimelinePage{
		Items:   items,
		Limit:   limit,
		Offset:  offset,
		HasMore: len(items) == limit,
	}, nil
}

// LikeActivity bumps the like counter, the only mutation feed entries allow.
func (s *TimelineService) LikeActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.IncrementLikes -> %w", err)
	}

	return activity, nil
}
