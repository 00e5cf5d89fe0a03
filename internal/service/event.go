package service

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository"
)

var (
	ErrEventNotFound       = repository.ErrEventNotFound
	ErrDuplicateSubmission = repository.ErrDuplicateSubmission
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event, token string) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// CreateEvent persists the event and fans out its timeline announcement.
// The URL slug is derived from the title.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, token string) (domain.Event, error) {
	event.Slug = slug.Make(event.Title)

	created, err := s.repo.Create(ctx, event, token)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.Slug = slug.Make(event.Title)

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}
