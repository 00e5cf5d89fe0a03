package repository

import (
	"context"
	"fmt"

	"github.com/athletix/club-api/internal/domain"
	"github.com/athletix/club-api/internal/repository/dao"
)

var (
	ErrEventNotFound       = dao.ErrEventNotFound
	ErrDuplicateSubmission = dao.ErrDuplicateSubmission
)

type EventDAO interface {
	InsertWithActivity(ctx context.Context, event dao.Event, metadata dao.ActivityMetadata, token string) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

// Create persists the event together with its timeline announcement.
// The feed snapshot is captured here so the feed never joins back.
func (r *EventRepository) Create(ctx context.Context, event domain.Event, token string) (domain.Event, error) {
	metadata := dao.ActivityMetadata{
		Title:     event.Title,
		Location:  event.Location,
		StartDate: &event.StartDate,
	}

	created, err := r.dao.InsertWithActivity(ctx, eventDomainToDAO(event), metadata, token)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.InsertWithActivity -> %w", err)
	}

	return eventDAOToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, eventDomainToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventDAOToDomain(updated), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDAOToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventDAOToDomain(e))
	}

	return events, nil
}

func eventDomainToDAO(e domain.Event) dao.Event {
	daoEvent := dao.Event{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Location:    e.Location,
		Lat:         e.Lat,
		Lng:         e.Lng,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Type:        string(e.Type),
		OrganizerID: e.OrganizerID,
	}

	for _, c := range e.Categories {
		daoEvent.Categories = append(daoEvent.Categories, dao.Category{ID: c.ID})
	}

	return daoEvent
}

func eventDAOToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Location:    e.Location,
		Lat:         e.Lat,
		Lng:         e.Lng,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Type:        domain.EventType(e.Type),
		OrganizerID: e.OrganizerID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	// Organizer name falls back to "Unknown" when the reference does not
	// resolve, rather than failing the read.
	if e.Organizer.Name != "" {
		event.Organizer = e.Organizer.Name
	} else {
		event.Organizer = "Unknown"
	}

	for _, c := range e.Categories {
		event.Categories = append(event.Categories, categoryDAOToDomain(c))
	}

	return event
}
