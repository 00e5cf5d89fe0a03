package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Slug        string `gorm:"unique;not null"`
	Description string
	Location    string `gorm:"not null"`
	Lat         *float64
	Lng         *float64

	StartDate time.Time `gorm:"not null"`
	EndDate   *time.Time

	Type string `gorm:"not null"` // COMPETITION, TRAINING, CAMP, MEETING, OTHER

	OrganizerID uint `gorm:"not null"`
	Organizer   User `gorm:"foreignKey:OrganizerID"`

	// Empty set means the event applies to all categories.
	Categories []Category `gorm:"many2many:event_categories;"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// InsertWithActivity creates the event and its feed entry in one
// transaction, claiming the submission token first so a replayed submit
// rolls the whole write back.
func (d *EventDAO) InsertWithActivity(ctx context.Context, event Event, metadata ActivityMetadata, token string) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimSubmission(tx, token); err != nil {
			return err
		}

		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		activity := Activity{
			EventID:  &event.ID,
			Metadata: metadata,
		}

		return tx.Create(&activity).Error
	})
	if err != nil {
		return Event{}, err
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Event{ID: event.ID}).
			Select("Title", "Slug", "Description", "Location", "Lat", "Lng", "StartDate", "EndDate", "Type").
			Updates(&event)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return tx.Model(&Event{ID: event.ID}).Association("Categories").Replace(event.Categories)
	})
	if err != nil {
		return Event{}, err
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).
		Preload("Categories").
		Preload("Organizer").
		First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Preload("Categories").
		Preload("Organizer").
		Order("start_date DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}
