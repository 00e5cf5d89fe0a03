package dao

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

// ActivityMetadata is stored as a jsonb snapshot so the feed renders
// without joining back to events and results.
type ActivityMetadata struct {
	Title          string     `json:"title,omitempty"`
	Location       string     `json:"location,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	AthleteName    string     `json:"athlete_name,omitempty"`
	DisciplineName string     `json:"discipline_name,omitempty"`
	Score          string     `json:"score,omitempty"`
}

func (m ActivityMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *ActivityMetadata) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = ActivityMetadata{}
		return nil
	default:
		return fmt.Errorf("unsupported metadata type %T", src)
	}
}

type Activity struct {
	ID uint `gorm:"primaryKey"`

	// Exactly one of EventID/ResultID is set.
	EventID  *uint `gorm:"index"`
	Event    *Event
	ResultID *uint `gorm:"index"`
	Result   *Result

	Metadata ActivityMetadata `gorm:"type:jsonb"`

	Likes    int `gorm:"not null;default:0"`
	Comments int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;index:idx_activities_created_at,sort:desc"`
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

// FindPage returns one feed page ordered by recency. Eager-loads the wrapped
// event (with categories) or result (with athlete and discipline) so callers
// can render without further queries.
func (d *ActivityDAO) FindPage(ctx context.Context, limit, offset int) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).
		Preload("Event").
		Preload("Event.Categories").
		Preload("Result").
		Preload("Result.Athlete").
		Preload("Result.Discipline").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) IncrementLikes(ctx context.Context, id uint) (Activity, error) {
	result := d.db.WithContext(ctx).
		Model(&Activity{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if result.Error != nil {
		return Activity{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Activity{}, ErrActivityNotFound
	}

	var activity Activity
	if err := d.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return Activity{}, err
	}

	return activity, nil
}
