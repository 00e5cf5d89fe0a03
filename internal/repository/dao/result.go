package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrResultNotFound = errors.New("result not found")

type Result struct {
	ID uint `gorm:"primaryKey"`

	AthleteID uint `gorm:"not null;index"`
	Athlete   Athlete

	EventID uint `gorm:"not null;index"`
	Event   Event

	DisciplineID uint `gorm:"not null"`
	Discipline   Discipline

	// Free text so times, distances and point totals all fit.
	Score    string `gorm:"not null"`
	Position *int
	Notes    string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ResultDAO struct {
	db *gorm.DB
}

func NewResultDAO(db *gorm.DB) *ResultDAO {
	return &ResultDAO{
		db: db,
	}
}

// InsertWithActivity creates the result and its feed entry in one
// transaction, claiming the submission token first.
func (d *ResultDAO) InsertWithActivity(ctx context.Context, res Result, metadata ActivityMetadata, token string) (Result, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimSubmission(tx, token); err != nil {
			return err
		}

		if err := tx.Create(&res).Error; err != nil {
			return err
		}

		activity := Activity{
			ResultID: &res.ID,
			Metadata: metadata,
		}

		return tx.Create(&activity).Error
	})
	if err != nil {
		return Result{}, err
	}

	return d.FindByID(ctx, res.ID)
}

func (d *ResultDAO) Update(ctx context.Context, res Result) (Result, error) {
	result := d.db.WithContext(ctx).
		Model(&Result{ID: res.ID}).
		Select("AthleteID", "EventID", "DisciplineID", "Score", "Position", "Notes").
		Updates(&res)
	if result.Error != nil {
		return Result{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Result{}, ErrResultNotFound
	}

	return d.FindByID(ctx, res.ID)
}

func (d *ResultDAO) FindByID(ctx context.Context, id uint) (Result, error) {
	var res Result

	result := d.db.WithContext(ctx).
		Preload("Athlete").
		Preload("Athlete.Category").
		Preload("Event").
		Preload("Discipline").
		First(&res, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Result{}, ErrResultNotFound
		}

		return Result{}, result.Error
	}

	return res, nil
}

func (d *ResultDAO) FindByEventID(ctx context.Context, eventID uint) ([]Result, error) {
	var results []Result

	result := d.db.WithContext(ctx).
		Preload("Athlete").
		Preload("Discipline").
		Where("event_id = ?", eventID).
		Order("discipline_id ASC, position ASC NULLS LAST").
		Find(&results)
	if result.Error != nil {
		return nil, result.Error
	}

	return results, nil
}
