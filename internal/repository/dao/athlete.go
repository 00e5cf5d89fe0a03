package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrAthleteNotFound = errors.New("athlete not found")

type Athlete struct {
	ID uint `gorm:"primaryKey"`

	Name        string    `gorm:"not null"`
	DateOfBirth time.Time `gorm:"not null"`
	Gender      string
	PhoneNumber string
	Address     string
	Bio         string
	AvatarURL   string

	CategoryID *uint `gorm:"index"`
	Category   *Category

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AthleteDAO struct {
	db *gorm.DB
}

func NewAthleteDAO(db *gorm.DB) *AthleteDAO {
	return &AthleteDAO{
		db: db,
	}
}

// Insert creates the athlete, claiming the submission token in the same
// transaction so a replayed submit rolls the write back.
func (d *AthleteDAO) Insert(ctx context.Context, athlete Athlete, token string) (Athlete, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimSubmission(tx, token); err != nil {
			return err
		}

		return tx.Create(&athlete).Error
	})
	if err != nil {
		return Athlete{}, err
	}

	return d.FindByID(ctx, athlete.ID)
}

func (d *AthleteDAO) Update(ctx context.Context, athlete Athlete) (Athlete, error) {
	result := d.db.WithContext(ctx).
		Model(&Athlete{ID: athlete.ID}).
		Select("Name", "DateOfBirth", "Gender", "PhoneNumber", "Address", "Bio", "AvatarURL", "CategoryID").
		Updates(&athlete)
	if result.Error != nil {
		return Athlete{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Athlete{}, ErrAthleteNotFound
	}

	return d.FindByID(ctx, athlete.ID)
}

func (d *AthleteDAO) FindByID(ctx context.Context, id uint) (Athlete, error) {
	var athlete Athlete

	result := d.db.WithContext(ctx).Preload("Category").First(&athlete, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Athlete{}, ErrAthleteNotFound
		}

		return Athlete{}, result.Error
	}

	return athlete, nil
}

func (d *AthleteDAO) FindAll(ctx context.Context) ([]Athlete, error) {
	var athletes []Athlete

	result := d.db.WithContext(ctx).Preload("Category").Order("name ASC").Find(&athletes)
	if result.Error != nil {
		return nil, result.Error
	}

	return athletes, nil
}
