package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDisciplineNotFound = errors.New("discipline not found")

type Discipline struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"unique;not null"`
	Description string
	Category    string `gorm:"not null"` // sprints, jumps, throws, ...

	UnitSymbol string `gorm:"not null"`
	UnitType   string `gorm:"not null"` // TIME, DISTANCE, POINTS, WEIGHT, COUNT

	IsTrack    bool `gorm:"default:false"`
	IsField    bool `gorm:"default:false"`
	IsRoad     bool `gorm:"default:false"`
	IsCombined bool `gorm:"default:false"`
	IsTeam     bool `gorm:"default:false"`

	IsOlympic           bool `gorm:"default:false"`
	IsParalympic        bool `gorm:"default:false"`
	IsWorldChampionship bool `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type DisciplineDAO struct {
	db *gorm.DB
}

func NewDisciplineDAO(db *gorm.DB) *DisciplineDAO {
	return &DisciplineDAO{
		db: db,
	}
}

func (d *DisciplineDAO) FindAll(ctx context.Context) ([]Discipline, error) {
	var disciplines []Discipline

	result := d.db.WithContext(ctx).Order("id ASC").Find(&disciplines)
	if result.Error != nil {
		return nil, result.Error
	}

	return disciplines, nil
}

func (d *DisciplineDAO) FindByID(ctx context.Context, id uint) (Discipline, error) {
	var discipline Discipline

	result := d.db.WithContext(ctx).First(&discipline, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Discipline{}, ErrDisciplineNotFound
		}

		return Discipline{}, result.Error
	}

	return discipline, nil
}
