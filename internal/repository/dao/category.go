package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"unique;not null"`
	Description string
	MinAge      int `gorm:"not null"`
	MaxAge      *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

// FindAll returns categories in persisted (insertion) order. The category
// resolver relies on this ordering for its first-match policy.
func (d *CategoryDAO) FindAll(ctx context.Context) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).Order("id ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) FindByID(ctx context.Context, id uint) (Category, error) {
	var category Category

	result := d.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return category, nil
}

// UpsertByName finds a category by its unique name, creating it when absent.
func (d *CategoryDAO) UpsertByName(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).Where(Category{Name: category.Name}).FirstOrCreate(&category)
	if result.Error != nil {
		return Category{}, result.Error
	}

	return category, nil
}
