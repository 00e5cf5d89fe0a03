package dao

import (
	"context"

	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Athlete{},
		&Event{},
		&Discipline{},
		&Result{},
		&Activity{},
		&Submission{},
	)
}

// SeedReferenceData upserts the age bands and disciplines by unique name.
// Reference data is seeded once and rarely mutated afterwards.
func SeedReferenceData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categoryDAO := NewCategoryDAO(tx)
		for _, c := range defaultCategories {
			if _, err := categoryDAO.UpsertByName(context.Background(), c); err != nil {
				return err
			}
		}

		for i := range defaultDisciplines {
			d := defaultDisciplines[i]
			if err := tx.Where(Discipline{Name: d.Name}).FirstOrCreate(&d).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func intPtr(v int) *int { return &v }

// Age bands follow the usual athletics conventions; MASTERS is unbounded.
var defaultCategories = []Category{
	{Name: "U10", Description: "Under 10", MinAge: 6, MaxAge: intPtr(9)},
	{Name: "U12", Description: "Under 12", MinAge: 10, MaxAge: intPtr(11)},
	{Name: "U14", Description: "Under 14", MinAge: 12, MaxAge: intPtr(13)},
	{Name: "U16", Description: "Under 16", MinAge: 14, MaxAge: intPtr(15)},
	{Name: "U18", Description: "Under 18", MinAge: 16, MaxAge: intPtr(17)},
	{Name: "U20", Description: "Under 20", MinAge: 18, MaxAge: intPtr(19)},
	{Name: "SEN", Description: "Senior", MinAge: 20, MaxAge: intPtr(34)},
	{Name: "MAS", Description: "Masters", MinAge: 35, MaxAge: nil},
}

var defaultDisciplines = []Discipline{
	{Name: "100m", Description: "100 metres sprint", Category: "sprints", UnitSymbol: "s", UnitType: "TIME", IsTrack: true, IsOlympic: true, IsParalympic: true, IsWorldChampionship: true},
	{Name: "200m", Description: "200 metres sprint", Category: "sprints", UnitSymbol: "s", UnitType: "TIME", IsTrack: true, IsOlympic: true, IsParalympic: true, IsWorldChampionship: true},
	{Name: "400m", Description: "400 metres", Category: "sprints", UnitSymbol: "s", UnitType: "TIME", IsTrack: true, IsOlympic: true, IsParalympic: true, IsWorldChampionship: true},
	{Name: "800m", Description: "800 metres", Category: "middle-distance", UnitSymbol: "s", UnitType: "TIME", IsTrack: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "1500m", Description: "1500 metres", Category: "middle-distance", UnitSymbol: "s", UnitType: "TIME", IsTrack: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "5000m", Description: "5000 metres", Category: "long-distance", UnitSymbol: "s", UnitType: "TIME", IsTrack: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "Marathon", Description: "Marathon road race", Category: "long-distance", UnitSymbol: "s", UnitType: "TIME", IsRoad: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "Long Jump", Description: "Long jump", Category: "jumps", UnitSymbol: "m", UnitType: "DISTANCE", IsField: true, IsOlympic: true, IsParalympic: true, IsWorldChampionship: true},
	{Name: "High Jump", Description: "High jump", Category: "jumps", UnitSymbol: "m", UnitType: "DISTANCE", IsField: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "Pole Vault", Description: "Pole vault", Category: "jumps", UnitSymbol: "m", UnitType: "DISTANCE", IsField: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "Shot Put", Description: "Shot put", Category: "throws", UnitSymbol: "m", UnitType: "DISTANCE", IsField: true, IsOlympic: true, IsParalympic: true, IsWorldChampionship: true},
	{Name: "Javelin Throw", Description: "Javelin throw", Category: "throws", UnitSymbol: "m", UnitType: "DISTANCE", IsField: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "Discus Throw", Description: "Discus throw", Category: "throws", UnitSymbol: "m", UnitType: "DISTANCE", IsField: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "Decathlon", Description: "Ten-event combined competition", Category: "combined", UnitSymbol: "pts", UnitType: "POINTS", IsCombined: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "Heptathlon", Description: "Seven-event combined competition", Category: "combined", UnitSymbol: "pts", UnitType: "POINTS", IsCombined: true, IsOlympic: true, IsWorldChampionship: true},
	{Name: "4x100m Relay", Description: "4x100 metres relay", Category: "relays", UnitSymbol: "s", UnitType: "TIME", IsTrack: true, IsTeam: true, IsOlympic: true, IsWorldChampionship: true},
}
