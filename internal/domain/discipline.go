package domain

import "time"

type UnitType string

const (
	UnitTypeTime     UnitType = "TIME"
	UnitTypeDistance UnitType = "DISTANCE"
	UnitTypePoints   UnitType = "POINTS"
	UnitTypeWeight   UnitType = "WEIGHT"
	UnitTypeCount    UnitType = "COUNT"
)

// Discipline is seeded reference data: a specific athletics event type
// (100m, Long Jump, ...) with its measurement unit and classification flags.
type Discipline struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // sprints, jumps, throws, ...

	UnitSymbol string   `json:"unit_symbol"`
	UnitType   UnitType `json:"unit_type"`

	IsTrack    bool `json:"is_track"`
	IsField    bool `json:"is_field"`
	IsRoad     bool `json:"is_road"`
	IsCombined bool `json:"is_combined"`
	IsTeam     bool `json:"is_team"`

	IsOlympic           bool `json:"is_olympic"`
	IsParalympic        bool `json:"is_paralympic"`
	IsWorldChampionship bool `json:"is_world_championship"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
