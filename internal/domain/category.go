package domain

import "time"

// Category is an age-banded athlete classification (e.g. U14, SEN).
// MaxAge nil means the band is unbounded above.
type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MinAge      int       `json:"min_age"`
	MaxAge      *int      `json:"max_age,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Covers reports whether the band includes the given age.
func (c *Category) Covers(age int) bool {
	return c.MinAge <= age && (c.MaxAge == nil || *c.MaxAge >= age)
}

// AgeOn computes a whole-year age the calendar way: naive year subtraction,
// minus one when the birthday has not yet occurred in the year of now.
func AgeOn(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()

	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}

	return age
}

// ResolveCategory returns the first category in persisted order covering the
// athlete's age, or nil when no band matches. Bands are expected to be
// disjoint by data-entry convention; overlaps are not validated here.
func ResolveCategory(dateOfBirth, now time.Time, categories []Category) *Category {
	age := AgeOn(dateOfBirth, now)

	for i := range categories {
		if categories[i].Covers(age) {
			return &categories[i]
		}
	}

	return nil
}
