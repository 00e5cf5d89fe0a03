package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestAgeOn(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		dateOfBirth time.Time
		want        int
	}{
		{
			name:        "birthday already passed this year",
			dateOfBirth: time.Date(2010, 3, 1, 0, 0, 0, 0, time.UTC),
			want:        14,
		},
		{
			name:        "birthday later this year",
			dateOfBirth: time.Date(2010, 9, 1, 0, 0, 0, 0, time.UTC),
			want:        13,
		},
		{
			name:        "birthday today",
			dateOfBirth: time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC),
			want:        14,
		},
		{
			name:        "birthday tomorrow",
			dateOfBirth: time.Date(2010, 6, 16, 0, 0, 0, 0, time.UTC),
			want:        13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeOn(tt.dateOfBirth, now))
		})
	}
}

func TestResolveCategory(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Persisted order, as FindAll returns them.
	categories := []Category{
		{ID: 1, Name: "U14", MinAge: 10, MaxAge: intPtr(13)},
		{ID: 2, Name: "U16", MinAge: 14, MaxAge: intPtr(15)},
		{ID: 3, Name: "SEN", MinAge: 20, MaxAge: intPtr(34)},
		{ID: 4, Name: "MAS", MinAge: 35, MaxAge: nil},
	}

	tests := []struct {
		name        string
		dateOfBirth time.Time
		wantName    string
		wantNil     bool
	}{
		{
			name:        "twelve year old lands in U14",
			dateOfBirth: time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC),
			wantName:    "U14",
		},
		{
			name:        "twenty-four year old lands in SEN",
			dateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			wantName:    "SEN",
		},
		{
			name:        "SEN upper bound inclusive",
			dateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			wantName:    "SEN",
		},
		{
			name:        "still 34 until tomorrow's birthday",
			dateOfBirth: time.Date(1989, 6, 16, 0, 0, 0, 0, time.UTC),
			wantName:    "SEN",
		},
		{
			name:        "turned 35 today, open-ended masters band",
			dateOfBirth: time.Date(1989, 6, 15, 0, 0, 0, 0, time.UTC),
			wantName:    "MAS",
		},
		{
			name:        "gap between bands leaves nil",
			dateOfBirth: time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC), // age 18
			wantNil:     true,
		},
		{
			name:        "younger than every band leaves nil",
			dateOfBirth: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			wantNil:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCategory(tt.dateOfBirth, now, categories)

			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestResolveCategory_FirstMatchWins(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// Overlapping bands are a data-entry mistake, but the resolution must
	// stay deterministic: persisted order decides.
	overlapping := []Category{
		{ID: 1, Name: "A", MinAge: 10, MaxAge: intPtr(20)},
		{ID: 2, Name: "B", MinAge: 10, MaxAge: intPtr(20)},
	}

	got := ResolveCategory(time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC), now, overlapping)

	require.NotNil(t, got)
	assert.Equal(t, "A", got.Name)
}
