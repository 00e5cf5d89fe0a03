package domain

import (
	"strings"
	"time"
)

type Athlete struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	CategoryID  *uint     `json:"category_id,omitempty"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FirstName returns the leading segment of the full name.
// The name is stored whole and split only for presentation.
func (a *Athlete) FirstName() string {
	first, _, _ := strings.Cut(a.Name, " ")
	return first
}

// LastName returns everything after the first name segment.
func (a *Athlete) LastName() string {
	_, last, _ := strings.Cut(a.Name, " ")
	return last
}
