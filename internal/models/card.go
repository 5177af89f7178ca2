package models

import "time"

// Card is read-only reference data; rows are seeded at startup and never
// modified through the API.
type Card struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PokedexNumber int       `gorm:"not null;index" json:"pokedex_number"`
	Name          string    `gorm:"not null;size:100" json:"name"`
	HP            int       `gorm:"not null" json:"hp"`
	Attack        int       `gorm:"not null" json:"attack"`
	Type          string    `gorm:"not null;size:30" json:"type"`
	ImageURL      string    `gorm:"size:255" json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
