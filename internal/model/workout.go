package model

import (
	"time"

	"github.com/google/uuid"
)

// Workout represents a single logged exercise entry.
type Workout struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Load      float64   `json:"load" gorm:"not null"`
	Reps      int       `json:"reps" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
