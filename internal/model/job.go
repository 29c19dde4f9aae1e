package model

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a job posting. OwnerID is set at creation and never
// reassigned; every operation on a job checks it against the caller.
type Job struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:char(36);index;not null"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Company     string    `json:"company" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location,omitempty" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
