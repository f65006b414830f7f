package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products on the menu. Names are unique.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"unique;not null;size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
