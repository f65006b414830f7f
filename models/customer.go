package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered client. The CPF is unique, immutable and
// doubles as the identity-provider username.
type Customer struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"not null;size:100"`
	CPF       string    `json:"cpf" gorm:"unique;not null;size:11"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
