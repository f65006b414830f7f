package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a menu item. Inactive products cannot be ordered.
type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"not null;size:100"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CategoryID  uuid.UUID       `json:"category_id" gorm:"type:char(36);not null"`
	Category    Category        `json:"category" gorm:"foreignKey:CategoryID"`
	Active      bool            `json:"active" gorm:"not null;default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
