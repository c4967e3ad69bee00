package models

import "time"

// BaseModel replaces gorm.Model for tables whose rows are removed for good
// on delete (no DeletedAt column, so no soft delete).
type BaseModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
