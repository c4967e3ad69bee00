package models

import "gorm.io/datatypes"

type Assignment struct {
	BaseModel

	Title       string         `gorm:"not null"`
	Description string         `gorm:"not null;default:''"`
	DueDate     datatypes.Date `gorm:"not null"`
	Priority    *int
	CourseID    uint `gorm:"not null;index"`
	UserID      uint `gorm:"not null;index"`
}

func (a Assignment) OwnerID() uint { return a.UserID }
