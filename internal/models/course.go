package models

import "gorm.io/datatypes"

type Course struct {
	BaseModel

	Name      string         `gorm:"not null"`
	StartDate datatypes.Date `gorm:"not null"`
	EndDate   datatypes.Date `gorm:"not null"`
	UserID    uint           `gorm:"not null;index"`

	// Relationships
	Assignments []Assignment `gorm:"foreignKey:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (c Course) OwnerID() uint { return c.UserID }
