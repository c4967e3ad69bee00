package models

type User struct {
	BaseModel

	Username     string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null"`

	// Relationships
	Courses     []Course     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Assignments []Assignment `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
