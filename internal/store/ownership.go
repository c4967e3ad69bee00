package store

import "gorm.io/gorm"

// Owned is implemented by every record scoped to a single user.
type Owned interface {
	OwnerID() uint
}

// BelongsTo is the single authorization predicate applied to loaded records
// before they are returned, changed or removed.
func BelongsTo(entity Owned, userID uint) bool {
	return userID != 0 && entity.OwnerID() == userID
}

func ownedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID)
	}
}
