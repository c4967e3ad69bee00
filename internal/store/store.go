package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/models"
	"gorm.io/gorm"
)

// Store is the relational persistence layer. It holds no per-request state:
// every method opens its own session bound to ctx.
type Store struct {
	db     *gorm.DB
	hasher auth.PasswordHasher

	dummyOnce sync.Once
	dummy     string
}

func New(db *gorm.DB, hasher auth.PasswordHasher) *Store {
	return &Store{db: db, hasher: hasher}
}

func (s *Store) session(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func requireUser(tx *gorm.DB, userID uint) error {
	var count int64

	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("lookup user %d: %w", userID, err)
	}

	if count == 0 {
		return ErrUserNotFound
	}

	return nil
}

func notFoundOr(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
