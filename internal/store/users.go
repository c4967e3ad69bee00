package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/monocle-dev/studytrack/db"
	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/models"
	"gorm.io/gorm"
)

// dummyHash is compared against when the username does not exist so that
// unknown and known usernames take the same time to reject.
func (s *Store) dummyHash() string {
	s.dummyOnce.Do(func() {
		s.dummy, _ = s.hasher.Hash("studytrack-dummy-password")
	})
	return s.dummy
}

func (s *Store) Register(ctx context.Context, username, password string) (models.User, error) {
	// Stored and compared exactly as given; only an all-blank name is refused.
	if strings.TrimSpace(username) == "" {
		return models.User{}, invalid("username", "is required")
	}

	if password == "" {
		return models.User{}, invalid("password", "is required")
	}

	var user models.User

	err := s.session(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("username = ?", username).First(&existing).Error

		if err == nil {
			return ErrUsernameTaken
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check existing user: %w", err)
		}

		hash, err := s.hasher.Hash(password)

		if errors.Is(err, auth.ErrPasswordTooLong) {
			return invalid("password", "%s", err)
		}

		if err != nil {
			return err
		}

		user = models.User{
			Username:     username,
			PasswordHash: hash,
		}

		if err := tx.Create(&user).Error; err != nil {
			if db.IsDuplicateKey(err) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("create user: %w", err)
		}

		return nil
	})

	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// VerifyCredentials returns ErrUserNotFound for an unknown username and
// auth.ErrInvalidCredentials for a wrong password.
func (s *Store) VerifyCredentials(ctx context.Context, username, password string) (models.User, error) {
	var user models.User

	err := s.session(ctx).Where("username = ?", username).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = s.hasher.Compare(s.dummyHash(), password)
		return models.User{}, ErrUserNotFound
	}

	if err != nil {
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (s *Store) GetUser(ctx context.Context, userID uint) (models.User, error) {
	var user models.User

	if err := s.session(ctx).First(&user, userID).Error; err != nil {
		return models.User{}, notFoundOr(err, ErrUserNotFound)
	}

	return user, nil
}
