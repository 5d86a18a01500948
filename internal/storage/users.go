package storage

import (
	"errors"

	"fleetportal/backend/internal/models"

	"gorm.io/gorm"
)

// UserService is the gorm-backed UserStore.
type UserService struct {
	DB *gorm.DB
}

// FindByUsername returns the user with the given username, or (nil, nil)
// when no such user exists.
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCredentials returns the user matching both username and password
// exactly, or (nil, nil) on mismatch.
func (s *UserService) FindByCredentials(username, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("username = ? AND password = ?", username, password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The unique index on username is the last line
// of defense; callers check for duplicates first to report a clean conflict.
func (s *UserService) Create(user *models.User) error {
	return s.DB.Create(user).Error
}
