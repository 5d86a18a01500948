// Package directory implements the account directory: stateless credential
// checks, the administrator policy, and admin-gated account creation.
package directory

import (
	"errors"

	"fleetportal/backend/internal/apperr"
	"fleetportal/backend/internal/config"
	"fleetportal/backend/internal/models"
	"fleetportal/backend/internal/storage"

	"go.uber.org/zap"
)

// Service handles directory lookups and account creation.
type Service struct {
	Users storage.UserStore
	Log   *zap.Logger
}

// NewService creates a new directory service.
func NewService(users storage.UserStore, log *zap.Logger) *Service {
	return &Service{Users: users, Log: log}
}

// Authenticate resolves a username/password pair to the stored account.
// Credentials are compared verbatim; a miss of either kind is reported
// uniformly as ErrUnauthorized. No side effects.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	user, err := s.Users.FindByCredentials(username, password)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if user == nil {
		return nil, apperr.ErrUnauthorized
	}
	return user, nil
}

// IsAdministrator reports whether the named account holds an administrative
// role. Membership is an explicit set test against config.AdminRoles rather
// than the legacy substring match on the role name.
func (s *Service) IsAdministrator(username string) (bool, error) {
	user, err := s.Users.FindByUsername(username)
	if err != nil {
		return false, apperr.Storage(err)
	}
	if user == nil {
		return false, apperr.ErrNotFound
	}
	return config.AdminRoles[user.Role], nil
}

// CreateUser inserts a new account on behalf of requester. Only
// administrators may create accounts; duplicate usernames are rejected.
func (s *Service) CreateUser(requester, username, password, role string) (*models.User, error) {
	isAdmin, err := s.IsAdministrator(requester)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// An unknown requester is no more privileged than a known non-admin.
			return nil, apperr.ErrForbidden
		}
		return nil, err
	}
	if !isAdmin {
		return nil, apperr.ErrForbidden
	}

	existing, err := s.Users.FindByUsername(username)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if existing != nil {
		return nil, apperr.ErrConflict
	}

	user := &models.User{Username: username, Password: password, Role: role}
	if err := s.Users.Create(user); err != nil {
		return nil, apperr.Storage(err)
	}
	s.Log.Info("user created", zap.String("username", username), zap.String("role", role), zap.String("by", requester))
	return user, nil
}

// SeedDefaults inserts the bootstrap accounts, skipping any username that
// already exists. Safe to run on every startup.
func (s *Service) SeedDefaults() error {
	for _, acc := range config.SeedAccounts {
		existing, err := s.Users.FindByUsername(acc.Username)
		if err != nil {
			return apperr.Storage(err)
		}
		if existing != nil {
			continue
		}
		user := &models.User{Username: acc.Username, Password: acc.Password, Role: acc.Role}
		if err := s.Users.Create(user); err != nil {
			return apperr.Storage(err)
		}
	}
	return nil
}
