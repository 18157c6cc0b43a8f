package service

import (
	"context"
	"errors"

	"github.com/best-life-api/internal/models"
	"github.com/best-life-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrMissingField is returned when a required body key is absent
var ErrMissingField = errors.New("missing required field")

// userService is the concrete implementation of UserService
type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newUserService(users repository.UserRepository, log zerolog.Logger) *userService {
	return &userService{
		users: users,
		log:   log.With().Str("service", "user").Logger(),
	}
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetRoleID(ctx context.Context, roleName string) (*int64, error) {
	return s.users.GetRoleIDByName(ctx, roleName)
}

func (s *userService) ListUsernames(ctx context.Context, roleID int64) ([]string, error) {
	return s.users.ListNamesByRoleID(ctx, roleID)
}

func (s *userService) GetUserID(ctx context.Context, userName string) (*int64, error) {
	return s.users.GetIDByName(ctx, userName)
}

// DeleteUser reports false when no user had the id
func (s *userService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info().Int64("user_id", id).Msg("User deleted")
	}
	return deleted, nil
}

// UpdateUserName renames unconditionally; a missing key is an error
func (s *userService) UpdateUserName(ctx context.Context, req *models.UpdateUserNameRequest) error {
	if req == nil || req.UserID == nil {
		return errors.Join(ErrMissingField, errors.New("user_id"))
	}
	if req.UserName == nil {
		return errors.Join(ErrMissingField, errors.New("user_name"))
	}
	return s.users.UpdateName(ctx, *req.UserID, *req.UserName)
}
