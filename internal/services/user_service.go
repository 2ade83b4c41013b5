package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/utils"
)

type UserService interface {
	Me(ctx context.Context, userID uint) (*models.User, error)
	UpdateNickname(ctx context.Context, userID uint, nickname string) error
	List(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, actorID, targetID uint, role models.Role, userTypes *string) error
}

type userService struct {
	users sqlite.UserRepository
	audit sqlite.AuditRepository
}

func NewUserService(users sqlite.UserRepository, audit sqlite.AuditRepository) UserService {
	return &userService{users: users, audit: audit}
}

func (s *userService) Me(ctx context.Context, userID uint) (*models.User, error) {
	const op = "UserService.Me"

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return u, nil
}

func (s *userService) UpdateNickname(ctx context.Context, userID uint, nickname string) error {
	const op = "UserService.UpdateNickname"

	if err := s.users.UpdateNickname(ctx, userID, nickname); err != nil {
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}
	_ = s.audit.Append(ctx, userID, "user:nickname")
	return nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	const op = "UserService.List"

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return users, nil
}

func (s *userService) UpdateRole(ctx context.Context, actorID, targetID uint, role models.Role, userTypes *string) error {
	const op = "UserService.UpdateRole"

	exists, err := s.users.Exists(ctx, targetID)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if !exists {
		return utils.E(utils.CodeNotFound, op, "Not found", nil)
	}
	if !models.ValidRole(role) {
		return utils.E(utils.CodeInvalidArgument, op, "Invalid role", nil)
	}

	if err := s.users.UpdateRoleTypes(ctx, targetID, role, userTypes); err != nil {
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}

	types := ""
	if userTypes != nil {
		types = *userTypes
	}
	_ = s.audit.Append(ctx, actorID, fmt.Sprintf("user:update:%d:role=%s:types=%s", targetID, role, types))
	return nil
}
