package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/token"
	"github.com/applytrack/server/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (uint, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	users  sqlite.UserRepository
	audit  sqlite.AuditRepository
	signer *token.Signer
}

func NewAuthService(users sqlite.UserRepository, audit sqlite.AuditRepository, signer *token.Signer) AuthService {
	return &authService{users: users, audit: audit, signer: signer}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (uint, error) {
	const op = "AuthService.Register"

	if name == "" || email == "" || password == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if exists {
		return 0, utils.E(utils.CodeInvalidArgument, op, "Email already in use", nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	types := models.TypeJobSeeker
	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleRegular,
		UserTypes:    &types,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, u.UserID, fmt.Sprintf("register:%s", email))
	return u.UserID, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeUnauthorized, op, "Invalid credentials", nil)
		}
		return "", utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if utils.CheckPassword(u.PasswordHash, password) != nil {
		return "", utils.E(utils.CodeUnauthorized, op, "Invalid credentials", nil)
	}

	tok, err := s.signer.Sign(u)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, u.UserID, "login")
	return tok, nil
}
