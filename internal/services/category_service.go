package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/utils"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.CategoryWithManager, error)
	Create(ctx context.Context, actorID uint, name string, description *string, managerID uint) (uint, error)
	Update(ctx context.Context, actorID, id uint, name string, description *string, managerID uint) error
	Delete(ctx context.Context, actorID, id uint) error
}

type categoryService struct {
	categories sqlite.CategoryRepository
	users      sqlite.UserRepository
	audit      sqlite.AuditRepository
}

func NewCategoryService(categories sqlite.CategoryRepository, users sqlite.UserRepository, audit sqlite.AuditRepository) CategoryService {
	return &categoryService{categories: categories, users: users, audit: audit}
}

func (s *categoryService) List(ctx context.Context) ([]models.CategoryWithManager, error) {
	const op = "CategoryService.List"

	rows, err := s.categories.ListWithManager(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return rows, nil
}

func (s *categoryService) validate(ctx context.Context, op, name string, managerID uint) error {
	if name == "" || managerID == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}
	exists, err := s.users.Exists(ctx, managerID)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if !exists {
		return utils.E(utils.CodeInvalidArgument, op, "Invalid managerID", nil)
	}
	return nil
}

func (s *categoryService) Create(ctx context.Context, actorID uint, name string, description *string, managerID uint) (uint, error) {
	const op = "CategoryService.Create"

	if err := s.validate(ctx, op, name, managerID); err != nil {
		return 0, err
	}

	cat := models.Category{Name: name, Description: description, ManagerID: managerID}
	if err := s.categories.Create(ctx, &cat); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, actorID, fmt.Sprintf("category:create:%d", cat.CategoryID))
	return cat.CategoryID, nil
}

func (s *categoryService) Update(ctx context.Context, actorID, id uint, name string, description *string, managerID uint) error {
	const op = "CategoryService.Update"

	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if !exists {
		return utils.E(utils.CodeNotFound, op, "Not found", nil)
	}
	if err := s.validate(ctx, op, name, managerID); err != nil {
		return err
	}

	cat := models.Category{CategoryID: id, Name: name, Description: description, ManagerID: managerID}
	if err := s.categories.Update(ctx, &cat); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, actorID, fmt.Sprintf("category:update:%d", id))
	return nil
}

func (s *categoryService) Delete(ctx context.Context, actorID, id uint) error {
	const op = "CategoryService.Delete"

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, actorID, fmt.Sprintf("category:delete:%d", id))
	return nil
}
