package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/applytrack/server/internal/authz"
	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/token"
	"github.com/applytrack/server/internal/utils"
)

type ReminderService interface {
	List(ctx context.Context, userID uint) ([]models.Reminder, error)
	Create(ctx context.Context, caller *token.Claims, appID *uint, reminderDate, message string) (uint, error)
	Delete(ctx context.Context, caller *token.Claims, id uint) error
}

type reminderService struct {
	reminders sqlite.ReminderRepository
	apps      sqlite.ApplicationRepository
	audit     sqlite.AuditRepository
}

func NewReminderService(reminders sqlite.ReminderRepository, apps sqlite.ApplicationRepository, audit sqlite.AuditRepository) ReminderService {
	return &reminderService{reminders: reminders, apps: apps, audit: audit}
}

func (s *reminderService) List(ctx context.Context, userID uint) ([]models.Reminder, error) {
	const op = "ReminderService.List"

	rows, err := s.reminders.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return rows, nil
}

func (s *reminderService) Create(ctx context.Context, caller *token.Claims, appID *uint, reminderDate, message string) (uint, error) {
	const op = "ReminderService.Create"

	if reminderDate == "" || message == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}

	if appID != nil {
		app, err := s.apps.GetByID(ctx, *appID)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return 0, utils.E(utils.CodeInvalidArgument, op, "Invalid appID", nil)
			}
			return 0, utils.E(utils.CodeInternal, op, "Server error", err)
		}
		if !authz.CanModify(caller, app.UserID) {
			return 0, utils.E(utils.CodeForbidden, op, "Forbidden", nil)
		}
	}

	rem := models.Reminder{UserID: caller.UserID, AppID: appID, Message: message, ReminderDate: reminderDate}
	if err := s.reminders.Create(ctx, &rem); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, caller.UserID, fmt.Sprintf("reminder:create:%d", rem.ReminderID))
	return rem.ReminderID, nil
}

func (s *reminderService) Delete(ctx context.Context, caller *token.Claims, id uint) error {
	const op = "ReminderService.Delete"

	rem, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if !authz.CanModify(caller, rem.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	if err := s.reminders.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, caller.UserID, fmt.Sprintf("reminder:delete:%d", id))
	return nil
}
