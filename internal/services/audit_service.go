package services

import (
	"context"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/utils"
)

type AuditService interface {
	List(ctx context.Context) ([]models.AuditRow, error)
}

type auditService struct {
	audit sqlite.AuditRepository
}

func NewAuditService(audit sqlite.AuditRepository) AuditService {
	return &auditService{audit: audit}
}

func (s *auditService) List(ctx context.Context) ([]models.AuditRow, error) {
	const op = "AuditService.List"

	rows, err := s.audit.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return rows, nil
}
