package services

import (
	"context"
	"fmt"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/utils"
)

type CompanyService interface {
	List(ctx context.Context) ([]models.Company, error)
	Create(ctx context.Context, actorID uint, name string, industry, location *string) (uint, error)
}

type companyService struct {
	companies sqlite.CompanyRepository
	audit     sqlite.AuditRepository
}

func NewCompanyService(companies sqlite.CompanyRepository, audit sqlite.AuditRepository) CompanyService {
	return &companyService{companies: companies, audit: audit}
}

func (s *companyService) List(ctx context.Context) ([]models.Company, error) {
	const op = "CompanyService.List"

	rows, err := s.companies.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return rows, nil
}

func (s *companyService) Create(ctx context.Context, actorID uint, name string, industry, location *string) (uint, error) {
	const op = "CompanyService.Create"

	if name == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}

	c := models.Company{Name: name, Industry: industry, Location: location}
	if err := s.companies.Create(ctx, &c); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, actorID, fmt.Sprintf("company:create:%d", c.CompanyID))
	return c.CompanyID, nil
}
