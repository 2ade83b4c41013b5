package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/applytrack/server/internal/authz"
	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/token"
	"github.com/applytrack/server/internal/utils"
)

// ListParams is the raw query-parameter state of a list request before
// clamping and scoping.
type ListParams struct {
	Status     *string
	CompanyID  *uint
	CategoryID *uint
	Priority   *int
	Search     *string
	Sort       string
	Global     string
	Page       int
	PageSize   int
}

// ListResult is the paginated response envelope.
type ListResult struct {
	Page     int                     `json:"page"`
	PageSize int                     `json:"pageSize"`
	Total    int64                   `json:"total"`
	Items    []models.ApplicationRow `json:"items"`
}

type CreateApplicationInput struct {
	CompanyID   *uint
	Company     *string
	Position    string
	Status      string
	Priority    *int
	AppliedDate string
	Deadline    *string
	Notes       *string
	CategoryID  *uint
}

// UpdateApplicationInput is a partial patch; nil leaves the stored value,
// Set distinguishes "absent" from "set to null" for the nullable fields.
type UpdateApplicationInput struct {
	CompanyID   OptionalUint
	Company     OptionalString
	Position    *string
	Status      *string
	AppliedDate *string
	Deadline    OptionalString
	Notes       OptionalString
	CategoryID  OptionalUint
	Priority    *int
}

type OptionalUint struct {
	Set   bool
	Value *uint
}

type OptionalString struct {
	Set   bool
	Value *string
}

type ApplicationService interface {
	List(ctx context.Context, caller *token.Claims, p ListParams) (*ListResult, error)
	Create(ctx context.Context, caller *token.Claims, in CreateApplicationInput) (uint, error)
	Update(ctx context.Context, caller *token.Claims, id uint, in UpdateApplicationInput) error
	Delete(ctx context.Context, caller *token.Claims, id uint) error
	ExportCSV(ctx context.Context, caller *token.Claims, global string) ([]byte, error)
	History(ctx context.Context, caller *token.Claims, appID uint) ([]models.ApplicationHistory, error)
	AddHistory(ctx context.Context, caller *token.Claims, appID uint, statusChange string, feedback *string) (uint, error)
}

type applicationService struct {
	apps      sqlite.ApplicationRepository
	companies sqlite.CompanyRepository
	audit     sqlite.AuditRepository
}

func NewApplicationService(apps sqlite.ApplicationRepository, companies sqlite.CompanyRepository, audit sqlite.AuditRepository) ApplicationService {
	return &applicationService{apps: apps, companies: companies, audit: audit}
}

func (s *applicationService) List(ctx context.Context, caller *token.Claims, p ListParams) (*ListResult, error) {
	const op = "ApplicationService.List"

	page := p.Page
	if page < 1 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	q := sqlite.ListQuery{
		Status:     p.Status,
		CompanyID:  p.CompanyID,
		CategoryID: p.CategoryID,
		Priority:   p.Priority,
		Search:     p.Search,
		Sort:       p.Sort,
		Page:       page,
		PageSize:   pageSize,
	}
	if !authz.GlobalScope(caller, p.Global) {
		q.OwnerID = &caller.UserID
	}

	items, total, err := s.apps.List(ctx, q)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return &ListResult{Page: page, PageSize: pageSize, Total: total, Items: items}, nil
}

// resolveCompany enforces the invariant that every application carries a
// company name: a referenced companyID wins over the free-text name.
func (s *applicationService) resolveCompany(ctx context.Context, op string, companyID *uint, company *string) (*uint, string, error) {
	if companyID != nil {
		c, err := s.companies.GetByID(ctx, *companyID)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return nil, "", utils.E(utils.CodeInvalidArgument, op, "Invalid companyID", nil)
			}
			return nil, "", utils.E(utils.CodeInternal, op, "Server error", err)
		}
		return companyID, c.Name, nil
	}
	if company == nil || *company == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "Missing company", nil)
	}
	return nil, *company, nil
}

func (s *applicationService) Create(ctx context.Context, caller *token.Claims, in CreateApplicationInput) (uint, error) {
	const op = "ApplicationService.Create"

	hasCompany := in.CompanyID != nil || (in.Company != nil && *in.Company != "")
	if !hasCompany || in.Position == "" || in.Status == "" || in.AppliedDate == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}

	companyID, companyName, err := s.resolveCompany(ctx, op, in.CompanyID, in.Company)
	if err != nil {
		return 0, err
	}

	priority := 0
	if in.Priority != nil {
		priority = *in.Priority
	}

	a := models.Application{
		UserID:      caller.UserID,
		CategoryID:  in.CategoryID,
		CompanyID:   companyID,
		Company:     companyName,
		Position:    in.Position,
		Status:      in.Status,
		Priority:    priority,
		AppliedDate: in.AppliedDate,
		Deadline:    in.Deadline,
		Notes:       in.Notes,
	}
	if err := s.apps.Create(ctx, &a); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	hist := models.ApplicationHistory{AppID: a.AppID, StatusChange: in.Status, UpdateDate: nowISO()}
	if err := s.apps.AppendHistory(ctx, &hist); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, caller.UserID, fmt.Sprintf("application:create:%d", a.AppID))
	return a.AppID, nil
}

func (s *applicationService) Update(ctx context.Context, caller *token.Claims, id uint, in UpdateApplicationInput) error {
	const op = "ApplicationService.Update"

	existing, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if !authz.CanModify(caller, existing.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	next := *existing
	if in.CompanyID.Set {
		next.CompanyID = in.CompanyID.Value
	}
	if in.Company.Set {
		if in.Company.Value != nil {
			next.Company = *in.Company.Value
		} else {
			next.Company = ""
		}
	}
	if in.Position != nil {
		next.Position = *in.Position
	}
	if in.Status != nil {
		next.Status = *in.Status
	}
	if in.AppliedDate != nil {
		next.AppliedDate = *in.AppliedDate
	}
	if in.Deadline.Set {
		next.Deadline = in.Deadline.Value
	}
	if in.Notes.Set {
		next.Notes = in.Notes.Value
	}
	if in.CategoryID.Set {
		next.CategoryID = in.CategoryID.Value
	}
	if in.Priority != nil {
		next.Priority = *in.Priority
	}

	if next.CompanyID != nil {
		c, err := s.companies.GetByID(ctx, *next.CompanyID)
		if err != nil {
			if errors.Is(err, utils.ErrNotFound) {
				return utils.E(utils.CodeInvalidArgument, op, "Invalid companyID", nil)
			}
			return utils.E(utils.CodeInternal, op, "Server error", err)
		}
		next.Company = c.Name
	}
	if next.Company == "" {
		return utils.E(utils.CodeInvalidArgument, op, "Missing company", nil)
	}

	if err := s.apps.Update(ctx, &next); err != nil {
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}

	if existing.Status != next.Status {
		hist := models.ApplicationHistory{AppID: id, StatusChange: next.Status, UpdateDate: nowISO()}
		if err := s.apps.AppendHistory(ctx, &hist); err != nil {
			return utils.E(utils.CodeInternal, op, "Server error", err)
		}
	}

	_ = s.audit.Append(ctx, caller.UserID, fmt.Sprintf("application:update:%d", id))
	return nil
}

func (s *applicationService) Delete(ctx context.Context, caller *token.Claims, id uint) error {
	const op = "ApplicationService.Delete"

	existing, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if !authz.CanModify(caller, existing.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	if err := s.apps.DeleteCascade(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, caller.UserID, fmt.Sprintf("application:delete:%d", id))
	return nil
}

var csvHeader = []string{"appID", "company", "position", "status", "priority", "appliedDate", "deadline", "notes"}

func (s *applicationService) ExportCSV(ctx context.Context, caller *token.Claims, global string) ([]byte, error) {
	const op = "ApplicationService.ExportCSV"

	var ownerID *uint
	if !authz.GlobalScope(caller, global) {
		ownerID = &caller.UserID
	}

	rows, err := s.apps.ExportRows(ctx, ownerID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(csvHeader)
	for _, a := range rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(a.AppID), 10),
			a.Company,
			a.Position,
			a.Status,
			strconv.Itoa(a.Priority),
			a.AppliedDate,
			strOrEmpty(a.Deadline),
			strOrEmpty(a.Notes),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return buf.Bytes(), nil
}

func (s *applicationService) History(ctx context.Context, caller *token.Claims, appID uint) ([]models.ApplicationHistory, error) {
	const op = "ApplicationService.History"

	app, err := s.apps.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if !authz.CanModify(caller, app.UserID) {
		return nil, utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	rows, err := s.apps.HistoryByApp(ctx, appID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return rows, nil
}

func (s *applicationService) AddHistory(ctx context.Context, caller *token.Claims, appID uint, statusChange string, feedback *string) (uint, error) {
	const op = "ApplicationService.AddHistory"

	app, err := s.apps.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return 0, utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	if !authz.CanModify(caller, app.UserID) {
		return 0, utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}
	if statusChange == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}

	hist := models.ApplicationHistory{AppID: appID, StatusChange: statusChange, Feedback: feedback, UpdateDate: nowISO()}
	if err := s.apps.AppendHistory(ctx, &hist); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	_ = s.audit.Append(ctx, caller.UserID, fmt.Sprintf("history:create:%d", hist.HistoryID))
	return hist.HistoryID, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
