package services

import (
	"context"

	"github.com/applytrack/server/internal/authz"
	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/token"
	"github.com/applytrack/server/internal/utils"
)

type DashboardSummary struct {
	TotalApplications   int64  `json:"totalApplications"`
	InterviewsScheduled int64  `json:"interviewsScheduled"`
	OffersReceived      int64  `json:"offersReceived"`
	Rejections          int64  `json:"rejections"`
	Scope               string `json:"scope"`
}

type DashboardService interface {
	Summary(ctx context.Context, caller *token.Claims) (*DashboardSummary, error)
	StatusBreakdown(ctx context.Context, caller *token.Claims) ([]sqlite.StatusCount, error)
	Timeseries(ctx context.Context, caller *token.Claims, from, to string) ([]sqlite.DateCount, error)
}

type dashboardService struct {
	apps sqlite.ApplicationRepository
}

func NewDashboardService(apps sqlite.ApplicationRepository) DashboardService {
	return &dashboardService{apps: apps}
}

// scope resolves the caller's aggregate visibility: admins, management and
// Regular analysts see everything, everyone else their own rows only.
func scope(caller *token.Claims) (ownerID *uint, scopeName string) {
	if authz.CanSeeAll(caller) {
		return nil, "global"
	}
	return &caller.UserID, "user"
}

func (s *dashboardService) Summary(ctx context.Context, caller *token.Claims) (*DashboardSummary, error) {
	const op = "DashboardService.Summary"

	ownerID, scopeName := scope(caller)

	total, err := s.apps.CountAll(ctx, ownerID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	interviews, err := s.apps.CountByStatuses(ctx, ownerID, models.StatusInterview)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	// Offer/Accepted and Rejected/Rejection are synonymous outcomes here.
	offers, err := s.apps.CountByStatuses(ctx, ownerID, models.StatusOffer, models.StatusAccepted)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	rejections, err := s.apps.CountByStatuses(ctx, ownerID, models.StatusRejected, models.StatusRejection)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}

	return &DashboardSummary{
		TotalApplications:   total,
		InterviewsScheduled: interviews,
		OffersReceived:      offers,
		Rejections:          rejections,
		Scope:               scopeName,
	}, nil
}

func (s *dashboardService) StatusBreakdown(ctx context.Context, caller *token.Claims) ([]sqlite.StatusCount, error) {
	const op = "DashboardService.StatusBreakdown"

	ownerID, _ := scope(caller)
	rows, err := s.apps.StatusBreakdown(ctx, ownerID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return rows, nil
}

func (s *dashboardService) Timeseries(ctx context.Context, caller *token.Claims, from, to string) ([]sqlite.DateCount, error) {
	const op = "DashboardService.Timeseries"

	if from == "" {
		from = "1970-01-01"
	}
	if to == "" {
		to = "2999-12-31"
	}

	ownerID, _ := scope(caller)
	rows, err := s.apps.Timeseries(ctx, ownerID, from, to)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Server error", err)
	}
	return rows, nil
}
