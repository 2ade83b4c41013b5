package sqlite

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/utils"
)

// ListQuery carries the filter, sort and pagination state for a scoped
// application listing. OwnerID nil means global scope.
type ListQuery struct {
	OwnerID    *uint
	Status     *string
	CompanyID  *uint
	CategoryID *uint
	Priority   *int
	Search     *string
	Sort       string
	Page       int
	PageSize   int
}

// sortColumns is the whitelist of client-sortable fields; anything else is
// silently dropped.
var sortColumns = map[string]string{
	"appliedDate": "a.appliedDate",
	"deadline":    "a.deadline",
	"priority":    "a.priority",
	"status":      "a.status",
	"company":     "a.company",
	"position":    "a.position",
}

// orderClause translates a comma-separated sort expression ("-priority,company")
// into SQL, falling back to appliedDate DESC when nothing valid remains.
func orderClause(sort string) string {
	var parts []string
	for _, f := range strings.Split(sort, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		desc := strings.HasPrefix(f, "-")
		key := strings.TrimPrefix(f, "-")
		col, ok := sortColumns[key]
		if !ok {
			continue
		}
		dir := "ASC"
		if desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	if len(parts) == 0 {
		return "a.appliedDate DESC"
	}
	return strings.Join(parts, ", ")
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ApplicationRepository interface {
	List(ctx context.Context, q ListQuery) (items []models.ApplicationRow, total int64, err error)
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	Create(ctx context.Context, a *models.Application) error
	Update(ctx context.Context, a *models.Application) error
	DeleteCascade(ctx context.Context, id uint) error
	ExportRows(ctx context.Context, ownerID *uint) ([]models.Application, error)

	HistoryByApp(ctx context.Context, appID uint) ([]models.ApplicationHistory, error)
	AppendHistory(ctx context.Context, h *models.ApplicationHistory) error

	CountAll(ctx context.Context, ownerID *uint) (int64, error)
	CountByStatuses(ctx context.Context, ownerID *uint, statuses ...string) (int64, error)
	StatusBreakdown(ctx context.Context, ownerID *uint) ([]StatusCount, error)
	Timeseries(ctx context.Context, ownerID *uint, from, to string) ([]DateCount, error)
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) filtered(ctx context.Context, q ListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Table("applications a")
	if q.OwnerID != nil {
		tx = tx.Where("a.userID = ?", *q.OwnerID)
	}
	if q.Status != nil {
		tx = tx.Where("a.status = ?", *q.Status)
	}
	if q.CompanyID != nil {
		tx = tx.Where("a.companyID = ?", *q.CompanyID)
	}
	if q.CategoryID != nil {
		tx = tx.Where("a.categoryID = ?", *q.CategoryID)
	}
	if q.Priority != nil {
		tx = tx.Where("a.priority = ?", *q.Priority)
	}
	if q.Search != nil {
		like := "%" + *q.Search + "%"
		tx = tx.Where("(a.company LIKE ? OR a.position LIKE ?)", like, like)
	}
	return tx
}

func (r *applicationRepo) List(ctx context.Context, q ListQuery) ([]models.ApplicationRow, int64, error) {
	var total int64
	if err := r.filtered(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	items := []models.ApplicationRow{}
	err := r.filtered(ctx, q).
		Select(`a.appID, a.userID, a.categoryID, a.companyID, a.company, a.position,
			a.status, a.priority, a.appliedDate, a.deadline, a.notes,
			c.name AS categoryName, co.name AS companyName`).
		Joins("LEFT JOIN categories c ON c.categoryID = a.categoryID").
		Joins("LEFT JOIN companies co ON co.companyID = a.companyID").
		Order(orderClause(q.Sort)).
		Limit(q.PageSize).
		Offset(offset).
		Scan(&items).Error
	return items, total, err
}

func (r *applicationRepo) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).Where("appID = ?", id).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepo) Update(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("appID = ?", a.AppID).
		Updates(map[string]any{
			"categoryID":  a.CategoryID,
			"companyID":   a.CompanyID,
			"company":     a.Company,
			"position":    a.Position,
			"status":      a.Status,
			"priority":    a.Priority,
			"appliedDate": a.AppliedDate,
			"deadline":    a.Deadline,
			"notes":       a.Notes,
		}).Error
}

// DeleteCascade removes the application together with its history and any
// reminders pointing at it.
func (r *applicationRepo) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appID = ?", id).Delete(&models.ApplicationHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("appID = ?", id).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		return tx.Where("appID = ?", id).Delete(&models.Application{}).Error
	})
}

func (r *applicationRepo) ExportRows(ctx context.Context, ownerID *uint) ([]models.Application, error) {
	tx := r.db.WithContext(ctx).Model(&models.Application{})
	if ownerID != nil {
		tx = tx.Where("userID = ?", *ownerID)
	}
	var rows []models.Application
	err := tx.Order("appliedDate DESC").Find(&rows).Error
	return rows, err
}

func (r *applicationRepo) HistoryByApp(ctx context.Context, appID uint) ([]models.ApplicationHistory, error) {
	var rows []models.ApplicationHistory
	err := r.db.WithContext(ctx).
		Where("appID = ?", appID).
		Order("updateDate DESC").
		Find(&rows).Error
	return rows, err
}

func (r *applicationRepo) AppendHistory(ctx context.Context, h *models.ApplicationHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *applicationRepo) scoped(ctx context.Context, ownerID *uint) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&models.Application{})
	if ownerID != nil {
		tx = tx.Where("userID = ?", *ownerID)
	}
	return tx
}

func (r *applicationRepo) CountAll(ctx context.Context, ownerID *uint) (int64, error) {
	var count int64
	err := r.scoped(ctx, ownerID).Count(&count).Error
	return count, err
}

func (r *applicationRepo) CountByStatuses(ctx context.Context, ownerID *uint, statuses ...string) (int64, error) {
	var count int64
	err := r.scoped(ctx, ownerID).Where("status IN ?", statuses).Count(&count).Error
	return count, err
}

func (r *applicationRepo) StatusBreakdown(ctx context.Context, ownerID *uint) ([]StatusCount, error) {
	rows := []StatusCount{}
	err := r.scoped(ctx, ownerID).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *applicationRepo) Timeseries(ctx context.Context, ownerID *uint, from, to string) ([]DateCount, error) {
	rows := []DateCount{}
	err := r.scoped(ctx, ownerID).
		Select("appliedDate AS date, COUNT(*) AS count").
		Where("appliedDate >= ? AND appliedDate <= ?", from, to).
		Group("appliedDate").
		Order("appliedDate ASC").
		Scan(&rows).Error
	return rows, err
}
