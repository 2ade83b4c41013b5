package sqlite

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/applytrack/server/internal/models"
)

type AuditRepository interface {
	// Append records an action for a user; a zero userID is a no-op.
	Append(ctx context.Context, userID uint, action string) error
	List(ctx context.Context) ([]models.AuditRow, error)
}

type auditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Append(ctx context.Context, userID uint, action string) error {
	if userID == 0 {
		return nil
	}
	entry := models.AuditLogEntry{
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *auditRepo) List(ctx context.Context) ([]models.AuditRow, error) {
	rows := []models.AuditRow{}
	err := r.db.WithContext(ctx).
		Table("audit_log l").
		Select("l.logID, l.userID, l.action, l.timestamp, u.name AS userName, u.email AS userEmail").
		Joins("JOIN users u ON u.userID = l.userID").
		Order("l.timestamp DESC").
		Scan(&rows).Error
	return rows, err
}
