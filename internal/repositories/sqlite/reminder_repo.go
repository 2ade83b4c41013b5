package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/utils"
)

type ReminderRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Reminder, error)
	GetByID(ctx context.Context, id uint) (*models.Reminder, error)
	Create(ctx context.Context, rem *models.Reminder) error
	Delete(ctx context.Context, id uint) error
}

type reminderRepo struct {
	db *gorm.DB
}

func NewReminderRepo(db *gorm.DB) ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) ListByUser(ctx context.Context, userID uint) ([]models.Reminder, error) {
	var rows []models.Reminder
	err := r.db.WithContext(ctx).
		Where("userID = ?", userID).
		Order("reminderDate ASC").
		Find(&rows).Error
	return rows, err
}

func (r *reminderRepo) GetByID(ctx context.Context, id uint) (*models.Reminder, error) {
	var rem models.Reminder
	err := r.db.WithContext(ctx).Where("reminderID = ?", id).Take(&rem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &rem, err
}

func (r *reminderRepo) Create(ctx context.Context, rem *models.Reminder) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *reminderRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("reminderID = ?", id).Delete(&models.Reminder{}).Error
}
