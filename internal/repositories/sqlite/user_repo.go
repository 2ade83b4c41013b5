package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/utils"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, u *models.User) error
	List(ctx context.Context) ([]models.User, error)
	UpdateRoleTypes(ctx context.Context, id uint, role models.Role, userTypes *string) error
	UpdateNickname(ctx context.Context, id uint, nickname string) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("userID = ?", id).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("userID = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("userID ASC").Find(&users).Error
	return users, err
}

func (r *userRepo) UpdateRoleTypes(ctx context.Context, id uint, role models.Role, userTypes *string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("userID = ?", id).
		Updates(map[string]any{"role": role, "userTypes": userTypes}).Error
}

func (r *userRepo) UpdateNickname(ctx context.Context, id uint, nickname string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("userID = ?", id).
		Update("nickname", nickname).Error
}
