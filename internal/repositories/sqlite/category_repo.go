package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/utils"
)

type CategoryRepository interface {
	ListWithManager(ctx context.Context) ([]models.CategoryWithManager, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, cat *models.Category) error
	Update(ctx context.Context, cat *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) ListWithManager(ctx context.Context) ([]models.CategoryWithManager, error) {
	var rows []models.CategoryWithManager
	err := r.db.WithContext(ctx).
		Table("categories c").
		Select("c.categoryID, c.name, c.description, c.managerID, u.name AS managerName").
		Joins("JOIN users u ON u.userID = c.managerID").
		Order("c.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *categoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("categoryID = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *categoryRepo) Create(ctx context.Context, cat *models.Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *categoryRepo) Update(ctx context.Context, cat *models.Category) error {
	res := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("categoryID = ?", cat.CategoryID).
		Updates(map[string]any{
			"name":        cat.Name,
			"description": cat.Description,
			"managerID":   cat.ManagerID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("categoryID = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
