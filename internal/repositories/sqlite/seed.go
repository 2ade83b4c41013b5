package sqlite

import (
	"gorm.io/gorm"

	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/utils"
)

// Migrate creates the six tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Category{},
		&models.Application{},
		&models.ApplicationHistory{},
		&models.Reminder{},
		&models.AuditLogEntry{},
	)
}

// Seed populates a fresh database with the default accounts and sample data.
// It does nothing when any user already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminPass, err := utils.HashPassword("Admin123!")
	if err != nil {
		return err
	}
	mgmtPass, err := utils.HashPassword("Manager123!")
	if err != nil {
		return err
	}
	userPass, err := utils.HashPassword("User123!")
	if err != nil {
		return err
	}

	jobSeeker := models.TypeJobSeeker
	admin := models.User{Name: "Admin", Username: ptr("admin"), Email: "admin@example.com", PasswordHash: adminPass, Role: models.RoleAdmin}
	manager := models.User{Name: "Management", Username: ptr("manager"), Email: "manager@example.com", PasswordHash: mgmtPass, Role: models.RoleManagement}
	regular := models.User{Name: "Regular User", Username: ptr("user"), Email: "user@example.com", PasswordHash: userPass, Role: models.RoleRegular, UserTypes: &jobSeeker}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range []*models.User{&admin, &manager, &regular} {
			if err := tx.Create(u).Error; err != nil {
				return err
			}
		}

		openai := models.Company{Name: "OpenAI", Industry: ptr("AI"), Location: ptr("San Francisco")}
		microsoft := models.Company{Name: "Microsoft", Industry: ptr("Tech"), Location: ptr("USA")}
		for _, c := range []*models.Company{&openai, &microsoft} {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}

		software := models.Category{Name: "Software", Description: ptr("Software engineering roles"), ManagerID: admin.UserID}
		data := models.Category{Name: "Data", Description: ptr("Data / analytics roles"), ManagerID: admin.UserID}
		for _, cat := range []*models.Category{&software, &data} {
			if err := tx.Create(cat).Error; err != nil {
				return err
			}
		}

		app := models.Application{
			UserID:      regular.UserID,
			CategoryID:  &software.CategoryID,
			CompanyID:   &microsoft.CompanyID,
			Company:     "Microsoft",
			Position:    "Software Engineer",
			Status:      models.StatusInterview,
			Priority:    2,
			AppliedDate: "2025-01-12",
			Deadline:    ptr("2025-02-01"),
			Notes:       ptr("Sent via LinkedIn"),
		}
		if err := tx.Create(&app).Error; err != nil {
			return err
		}

		hist := models.ApplicationHistory{
			AppID:        app.AppID,
			StatusChange: models.StatusInterview,
			Feedback:     ptr("Phone interview scheduled"),
			UpdateDate:   "2025-01-22",
		}
		if err := tx.Create(&hist).Error; err != nil {
			return err
		}

		rem := models.Reminder{
			UserID:       regular.UserID,
			AppID:        &app.AppID,
			Message:      "Prepare for interview",
			ReminderDate: "2025-01-25",
		}
		return tx.Create(&rem).Error
	})
}

func ptr(s string) *string { return &s }
