package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/server/internal/api/handlers"
	"github.com/applytrack/server/internal/api/middleware"
	"github.com/applytrack/server/internal/models"
	"github.com/applytrack/server/internal/token"
)

type Deps struct {
	Signer       *token.Signer
	Auth         *handlers.AuthHandler
	Users        *handlers.UserHandler
	Companies    *handlers.CompanyHandler
	Categories   *handlers.CategoryHandler
	Applications *handlers.ApplicationHandler
	Reminders    *handlers.ReminderHandler
	Dashboard    *handlers.DashboardHandler
	Audit        *handlers.AuditHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Optional auth on the whole prefix so guest-preview endpoints can tell
	// visitors from users; routes needing identity stack AuthRequired on top.
	api := r.Group("/api/v1")
	api.Use(middleware.AuthOptional(d.Signer))

	required := middleware.AuthRequired(d.Signer)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	adminOrManagement := middleware.RequireRoles(models.RoleAdmin, models.RoleManagement)
	jobSeekerOnly := middleware.RequireAnyType(models.TypeJobSeeker)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC().Format(time.RFC3339)})
	})

	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)

	api.GET("/users/me", required, d.Users.Me)
	api.PUT("/users/me", required, d.Users.UpdateMe)
	api.GET("/users", required, adminOnly, d.Users.List)
	api.PUT("/users/:id", required, adminOnly, d.Users.Update)

	api.GET("/companies", d.Companies.List)
	api.POST("/companies", required, adminOrManagement, d.Companies.Create)

	api.GET("/categories", d.Categories.List)
	api.POST("/categories", required, adminOrManagement, d.Categories.Create)
	api.PUT("/categories/:id", required, adminOrManagement, d.Categories.Update)
	api.DELETE("/categories/:id", required, adminOrManagement, d.Categories.Delete)

	api.GET("/applications", d.Applications.List)
	api.POST("/applications", required, jobSeekerOnly, d.Applications.Create)
	api.GET("/applications/export.csv", required, d.Applications.ExportCSV)
	api.PUT("/applications/:id", required, jobSeekerOnly, d.Applications.Update)
	api.DELETE("/applications/:id", required, jobSeekerOnly, d.Applications.Delete)
	api.GET("/applications/:id/history", required, d.Applications.History)
	api.POST("/applications/:id/history", required, d.Applications.AddHistory)

	api.GET("/reminders", required, d.Reminders.List)
	api.POST("/reminders", required, d.Reminders.Create)
	api.DELETE("/reminders/:id", required, d.Reminders.Delete)

	api.GET("/dashboard", d.Dashboard.Summary)
	api.GET("/dashboard/status-breakdown", d.Dashboard.StatusBreakdown)
	api.GET("/dashboard/timeseries", d.Dashboard.Timeseries)

	api.GET("/audit", required, adminOnly, d.Audit.List)
}
