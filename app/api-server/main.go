package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/applytrack/server/config"
	"github.com/applytrack/server/internal/api/handlers"
	"github.com/applytrack/server/internal/api/middleware"
	"github.com/applytrack/server/internal/api/routes"
	"github.com/applytrack/server/internal/logger"
	"github.com/applytrack/server/internal/repositories/sqlite"
	"github.com/applytrack/server/internal/services"
	"github.com/applytrack/server/internal/token"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	db, err := config.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("sqlite open error: %v", err)
	}
	if err := sqlite.Migrate(db); err != nil {
		log.Fatalf("migrate error: %v", err)
	}
	if err := sqlite.Seed(db); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	signer := token.NewSigner(cfg.JWTSecret)

	userRepo := sqlite.NewUserRepo(db)
	companyRepo := sqlite.NewCompanyRepo(db)
	categoryRepo := sqlite.NewCategoryRepo(db)
	appRepo := sqlite.NewApplicationRepo(db)
	reminderRepo := sqlite.NewReminderRepo(db)
	auditRepo := sqlite.NewAuditRepo(db)

	authSvc := services.NewAuthService(userRepo, auditRepo, signer)
	userSvc := services.NewUserService(userRepo, auditRepo)
	companySvc := services.NewCompanyService(companyRepo, auditRepo)
	categorySvc := services.NewCategoryService(categoryRepo, userRepo, auditRepo)
	appSvc := services.NewApplicationService(appRepo, companyRepo, auditRepo)
	reminderSvc := services.NewReminderService(reminderRepo, appRepo, auditRepo)
	dashboardSvc := services.NewDashboardService(appRepo)
	auditSvc := services.NewAuditService(auditRepo)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	routes.RegisterRoutes(r, routes.Deps{
		Signer:       signer,
		Auth:         handlers.NewAuthHandler(authSvc),
		Users:        handlers.NewUserHandler(userSvc),
		Companies:    handlers.NewCompanyHandler(companySvc),
		Categories:   handlers.NewCategoryHandler(categorySvc),
		Applications: handlers.NewApplicationHandler(appSvc),
		Reminders:    handlers.NewReminderHandler(reminderSvc),
		Dashboard:    handlers.NewDashboardHandler(dashboardSvc),
		Audit:        handlers.NewAuditHandler(auditSvc),
	})

	log.Infof("server listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
