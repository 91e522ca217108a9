package app

import (
	"database/sql"

	"github.com/VaibhavBaliyan/hirenest/internal/application"
	"github.com/VaibhavBaliyan/hirenest/internal/auth"
	"github.com/VaibhavBaliyan/hirenest/internal/authz"
	"github.com/VaibhavBaliyan/hirenest/internal/company"
	"github.com/VaibhavBaliyan/hirenest/internal/job"
	"github.com/VaibhavBaliyan/hirenest/internal/messaging/kafka"
	"github.com/VaibhavBaliyan/hirenest/internal/resume"
	"github.com/VaibhavBaliyan/hirenest/internal/savedjob"
	"github.com/VaibhavBaliyan/hirenest/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	fileStore storage.FileStore,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	resumeRepo := resume.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	savedJobRepo := savedjob.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	policy := authz.NewPolicy()

	// --- Services ---
	authService := auth.NewService(authRepo)
	companyService := company.NewService(companyRepo)
	jobService := job.NewService(jobRepo, companyRepo, policy, rdb)
	resumeService := resume.NewService(resumeRepo, fileStore)
	applicationService := application.NewService(db, applicationRepo, jobRepo, resumeRepo, outboxRepo, policy)
	savedJobService := savedjob.NewService(savedJobRepo, jobRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	jobHandler := job.NewHandler(jobService)
	resumeHandler := resume.NewHandler(resumeService)
	applicationHandler := application.NewHandlerWithRedis(applicationService, rdb)
	savedJobHandler := savedjob.NewHandler(savedJobService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler)
		job.RegisterRoutes(api, jobHandler)
		resume.RegisterRoutes(api, resumeHandler)
		application.RegisterRoutes(api, applicationHandler, rdb)
		savedjob.RegisterRoutes(api, savedJobHandler)
	}

	return nil
}
