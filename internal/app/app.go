package app

import (
	"os"

	"github.com/VaibhavBaliyan/hirenest/internal/application"
	"github.com/VaibhavBaliyan/hirenest/internal/auth"
	"github.com/VaibhavBaliyan/hirenest/internal/company"
	"github.com/VaibhavBaliyan/hirenest/internal/job"
	"github.com/VaibhavBaliyan/hirenest/internal/resume"
	"github.com/VaibhavBaliyan/hirenest/internal/savedjob"
	"github.com/VaibhavBaliyan/hirenest/internal/shared/connection"
	"github.com/VaibhavBaliyan/hirenest/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// outboxTable backs the transactional outbox; it is not a gorm entity, so it
// is created here alongside AutoMigrate.
const outboxTable = `
CREATE TABLE IF NOT EXISTS outbox_events (
    id UUID PRIMARY KEY,
    request_id TEXT,
    aggregate_type TEXT NOT NULL,
    aggregate_id UUID NOT NULL,
    event_type TEXT NOT NULL,
    topic TEXT NOT NULL,
    payload JSONB NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    retry_count INT NOT NULL DEFAULT 0,
    error_message TEXT,
    next_retry_at TIMESTAMPTZ,
    processed_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// activeResumeIndex is a partial unique index; gorm tags cannot express the
// WHERE clause, so it is created here. It is what keeps two concurrent
// uploads or activations from both committing an active row for one user.
const activeResumeIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS uq_resumes_user_active
ON resumes (user_id) WHERE is_active`

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	fileStore, err := storage.NewMinioStore(
		os.Getenv("MINIO_ENDPOINT"),
		os.Getenv("MINIO_ACCESS_KEY"),
		os.Getenv("MINIO_SECRET_KEY"),
		os.Getenv("MINIO_BUCKET"),
		os.Getenv("MINIO_USE_SSL") == "true",
	)
	if err != nil {
		return err
	}
	zap.L().Info("object storage ready")

	return registerModules(router, sqlDB, gormDB, redisClient, fileStore)
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&auth.User{},
		&company.Company{},
		&job.Job{},
		&resume.Resume{},
		&application.Application{},
		&savedjob.SavedJob{},
	); err != nil {
		return err
	}
	if err := db.Exec(outboxTable).Error; err != nil {
		return err
	}
	return db.Exec(activeResumeIndex).Error
}
