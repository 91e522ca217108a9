package resume

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	FileName  string    `gorm:"column:file_name;type:varchar(255);not null"`
	FileKey   string    `gorm:"column:file_key;type:varchar(512);not null"`
	FileURL   string    `gorm:"column:file_url;type:text;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:false;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Resume) TableName() string {
	return "resumes"
}
