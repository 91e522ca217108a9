package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;type:varchar(60);not null"`
	Email     string    `gorm:"column:email;type:text;not null;uniqueIndex:uq_users_email"`
	Password  string    `gorm:"column:password;type:text;not null"`
	Role      string    `gorm:"column:role;type:varchar(20);not null"`
	Phone     string    `gorm:"column:phone;type:varchar(20)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
